package ingestors

import (
	"traffic-analytics/internal/shared/metrics"
)

var (
	metricEventIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "event_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// ua_family is the parsed agent family of the accepted event's caller,
	// not the raw header.
	metricEventAcceptedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "event_accepted_total",
		},
		[]string{"ua_family"},
	)
)
