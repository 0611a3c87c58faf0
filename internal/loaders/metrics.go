package loaders

import (
	"traffic-analytics/internal/shared/metrics"
)

const (
	fileKindCustomers   = "customers"
	fileKindIPBlacklist = "ip_blacklist"
	fileKindUABlacklist = "ua_blacklist"
)

var (
	metricRowsLoadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLoader,
			Name:      "reference_rows_loaded_total",
		},
		[]string{"file_kind"},
	)

	metricBucketsUpdatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLoader,
			Name:      "event_buckets_updated_total",
		},
	)
)
