package aggregators

import (
	"traffic-analytics/internal/shared/metrics"
)

// metricBucketCreatedTotal counts hourly buckets created lazily on their
// first admissible event. The bucket_id label is the hour of day
// ("hour-00".."hour-23"), so cardinality stays at 24; subsequent increments
// to an existing bucket do not move this metric.
var (
	metricBucketCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "hourly_bucket_created_total",
		},
		[]string{"bucket_id"},
	)

	metricIncrementContentionTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "increment_contention_total",
		},
	)
)
