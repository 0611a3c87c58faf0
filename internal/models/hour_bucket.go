package models

import (
	"fmt"
	"time"
)

// FloorToHour maps a unix-seconds timestamp to the start of its containing
// hour in UTC. Truncation is idempotent: flooring an already-floored
// timestamp returns it unchanged.
func FloorToHour(ts int64) time.Time {
	return time.Unix(ts, 0).UTC().Truncate(time.Hour)
}

// HourBucketID returns a low-cardinality label for the hour-of-day of a
// bucket, e.g. "hour-18" for 18:00 UTC.
func HourBucketID(hourStart time.Time) string {
	return fmt.Sprintf("hour-%02d", hourStart.UTC().Hour())
}
