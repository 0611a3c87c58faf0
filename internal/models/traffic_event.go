package models

// TrafficEvent is one inbound traffic record after boundary validation.
// It is transient input and is never persisted verbatim; admissible events
// only contribute an increment to their hourly bucket.
type TrafficEvent struct {
	CustomerID int64
	TagID      int64
	UserID     string
	RemoteIP   string
	Timestamp  int64 // unix seconds
	UserAgent  string
}
