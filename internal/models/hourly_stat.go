package models

import "time"

// HourlyStat is the aggregation unit: one counter record per customer per
// hour. Created lazily on the first admissible event for its key and never
// deleted. InvalidCount is a reserved slot; the live path refuses rejected
// events before they reach the aggregator, so it stays at zero.
type HourlyStat struct {
	CustomerID   int64     `json:"customerId"`
	HourStart    time.Time `json:"hourStart"`
	RequestCount int64     `json:"requestCount"`
	InvalidCount int64     `json:"invalidCount"`
}
