package models

// DailyStats is the read-path view: a customer's hourly breakdown for one
// calendar day. JSON field names are part of the query API contract.
type DailyStats struct {
	CustomerID    int64       `json:"customer_id"`
	Date          string      `json:"date"` // YYYY-MM-DD
	TotalRequests int64       `json:"total_requests"`
	HourlyStats   []HourCount `json:"hourly_stats"`
}

type HourCount struct {
	Hour         int   `json:"hour"` // 0-23
	RequestCount int64 `json:"request_count"`
	InvalidCount int64 `json:"invalid_count"`
}
