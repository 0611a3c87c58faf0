package models

// Customer is an advertiser account whose traffic events are ingested.
// Only active customers have events accepted.
type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
