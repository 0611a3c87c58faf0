package ingestors

import (
	"traffic-analytics/internal/models"
)

// IncomingEvent is the typed wire schema for one submitted traffic event.
// Fields the admission chain requires are pointers so absence is
// distinguishable from a zero value; the userAgent field travels with the
// event but the blacklist checks use the caller's User-Agent header instead.
type IncomingEvent struct {
	CustomerID *int64  `json:"customerID" validate:"required"`
	TagID      *int64  `json:"tagID" validate:"required"`
	UserID     *string `json:"userID" validate:"required"`
	RemoteIP   *string `json:"remoteIP" validate:"required"`
	Timestamp  *int64  `json:"timestamp" validate:"required"`
	UserAgent  string  `json:"userAgent"`
}

// toTrafficEvent converts the validated wire form into the domain event.
// Callers must have run required-field validation first.
func (e *IncomingEvent) toTrafficEvent() *models.TrafficEvent {
	return &models.TrafficEvent{
		CustomerID: *e.CustomerID,
		TagID:      *e.TagID,
		UserID:     *e.UserID,
		RemoteIP:   *e.RemoteIP,
		Timestamp:  *e.Timestamp,
		UserAgent:  e.UserAgent,
	}
}
