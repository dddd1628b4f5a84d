package models

import (
	"time"
)

// Registration is unique per (UserID, EventID). TransactionID is set iff the
// event was paid at registration time, and Fee snapshots the fee charged then.
type Registration struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex:idx_user_event;not null" json:"user_id"`
	EventID       uint      `gorm:"uniqueIndex:idx_user_event;not null" json:"event_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Fee           int       `json:"fee"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
	Attended      *bool     `json:"attended,omitempty"`
}

func (r Registration) HasAttended() bool {
	return r.Attended != nil && *r.Attended
}

func (r Registration) clone() Registration {
	c := r
	if r.Attended != nil {
		attended := *r.Attended
		c.Attended = &attended
	}
	return c
}
