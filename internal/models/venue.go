package models

import (
	"time"
)

type Venue struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Capacity  int    `gorm:"not null" json:"capacity"`
	Available bool   `json:"available"`
}

// VenueBooking reserves one (venue, date, time) slot for one event.
type VenueBooking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VenueID   uint      `gorm:"uniqueIndex:idx_venue_slot;not null" json:"venue_id"`
	Date      string    `gorm:"uniqueIndex:idx_venue_slot;not null" json:"date"`
	Time      string    `gorm:"uniqueIndex:idx_venue_slot;not null" json:"time"`
	EventID   uint      `gorm:"uniqueIndex;not null" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}
