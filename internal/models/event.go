package models

import (
	"time"
)

// DateLayout is the ISO date format of Event.Date.
const DateLayout = "2006-01-02"

// Event owns its registrations: they are removed with it and never outlive it.
// Venue is the venue name, not a foreign key.
type Event struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Club           string         `gorm:"index;not null" json:"club"`
	Domain         string         `gorm:"index;not null" json:"domain"`
	Date           string         `gorm:"not null" json:"date"`
	Time           string         `gorm:"not null" json:"time"`
	Venue          string         `gorm:"not null" json:"venue"`
	Poster         string         `json:"poster"`
	Description    string         `gorm:"type:text" json:"description"`
	Pricing        Pricing        `gorm:"column:fee" json:"-"`
	LaptopRequired bool           `json:"laptop_required"`
	OrganizerID    uint           `gorm:"index;not null" json:"organizer_id"`
	Registrations  []Registration `gorm:"foreignKey:EventID" json:"registrations"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Clone returns a copy that shares no registration storage with e.
func (e Event) Clone() Event {
	c := e
	if e.Registrations != nil {
		c.Registrations = make([]Registration, len(e.Registrations))
		for i, r := range e.Registrations {
			c.Registrations[i] = r.clone()
		}
	}
	return c
}
