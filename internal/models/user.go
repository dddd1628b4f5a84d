package models

import (
	"time"
)

type UserType string

const (
	UserTypeStudent   UserType = "student"
	UserTypeOrganizer UserType = "organizer"
)

func (t UserType) Valid() bool {
	return t == UserTypeStudent || t == UserTypeOrganizer
}

// User is fabricated from the login form and never changes afterwards.
// ClubID is set iff Type is organizer.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	RollNumber string    `json:"roll_number"`
	Year       string    `json:"year"`
	Branch     string    `json:"branch"`
	Type       UserType  `gorm:"type:varchar(16);not null" json:"type"`
	ClubID     string    `json:"club_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u User) IsOrganizer() bool {
	return u.Type == UserTypeOrganizer
}
