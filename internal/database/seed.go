package database

import (
	"fmt"

	"github.com/gdg-garage/campus-events-api/internal/models"
	"gorm.io/gorm"
)

// DefaultVenues is the fixed venue registry of the campus.
var DefaultVenues = []models.Venue{
	{Name: "APJ Auditorium", Capacity: 500, Available: true},
	{Name: "C Block Seminar Hall", Capacity: 150, Available: true},
	{Name: "B Block Seminar Hall", Capacity: 200, Available: true},
	{Name: "E Block Classrooms", Capacity: 50, Available: true},
}

type demoEvent struct {
	organizer models.User
	event     models.Event
	fee       int
}

func demoEvents() []demoEvent {
	return []demoEvent{
		{
			organizer: models.User{Name: "CS Club Lead", Type: models.UserTypeOrganizer, ClubID: "csc"},
			event: models.Event{
				Name:           "Tech Summit 2024",
				Club:           "Computer Science Club",
				Domain:         "Technology",
				Date:           "2024-12-20",
				Time:           "10:00 AM",
				Venue:          "APJ Auditorium",
				Poster:         "https://images.pexels.com/photos/1181676/pexels-photo-1181676.jpeg?auto=compress&cs=tinysrgb&w=400",
				Description:    "Join us for the biggest tech event of the year featuring industry experts and innovative workshops.",
				LaptopRequired: true,
			},
			fee: 500,
		},
		{
			organizer: models.User{Name: "Cultural Committee Lead", Type: models.UserTypeOrganizer, ClubID: "cultural"},
			event: models.Event{
				Name:        "Cultural Fest",
				Club:        "Cultural Committee",
				Domain:      "Arts & Culture",
				Date:        "2024-12-25",
				Time:        "6:00 PM",
				Venue:       "C Block Seminar Hall",
				Poster:      "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg?auto=compress&cs=tinysrgb&w=400",
				Description: "Celebrate diversity and creativity in our annual cultural festival with performances and competitions.",
			},
			fee: -1,
		},
		{
			organizer: models.User{Name: "E-Cell Lead", Type: models.UserTypeOrganizer, ClubID: "ecell"},
			event: models.Event{
				Name:           "Innovation Workshop",
				Club:           "Entrepreneurship Cell",
				Domain:         "Business",
				Date:           "2024-12-18",
				Time:           "2:00 PM",
				Venue:          "B Block Seminar Hall",
				Poster:         "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=400",
				Description:    "Learn about startup ecosystems and innovation methodologies from successful entrepreneurs.",
				LaptopRequired: true,
			},
			fee: 300,
		},
	}
}

// Seed fills the venue registry when it is empty and, if demo is set, adds
// the demo events with their organizers. Running it twice is a no-op.
func Seed(db *gorm.DB, demo bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var venueCount int64
		if err := tx.Model(&models.Venue{}).Count(&venueCount).Error; err != nil {
			return err
		}
		if venueCount == 0 {
			venues := make([]models.Venue, len(DefaultVenues))
			copy(venues, DefaultVenues)
			if err := tx.Create(&venues).Error; err != nil {
				return fmt.Errorf("seed venues: %w", err)
			}
		}

		if !demo {
			return nil
		}

		var eventCount int64
		if err := tx.Model(&models.Event{}).Count(&eventCount).Error; err != nil {
			return err
		}
		if eventCount > 0 {
			return nil
		}

		for _, d := range demoEvents() {
			organizer := d.organizer
			if err := tx.Create(&organizer).Error; err != nil {
				return fmt.Errorf("seed organizer: %w", err)
			}

			event := d.event
			event.OrganizerID = organizer.ID
			if d.fee >= 0 {
				pricing, err := models.Paid(d.fee)
				if err != nil {
					return err
				}
				event.Pricing = pricing
			}
			if err := tx.Create(&event).Error; err != nil {
				return fmt.Errorf("seed event: %w", err)
			}

			var venue models.Venue
			if err := tx.Where("name = ?", event.Venue).First(&venue).Error; err != nil {
				return fmt.Errorf("seed event venue: %w", err)
			}
			booking := models.VenueBooking{VenueID: venue.ID, Date: event.Date, Time: event.Time, EventID: event.ID}
			if err := tx.Create(&booking).Error; err != nil {
				return fmt.Errorf("seed venue booking: %w", err)
			}
		}
		return nil
	})
}
