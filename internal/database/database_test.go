package database

import (
	"testing"

	"github.com/gdg-garage/campus-events-api/internal/models"
)

func TestSeed(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := Seed(db, true); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	// Second run must not duplicate anything.
	if err := Seed(db, true); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	var venues, events, bookings, users int64
	db.Model(&models.Venue{}).Count(&venues)
	db.Model(&models.Event{}).Count(&events)
	db.Model(&models.VenueBooking{}).Count(&bookings)
	db.Model(&models.User{}).Count(&users)

	if venues != int64(len(DefaultVenues)) {
		t.Errorf("expected %d venues, got %d", len(DefaultVenues), venues)
	}
	if events != 3 {
		t.Errorf("expected 3 demo events, got %d", events)
	}
	if bookings != 3 {
		t.Errorf("expected 3 venue bookings, got %d", bookings)
	}
	if users != 3 {
		t.Errorf("expected 3 organizers, got %d", users)
	}

	var festival models.Event
	if err := db.Where("name = ?", "Cultural Fest").First(&festival).Error; err != nil {
		t.Fatalf("failed to find Cultural Fest: %v", err)
	}
	if festival.Pricing.IsPaid() {
		t.Error("expected Cultural Fest to be free")
	}

	var summit models.Event
	db.Where("name = ?", "Tech Summit 2024").First(&summit)
	if fee, ok := summit.Pricing.Fee(); !ok || fee != 500 {
		t.Errorf("expected Tech Summit fee 500, got %d (paid=%v)", fee, ok)
	}
}

func TestSeed_VenuesOnly(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := Seed(db, false); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var events int64
	db.Model(&models.Event{}).Count(&events)
	if events != 0 {
		t.Errorf("expected no events, got %d", events)
	}
}
