// Package venues is the fixed registry of bookable campus venues. A venue is
// bookable when its availability flag is set and, for a given event, when no
// other event holds the same (venue, date, time) slot.
package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"gorm.io/gorm"
)

type Registry struct {
	db *gorm.DB
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// WithDB returns a registry bound to db, typically an open transaction.
func (r *Registry) WithDB(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

func (r *Registry) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Order("id asc").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (r *Registry) Lookup(ctx context.Context, name string) (models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Venue{}, apperr.NotFound("venue", name)
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("lookup venue: %w", err)
	}
	return venue, nil
}

// IsAvailable reports whether name is a known venue open for booking.
// Unknown names are simply unavailable.
func (r *Registry) IsAvailable(ctx context.Context, name string) bool {
	venue, err := r.Lookup(ctx, name)
	return err == nil && venue.Available
}

// IsAvailableAt also requires the (date, time) slot to be free.
func (r *Registry) IsAvailableAt(ctx context.Context, name, date, time string) bool {
	venue, err := r.Lookup(ctx, name)
	if err != nil || !venue.Available {
		return false
	}
	taken, err := r.slotTaken(ctx, venue.ID, date, time, 0)
	return err == nil && !taken
}

func (r *Registry) slotTaken(ctx context.Context, venueID uint, date, time string, exceptEventID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.VenueBooking{}).
		Where("venue_id = ? AND date = ? AND time = ?", venueID, date, strings.TrimSpace(time))
	if exceptEventID != 0 {
		q = q.Where("event_id <> ?", exceptEventID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check venue slot: %w", err)
	}
	return count > 0, nil
}

// Reserve books the slot for eventID, replacing any booking the event held.
// It fails with a ValidationError when the venue is unknown, closed, or the
// slot belongs to another event.
func (r *Registry) Reserve(ctx context.Context, venueName string, eventID uint, date, time string) error {
	venue, err := r.Lookup(ctx, venueName)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return apperr.Validation("venue", "unknown venue %q", venueName)
	}
	if err != nil {
		return err
	}
	if !venue.Available {
		return apperr.Validation("venue", "%s is not available", venue.Name)
	}

	taken, err := r.slotTaken(ctx, venue.ID, date, time, eventID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Validation("venue", "%s is already booked on %s at %s", venue.Name, date, time)
	}

	if err := r.Release(ctx, eventID); err != nil {
		return err
	}

	booking := models.VenueBooking{VenueID: venue.ID, Date: date, Time: strings.TrimSpace(time), EventID: eventID}
	if err := r.db.WithContext(ctx).Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Validation("venue", "%s is already booked on %s at %s", venue.Name, date, time)
		}
		return fmt.Errorf("reserve venue: %w", err)
	}
	return nil
}

func (r *Registry) Release(ctx context.Context, eventID uint) error {
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.VenueBooking{}).Error; err != nil {
		return fmt.Errorf("release venue: %w", err)
	}
	return nil
}

// SetAvailable opens or closes a venue for new bookings. Existing bookings
// are kept.
func (r *Registry) SetAvailable(ctx context.Context, name string, available bool) error {
	venue, err := r.Lookup(ctx, name)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Model(&venue).Update("available", available).Error; err != nil {
		return fmt.Errorf("set venue availability: %w", err)
	}
	return nil
}

func (r *Registry) Bookings(ctx context.Context, name string) ([]models.VenueBooking, error) {
	venue, err := r.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	var bookings []models.VenueBooking
	if err := r.db.WithContext(ctx).Where("venue_id = ?", venue.ID).Order("date asc, time asc").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
