// Package ledger records registrations for events and their attendance.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/gdg-garage/campus-events-api/internal/venues"
	"gorm.io/gorm"
)

type Ledger struct {
	db     *gorm.DB
	venues *venues.Registry
	now    func() time.Time
}

func New(db *gorm.DB, registry *venues.Registry) *Ledger {
	return &Ledger{db: db, venues: registry, now: time.Now}
}

// WithClock returns a copy of the ledger that stamps registrations with now.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	c := *l
	c.now = now
	return &c
}

// Register appends a registration of userID to eventID. The duplicate check
// and the insert run in one transaction. A rejected call writes nothing.
func (l *Ledger) Register(ctx context.Context, eventID, userID uint, transactionID string) (models.Registration, error) {
	transactionID = strings.TrimSpace(transactionID)

	var registration models.Registration
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := first(tx, &event, "event", eventID); err != nil {
			return err
		}
		var user models.User
		if err := first(tx, &user, "user", userID); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Registration{}).
			Where("user_id = ? AND event_id = ?", userID, eventID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("check registration: %w", err)
		}
		if existing > 0 {
			return &apperr.DuplicateRegistrationError{UserID: userID, EventID: eventID}
		}

		fee, paid := event.Pricing.Fee()
		if paid && transactionID == "" {
			return &apperr.PaymentRequiredError{EventID: eventID}
		}
		if !paid {
			transactionID = ""
		}

		if err := l.checkCapacity(ctx, tx, event); err != nil {
			return err
		}

		registration = models.Registration{
			UserID:        userID,
			EventID:       eventID,
			TransactionID: transactionID,
			Fee:           fee,
			Timestamp:     l.now(),
		}
		if err := tx.Create(&registration).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &apperr.DuplicateRegistrationError{UserID: userID, EventID: eventID}
			}
			return fmt.Errorf("create registration: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}

// checkCapacity bounds registrations by the seats of the event's venue.
// Events at a venue outside the registry are unbounded.
func (l *Ledger) checkCapacity(ctx context.Context, tx *gorm.DB, event models.Event) error {
	venue, err := l.venues.WithDB(tx).Lookup(ctx, event.Venue)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	var count int64
	if err := tx.Model(&models.Registration{}).Where("event_id = ?", event.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if int(count) >= venue.Capacity {
		return &apperr.CapacityError{EventID: event.ID, Venue: venue.Name, Capacity: venue.Capacity}
	}
	return nil
}

// MarkAttendance sets the attended flag of registrationID, which must belong
// to eventID.
func (l *Ledger) MarkAttendance(ctx context.Context, eventID, registrationID uint, attended bool) (models.Registration, error) {
	var registration models.Registration
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND event_id = ?", registrationID, eventID).First(&registration).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("registration", registrationID)
		}
		if err != nil {
			return fmt.Errorf("find registration: %w", err)
		}

		registration.Attended = &attended
		if err := tx.Model(&registration).Update("attended", attended).Error; err != nil {
			return fmt.Errorf("mark attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}

// List returns the registrations of eventID in insertion order.
func (l *Ledger) List(ctx context.Context, eventID uint) ([]models.Registration, error) {
	var event models.Event
	if err := first(l.db.WithContext(ctx), &event, "event", eventID); err != nil {
		return nil, err
	}
	registrations := []models.Registration{}
	if err := l.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id asc").Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return registrations, nil
}

// ForUser returns every registration userID holds, oldest first.
func (l *Ledger) ForUser(ctx context.Context, userID uint) ([]models.Registration, error) {
	registrations := []models.Registration{}
	if err := l.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("list user registrations: %w", err)
	}
	return registrations, nil
}

func Count(ev models.Event) int {
	return len(ev.Registrations)
}

func CountAttended(ev models.Event) int {
	n := 0
	for _, r := range ev.Registrations {
		if r.HasAttended() {
			n++
		}
	}
	return n
}

func first(db *gorm.DB, dest any, entity string, id uint) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, id)
	}
	if err != nil {
		return fmt.Errorf("find %s: %w", entity, err)
	}
	return nil
}
