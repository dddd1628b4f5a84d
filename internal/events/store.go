// Package events stores campus events. Results are detached copies: callers
// may modify them freely without affecting the store.
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/gdg-garage/campus-events-api/internal/venues"
	"gorm.io/gorm"
)

type Store struct {
	db     *gorm.DB
	venues *venues.Registry
}

func NewStore(db *gorm.DB, registry *venues.Registry) *Store {
	return &Store{db: db, venues: registry}
}

func withRegistrations(db *gorm.DB) *gorm.DB {
	return db.Preload("Registrations", func(db *gorm.DB) *gorm.DB {
		return db.Order("registrations.id asc")
	})
}

func detach(list []models.Event) []models.Event {
	out := make([]models.Event, len(list))
	for i, ev := range list {
		out[i] = detachOne(ev)
	}
	return out
}

func detachOne(ev models.Event) models.Event {
	c := ev.Clone()
	if c.Registrations == nil {
		c.Registrations = []models.Registration{}
	}
	return c
}

// CreateEvent validates draft, books its venue slot and stores the event
// for organizerID. Nothing is written when any step fails.
func (s *Store) CreateEvent(ctx context.Context, draft Draft, organizerID uint) (models.Event, error) {
	pricing, err := draft.Validate()
	if err != nil {
		return models.Event{}, err
	}

	var event models.Event
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireOrganizer(tx, organizerID); err != nil {
			return err
		}

		draft.applyTo(&event, pricing)
		event.OrganizerID = organizerID
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("create event: %w", err)
		}

		return s.venues.WithDB(tx).Reserve(ctx, event.Venue, event.ID, event.Date, event.Time)
	})
	if err != nil {
		return models.Event{}, err
	}

	return detachOne(event), nil
}

// UpdateEvent replaces the descriptive fields of event id. Registrations are
// kept. Only the organizer who created the event may update it.
func (s *Store) UpdateEvent(ctx context.Context, actorID, id uint, draft Draft) (models.Event, error) {
	pricing, err := draft.Validate()
	if err != nil {
		return models.Event{}, err
	}

	var event models.Event
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findEvent(tx, id)
		if err != nil {
			return err
		}
		if err := RequireOwner(current, actorID); err != nil {
			return err
		}

		event = current
		draft.applyTo(&event, pricing)

		if event.Venue != current.Venue || event.Date != current.Date || event.Time != current.Time {
			if err := s.venues.WithDB(tx).Reserve(ctx, event.Venue, event.ID, event.Date, event.Time); err != nil {
				return err
			}
		}

		// Save would also upsert the preloaded registrations.
		if err := tx.Omit("Registrations").Save(&event).Error; err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Event{}, err
	}

	return detachOne(event), nil
}

// DeleteEvent removes event id together with its registrations and venue
// booking.
func (s *Store) DeleteEvent(ctx context.Context, actorID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findEvent(tx, id)
		if err != nil {
			return err
		}
		if err := RequireOwner(current, actorID); err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
			return fmt.Errorf("delete registrations: %w", err)
		}
		if err := s.venues.WithDB(tx).Release(ctx, id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Event{}, id).Error; err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}

func (s *Store) Get(ctx context.Context, id uint) (models.Event, error) {
	event, err := findEvent(s.db.WithContext(ctx), id)
	if err != nil {
		return models.Event{}, err
	}
	return detachOne(event), nil
}

// List returns every event in creation order.
func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	return s.query(ctx, "")
}

func (s *Store) QueryByOrganizer(ctx context.Context, organizerID uint) ([]models.Event, error) {
	return s.query(ctx, "organizer_id = ?", organizerID)
}

// QueryByDomain returns the events of domain other than excludeID.
func (s *Store) QueryByDomain(ctx context.Context, domain string, excludeID uint) ([]models.Event, error) {
	return s.query(ctx, "domain = ? AND id <> ?", domain, excludeID)
}

func (s *Store) QueryByClub(ctx context.Context, club string) ([]models.Event, error) {
	return s.query(ctx, "club = ?", club)
}

func (s *Store) query(ctx context.Context, where string, args ...any) ([]models.Event, error) {
	q := withRegistrations(s.db.WithContext(ctx)).Order("events.id asc")
	if where != "" {
		q = q.Where(where, args...)
	}
	var list []models.Event
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return detach(list), nil
}

// RequireOwner fails with a ForbiddenError unless actorID organized ev.
func RequireOwner(ev models.Event, actorID uint) error {
	if ev.OrganizerID != actorID {
		return apperr.Forbidden(actorID, fmt.Sprintf("not the organizer of event %d", ev.ID))
	}
	return nil
}

func findEvent(db *gorm.DB, id uint) (models.Event, error) {
	var event models.Event
	err := withRegistrations(db).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Event{}, apperr.NotFound("event", id)
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

func requireOrganizer(db *gorm.DB, userID uint) error {
	var user models.User
	err := db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("user", userID)
	}
	if err != nil {
		return fmt.Errorf("find organizer: %w", err)
	}
	if !user.IsOrganizer() {
		return apperr.Forbidden(userID, "only organizers can create events")
	}
	return nil
}
