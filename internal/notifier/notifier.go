package notifier

import (
	"context"
	"errors"

	"github.com/gdg-garage/campus-events-api/internal/models"
)

// Notifier announces event lifecycle changes. Failures are reported to the
// caller, which logs them; they never undo the change.
type Notifier interface {
	NotifyEventCreated(ctx context.Context, event models.Event, organizer models.User) error
	NotifyEventDeleted(ctx context.Context, event models.Event) error
	NotifyRegistration(ctx context.Context, user models.User, event models.Event, registration models.Registration) error
}

// Multi fans every notification out to all of its notifiers.
type Multi []Notifier

func (m Multi) NotifyEventCreated(ctx context.Context, event models.Event, organizer models.User) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.NotifyEventCreated(ctx, event, organizer))
	}
	return errors.Join(errs...)
}

func (m Multi) NotifyEventDeleted(ctx context.Context, event models.Event) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.NotifyEventDeleted(ctx, event))
	}
	return errors.Join(errs...)
}

func (m Multi) NotifyRegistration(ctx context.Context, user models.User, event models.Event, registration models.Registration) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.NotifyRegistration(ctx, user, event, registration))
	}
	return errors.Join(errs...)
}
