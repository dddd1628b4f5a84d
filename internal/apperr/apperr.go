// Package apperr holds the failure kinds returned by the event, venue and
// registration packages. Every error they return unwraps to exactly one of
// the types below, or is a storage failure.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindDuplicateRegistration
	KindPaymentRequired
	KindNotFound
	KindForbidden
	KindCapacity
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicateRegistration:
		return "duplicate_registration"
	case KindPaymentRequired:
		return "payment_required"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindCapacity:
		return "capacity"
	default:
		return "unknown"
	}
}

// ValidationError reports a missing or invalid input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type DuplicateRegistrationError struct {
	UserID  uint
	EventID uint
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("user %d is already registered for event %d", e.UserID, e.EventID)
}

type PaymentRequiredError struct {
	EventID uint
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("event %d is paid: a transaction id is required", e.EventID)
}

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// ForbiddenError is returned when the acting user does not own the resource
// or lacks the role the operation needs.
type ForbiddenError struct {
	UserID uint
	Reason string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("user %d: %s", e.UserID, e.Reason)
}

type CapacityError struct {
	EventID  uint
	Venue    string
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("event %d is full: %s seats %d", e.EventID, e.Venue, e.Capacity)
}

func Validation(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Forbidden(userID uint, reason string) error {
	return &ForbiddenError{UserID: userID, Reason: reason}
}

// KindOf classifies err. Wrapped errors are unwrapped.
func KindOf(err error) Kind {
	var (
		validation *ValidationError
		duplicate  *DuplicateRegistrationError
		payment    *PaymentRequiredError
		notFound   *NotFoundError
		forbidden  *ForbiddenError
		capacity   *CapacityError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &validation):
		return KindValidation
	case errors.As(err, &duplicate):
		return KindDuplicateRegistration
	case errors.As(err, &payment):
		return KindPaymentRequired
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &forbidden):
		return KindForbidden
	case errors.As(err, &capacity):
		return KindCapacity
	}
	return KindUnknown
}

// Status maps err to the HTTP status reported to clients.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindDuplicateRegistration, KindCapacity:
		return http.StatusConflict
	case KindPaymentRequired:
		return http.StatusPaymentRequired
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
