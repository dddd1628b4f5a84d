package apperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		description string
		err         error
		expected    Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", fmt.Errorf("disk on fire"), KindUnknown},
		{"validation", Validation("name", "is required"), KindValidation},
		{"wrapped validation", fmt.Errorf("create event: %w", Validation("fee", "must not be negative")), KindValidation},
		{"duplicate", &DuplicateRegistrationError{UserID: 1, EventID: 2}, KindDuplicateRegistration},
		{"payment", fmt.Errorf("register: %w", &PaymentRequiredError{EventID: 2}), KindPaymentRequired},
		{"not found", NotFound("event", uint(9)), KindNotFound},
		{"forbidden", Forbidden(3, "not the organizer of event 9"), KindForbidden},
		{"capacity", &CapacityError{EventID: 1, Venue: "E Block Classrooms", Capacity: 50}, KindCapacity},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, KindOf(test.err), test.description)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid name: is required", Validation("name", "is required").Error())
	assert.Equal(t, "event 7 not found", NotFound("event", uint(7)).Error())
	assert.Equal(t, "user 4 is already registered for event 7", (&DuplicateRegistrationError{UserID: 4, EventID: 7}).Error())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, 400, Status(Validation("date", "bad")))
	assert.Equal(t, 409, Status(&DuplicateRegistrationError{}))
	assert.Equal(t, 409, Status(&CapacityError{}))
	assert.Equal(t, 402, Status(&PaymentRequiredError{}))
	assert.Equal(t, 404, Status(NotFound("event", 1)))
	assert.Equal(t, 403, Status(Forbidden(1, "no")))
	assert.Equal(t, 500, Status(fmt.Errorf("boom")))
}
