package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/database"
	"github.com/gdg-garage/campus-events-api/internal/events"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/gdg-garage/campus-events-api/internal/venues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	store     *events.Store
	ledger    *Ledger
	organizer models.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Seed(db, false))

	registry := venues.NewRegistry(db)
	f := fixture{
		db:        db,
		store:     events.NewStore(db, registry),
		ledger:    New(db, registry),
		organizer: models.User{Name: "Asha", Type: models.UserTypeOrganizer, ClubID: "csc"},
	}
	require.NoError(t, db.Create(&f.organizer).Error)
	return f
}

func (f fixture) event(t *testing.T, venue string, fee *int) models.Event {
	t.Helper()
	draft := events.Draft{
		Name:        "Go Workshop",
		Club:        "Computer Science Club",
		Domain:      "Technology",
		Date:        "2030-03-14",
		Time:        "10:00",
		Venue:       venue,
		Description: "Hands-on introduction to Go.",
		IsPaid:      fee != nil,
		Fee:         fee,
	}
	ev, err := f.store.CreateEvent(context.Background(), draft, f.organizer.ID)
	require.NoError(t, err)
	return ev
}

func (f fixture) student(t *testing.T) models.User {
	t.Helper()
	u := models.User{Name: "Student", Type: models.UserTypeStudent}
	require.NoError(t, f.db.Create(&u).Error)
	return u
}

func (f fixture) count(t *testing.T, eventID uint) int {
	t.Helper()
	list, err := f.ledger.List(context.Background(), eventID)
	require.NoError(t, err)
	return len(list)
}

func TestRegister_FreeEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := f.event(t, "C Block Seminar Hall", nil)

	stamp := time.Date(2030, 3, 1, 9, 30, 0, 0, time.UTC)
	l := f.ledger.WithClock(func() time.Time { return stamp })

	first, err := l.Register(ctx, ev.ID, f.student(t).ID, "")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.True(t, first.Timestamp.Equal(stamp))
	assert.Nil(t, first.Attended)

	second, err := l.Register(ctx, ev.ID, f.student(t).ID, "IGNORED")
	require.NoError(t, err)
	assert.Empty(t, second.TransactionID, "free events carry no transaction id")

	stored, err := f.store.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, Count(stored))
	assert.Equal(t, first.ID, stored.Registrations[0].ID, "insertion order")
}

func TestRegister_Duplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := f.event(t, "C Block Seminar Hall", nil)
	student := f.student(t)

	_, err := f.ledger.Register(ctx, ev.ID, student.ID, "")
	require.NoError(t, err)

	_, err = f.ledger.Register(ctx, ev.ID, student.ID, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateRegistration, apperr.KindOf(err))
	assert.Equal(t, 1, f.count(t, ev.ID))
}

func TestRegister_PaymentRequired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fee := 300
	ev := f.event(t, "C Block Seminar Hall", &fee)
	student := f.student(t)

	for _, txn := range []string{"", "   "} {
		_, err := f.ledger.Register(ctx, ev.ID, student.ID, txn)
		assert.Equal(t, apperr.KindPaymentRequired, apperr.KindOf(err))
	}
	assert.Equal(t, 0, f.count(t, ev.ID))

	reg, err := f.ledger.Register(ctx, ev.ID, student.ID, "TXN1")
	require.NoError(t, err)
	assert.Equal(t, "TXN1", reg.TransactionID)
	assert.Equal(t, 300, reg.Fee)
}

func TestRegister_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := f.event(t, "C Block Seminar Hall", nil)

	_, err := f.ledger.Register(ctx, 999, f.student(t).ID, "")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = f.ledger.Register(ctx, ev.ID, 999, "")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRegister_Capacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := f.event(t, "E Block Classrooms", nil)

	venue, err := venues.NewRegistry(f.db).Lookup(ctx, "E Block Classrooms")
	require.NoError(t, err)

	for i := 0; i < venue.Capacity; i++ {
		_, err := f.ledger.Register(ctx, ev.ID, f.student(t).ID, "")
		require.NoError(t, err)
	}

	_, err = f.ledger.Register(ctx, ev.ID, f.student(t).ID, "")
	assert.Equal(t, apperr.KindCapacity, apperr.KindOf(err))
	assert.Equal(t, venue.Capacity, f.count(t, ev.ID))
}

// TestRegister_Concurrent fires the same registration from many goroutines:
// exactly one may win.
func TestRegister_Concurrent(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, "APJ Auditorium", nil)
	student := f.student(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes, duplicates := 0, 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ledger.Register(context.Background(), ev.ID, student.ID, "")

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if apperr.KindOf(err) == apperr.KindDuplicateRegistration {
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 19, duplicates)
	assert.Equal(t, 1, f.count(t, ev.ID))
}

func TestMarkAttendance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := f.event(t, "C Block Seminar Hall", nil)
	other := f.event(t, "B Block Seminar Hall", nil)

	a, err := f.ledger.Register(ctx, ev.ID, f.student(t).ID, "")
	require.NoError(t, err)
	_, err = f.ledger.Register(ctx, ev.ID, f.student(t).ID, "")
	require.NoError(t, err)

	marked, err := f.ledger.MarkAttendance(ctx, ev.ID, a.ID, true)
	require.NoError(t, err)
	require.NotNil(t, marked.Attended)
	assert.True(t, *marked.Attended)

	stored, err := f.store.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, Count(stored))
	assert.Equal(t, 1, CountAttended(stored))

	_, err = f.ledger.MarkAttendance(ctx, ev.ID, a.ID, false)
	require.NoError(t, err)
	stored, err = f.store.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, CountAttended(stored))
	require.NotNil(t, stored.Registrations[0].Attended, "explicit false is kept")

	t.Run("WrongEvent", func(t *testing.T) {
		_, err := f.ledger.MarkAttendance(ctx, other.ID, a.ID, true)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("UnknownRegistration", func(t *testing.T) {
		_, err := f.ledger.MarkAttendance(ctx, ev.ID, 999, true)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestForUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.student(t)
	a := f.event(t, "C Block Seminar Hall", nil)
	b := f.event(t, "B Block Seminar Hall", nil)

	_, err := f.ledger.Register(ctx, a.ID, student.ID, "")
	require.NoError(t, err)
	_, err = f.ledger.Register(ctx, b.ID, student.ID, "")
	require.NoError(t, err)

	list, err := f.ledger.ForUser(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].EventID)
	assert.Equal(t, b.ID, list[1].EventID)
}
