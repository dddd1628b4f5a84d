package lifecycle

import (
	"testing"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestUpcomingPastExclusive: exactly one of IsUpcoming and IsPast holds for
// any date and any instant.
func TestUpcomingPastExclusive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	properties.Property("upcoming xor past", prop.ForAll(
		func(dayOffset int, minuteOffset int) bool {
			ev := models.Event{Date: base.AddDate(0, 0, dayOffset).Format(models.DateLayout)}
			now := base.Add(time.Duration(minuteOffset) * time.Minute)
			return IsUpcoming(ev, now) != IsPast(ev, now)
		},
		gen.IntRange(-400, 400),
		gen.IntRange(-400*24*60, 400*24*60),
	))

	properties.TestingRun(t)
}

// TestRevenueIsFeeTimesCount: paid revenue is fee * registrations, free is 0.
func TestRevenueIsFeeTimesCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("revenue", prop.ForAll(
		func(fee int, count int, isPaid bool) bool {
			ev := models.Event{Registrations: make([]models.Registration, count)}
			if !isPaid {
				return TotalRevenue(ev) == 0
			}
			pricing, err := models.Paid(fee)
			if err != nil {
				return false
			}
			ev.Pricing = pricing
			return TotalRevenue(ev) == fee*count
		},
		gen.IntRange(0, 5000),
		gen.IntRange(0, 500),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestAttendanceRateBounds: the rate stays within [0, 100] and reaches 100
// only when everyone attended.
func TestAttendanceRateBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("rate bounds", prop.ForAll(
		func(flags []bool) bool {
			ev := models.Event{Registrations: make([]models.Registration, len(flags))}
			all := true
			for i, f := range flags {
				attended := f
				ev.Registrations[i].Attended = &attended
				all = all && f
			}
			rate := AttendanceRate(ev)
			if rate < 0 || rate > 100 {
				return false
			}
			if len(flags) == 0 {
				return rate == 0
			}
			return (rate == 100) == all
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
