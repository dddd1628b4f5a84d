// Package lifecycle derives the temporal state and the analytics of events.
// Nothing here mutates an event or touches storage.
//
// An event's instant is midnight UTC of its date; Event.Time is not folded
// in. An event is upcoming while that instant is not before now, so the
// boundary itself counts as upcoming.
package lifecycle

import (
	"math"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/ledger"
	"github.com/gdg-garage/campus-events-api/internal/models"
)

type State string

const (
	StateUpcoming State = "upcoming"
	StatePast     State = "past"
)

type Tier string

const (
	TierExcellent        Tier = "Excellent"
	TierGood             Tier = "Good"
	TierNeedsImprovement Tier = "NeedsImprovement"
)

const (
	ExcellentThreshold = 80.0
	GoodThreshold      = 60.0
)

// EventTime parses the event date. Dates are validated on create and update,
// so an error here means the row was written by something else.
func EventTime(ev models.Event) (time.Time, error) {
	return time.Parse(models.DateLayout, ev.Date)
}

// IsUpcoming reports whether the event date is at or after now. Events with
// an unparsable date are treated as past.
func IsUpcoming(ev models.Event, now time.Time) bool {
	at, err := EventTime(ev)
	if err != nil {
		return false
	}
	return !at.Before(now)
}

func IsPast(ev models.Event, now time.Time) bool {
	return !IsUpcoming(ev, now)
}

func StateOf(ev models.Event, now time.Time) State {
	if IsUpcoming(ev, now) {
		return StateUpcoming
	}
	return StatePast
}

// AttendanceRate is the percentage of registrations marked attended, 0 when
// there are none.
func AttendanceRate(ev models.Event) float64 {
	total := ledger.Count(ev)
	if total == 0 {
		return 0
	}
	return 100 * float64(ledger.CountAttended(ev)) / float64(total)
}

// RoundRate rounds a rate to two decimals for display.
func RoundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}

// TotalRevenue assumes every registration paid the event's current fee.
func TotalRevenue(ev models.Event) int {
	fee, paid := ev.Pricing.Fee()
	if !paid {
		return 0
	}
	return fee * ledger.Count(ev)
}

// CollectedRevenue sums the fee charged to each registration when it was made.
// It differs from TotalRevenue once the fee of an event has changed.
func CollectedRevenue(ev models.Event) int {
	total := 0
	for _, r := range ev.Registrations {
		total += r.Fee
	}
	return total
}

// DaysRemaining rounds up to whole days and is negative for past events.
func DaysRemaining(ev models.Event, now time.Time) int {
	at, err := EventTime(ev)
	if err != nil {
		return 0
	}
	return int(math.Ceil(at.Sub(now).Hours() / 24))
}

func PerformanceTier(rate float64) Tier {
	switch {
	case rate >= ExcellentThreshold:
		return TierExcellent
	case rate >= GoodThreshold:
		return TierGood
	default:
		return TierNeedsImprovement
	}
}

func Upcoming(list []models.Event, now time.Time) []models.Event {
	return filter(list, func(ev models.Event) bool { return IsUpcoming(ev, now) })
}

func Past(list []models.Event, now time.Time) []models.Event {
	return filter(list, func(ev models.Event) bool { return IsPast(ev, now) })
}

// SimilarEvents returns up to limit events sharing ev's domain, ev excluded.
func SimilarEvents(all []models.Event, ev models.Event, limit int) []models.Event {
	return head(filter(all, func(e models.Event) bool {
		return e.ID != ev.ID && e.Domain == ev.Domain
	}), limit)
}

// PastEventsByClub returns up to limit past events of club.
func PastEventsByClub(all []models.Event, club string, now time.Time, limit int) []models.Event {
	return head(filter(all, func(e models.Event) bool {
		return e.Club == club && IsPast(e, now)
	}), limit)
}

func filter(list []models.Event, keep func(models.Event) bool) []models.Event {
	out := []models.Event{}
	for _, ev := range list {
		if keep(ev) {
			out = append(out, ev)
		}
	}
	return out
}

func head(list []models.Event, limit int) []models.Event {
	if limit >= 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
