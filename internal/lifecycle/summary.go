package lifecycle

import (
	"github.com/gdg-garage/campus-events-api/internal/ledger"
	"github.com/gdg-garage/campus-events-api/internal/models"
)

// Summary is the post-event analytics of one event.
type Summary struct {
	EventID            uint           `json:"eventId"`
	EventName          string         `json:"eventName"`
	Club               string         `json:"club"`
	Date               string         `json:"date"`
	Venue              string         `json:"venue"`
	TotalRegistrations int            `json:"totalRegistrations"`
	ActualAttendance   int            `json:"actualAttendance"`
	NoShows            int            `json:"noShows"`
	AttendanceRate     float64        `json:"attendanceRate"`
	PerformanceTier    Tier           `json:"performanceTier"`
	TotalRevenue       int            `json:"totalRevenue"`
	CollectedRevenue   int            `json:"collectedRevenue"`
	RegistrationsByDay map[string]int `json:"registrationsByDay"`
}

func Summarize(ev models.Event) Summary {
	rate := AttendanceRate(ev)
	total := ledger.Count(ev)
	attended := ledger.CountAttended(ev)

	byDay := make(map[string]int)
	for _, r := range ev.Registrations {
		byDay[r.Timestamp.UTC().Format(models.DateLayout)]++
	}

	return Summary{
		EventID:            ev.ID,
		EventName:          ev.Name,
		Club:               ev.Club,
		Date:               ev.Date,
		Venue:              ev.Venue,
		TotalRegistrations: total,
		ActualAttendance:   attended,
		NoShows:            total - attended,
		AttendanceRate:     RoundRate(rate),
		PerformanceTier:    PerformanceTier(rate),
		TotalRevenue:       TotalRevenue(ev),
		CollectedRevenue:   CollectedRevenue(ev),
		RegistrationsByDay: byDay,
	}
}
