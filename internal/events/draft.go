package events

import (
	"strings"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/models"
)

// Draft is the organizer-supplied part of an event. Fee is read only when
// IsPaid is set.
type Draft struct {
	Name           string
	Club           string
	Domain         string
	Date           string
	Time           string
	Venue          string
	Poster         string
	Description    string
	IsPaid         bool
	Fee            *int
	LaptopRequired bool
}

// Validate checks the required fields and returns the draft's pricing.
func (d Draft) Validate() (models.Pricing, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"club", d.Club},
		{"domain", d.Domain},
		{"date", d.Date},
		{"time", d.Time},
		{"venue", d.Venue},
		{"description", d.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return models.Pricing{}, apperr.Validation(r.field, "is required")
		}
	}

	if _, err := time.Parse(models.DateLayout, strings.TrimSpace(d.Date)); err != nil {
		return models.Pricing{}, apperr.Validation("date", "%q is not an ISO date (YYYY-MM-DD)", d.Date)
	}

	if !d.IsPaid {
		return models.Free(), nil
	}
	if d.Fee == nil {
		return models.Pricing{}, apperr.Validation("fee", "is required for paid events")
	}
	pricing, err := models.Paid(*d.Fee)
	if err != nil {
		return models.Pricing{}, apperr.Validation("fee", "%v", err)
	}
	return pricing, nil
}

func (d Draft) applyTo(ev *models.Event, pricing models.Pricing) {
	ev.Name = strings.TrimSpace(d.Name)
	ev.Club = strings.TrimSpace(d.Club)
	ev.Domain = strings.TrimSpace(d.Domain)
	ev.Date = strings.TrimSpace(d.Date)
	ev.Time = strings.TrimSpace(d.Time)
	ev.Venue = strings.TrimSpace(d.Venue)
	ev.Poster = strings.TrimSpace(d.Poster)
	ev.Description = strings.TrimSpace(d.Description)
	ev.Pricing = pricing
	ev.LaptopRequired = d.LaptopRequired
}

// DraftOf returns the draft that reproduces ev.
func DraftOf(ev models.Event) Draft {
	return Draft{
		Name:           ev.Name,
		Club:           ev.Club,
		Domain:         ev.Domain,
		Date:           ev.Date,
		Time:           ev.Time,
		Venue:          ev.Venue,
		Poster:         ev.Poster,
		Description:    ev.Description,
		IsPaid:         ev.Pricing.IsPaid(),
		Fee:            ev.Pricing.FeePtr(),
		LaptopRequired: ev.LaptopRequired,
	}
}
