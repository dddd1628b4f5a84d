package handlers

import (
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/ledger"
	"github.com/gdg-garage/campus-events-api/internal/lifecycle"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"go.uber.org/zap"
)

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// httpError turns a domain error into a huma status error. Anything that is
// not a domain error is logged and hidden behind a 500.
func httpError(logger *zap.Logger, err error) error {
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}
	if apperr.KindOf(err) == apperr.KindUnknown {
		logger.Error("request failed", zap.Error(err))
		return huma.Error500InternalServerError("Internal server error")
	}
	return huma.NewError(apperr.Status(err), err.Error())
}

// EventView is an event as shown to any signed-in user. Registrations are
// only exposed through the organizer endpoints.
type EventView struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Club              string          `json:"club"`
	Domain            string          `json:"domain"`
	Date              string          `json:"date"`
	Time              string          `json:"time"`
	Venue             string          `json:"venue"`
	Poster            string          `json:"poster,omitempty"`
	Description       string          `json:"description"`
	IsPaid            bool            `json:"is_paid"`
	Fee               *int            `json:"fee,omitempty"`
	LaptopRequired    bool            `json:"laptop_required"`
	OrganizerID       uint            `json:"organizer_id"`
	State             lifecycle.State `json:"state" enum:"upcoming,past"`
	DaysRemaining     int             `json:"days_remaining"`
	RegistrationCount int             `json:"registration_count"`
}

func viewOf(ev models.Event, now time.Time) EventView {
	v := EventView{
		ID:                ev.ID,
		Name:              ev.Name,
		Club:              ev.Club,
		Domain:            ev.Domain,
		Date:              ev.Date,
		Time:              ev.Time,
		Venue:             ev.Venue,
		Poster:            ev.Poster,
		Description:       ev.Description,
		IsPaid:            ev.Pricing.IsPaid(),
		Fee:               ev.Pricing.FeePtr(),
		LaptopRequired:    ev.LaptopRequired,
		OrganizerID:       ev.OrganizerID,
		State:             lifecycle.StateOf(ev, now),
		RegistrationCount: ledger.Count(ev),
	}
	if v.State == lifecycle.StateUpcoming {
		v.DaysRemaining = lifecycle.DaysRemaining(ev, now)
	}
	return v
}

func viewsOf(list []models.Event, now time.Time) []EventView {
	out := make([]EventView, 0, len(list))
	for _, ev := range list {
		out = append(out, viewOf(ev, now))
	}
	return out
}

// FileOutput is a downloadable document.
type FileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func attachment(contentType, name string, body []byte) *FileOutput {
	return &FileOutput{
		ContentType:        contentType,
		ContentDisposition: `attachment; filename="` + name + `"`,
		Body:               body,
	}
}

func protected(o *huma.Operation) {
	o.Security = []map[string][]string{{"cookieAuth": {}}}
}
