package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/campus-events-api/internal/auth"
	"github.com/gdg-garage/campus-events-api/internal/events"
	"github.com/gdg-garage/campus-events-api/internal/lifecycle"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/gdg-garage/campus-events-api/internal/notifier"
	"go.uber.org/zap"
)

const (
	similarEventsLimit = 3
	pastByClubLimit    = 3
)

type EventHandler struct {
	store       *events.Store
	authHandler *auth.AuthHandler
	notifier    notifier.Notifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewEventHandler(store *events.Store, authHandler *auth.AuthHandler, n notifier.Notifier, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		store:       store,
		authHandler: authHandler,
		notifier:    n,
		logger:      orNop(logger),
		now:         time.Now,
	}
}

type EventForm struct {
	Name           string `json:"name" doc:"Event name"`
	Club           string `json:"club" doc:"Organizing club"`
	Domain         string `json:"domain" doc:"Domain such as Technology or Cultural"`
	Date           string `json:"date" doc:"Event date (YYYY-MM-DD)" example:"2030-03-14"`
	Time           string `json:"time" doc:"Start time as shown to students" example:"10:00 AM"`
	Venue          string `json:"venue" doc:"Venue name"`
	Poster         string `json:"poster,omitempty" doc:"Poster URL"`
	Description    string `json:"description" doc:"Event description"`
	IsPaid         bool   `json:"is_paid,omitempty" doc:"Whether the event charges an entry fee"`
	Fee            *int   `json:"fee,omitempty" doc:"Entry fee in rupees, required when is_paid is set"`
	LaptopRequired bool   `json:"laptop_required,omitempty" doc:"Whether attendees must bring a laptop"`
}

func (f EventForm) draft() events.Draft {
	return events.Draft{
		Name:           f.Name,
		Club:           f.Club,
		Domain:         f.Domain,
		Date:           f.Date,
		Time:           f.Time,
		Venue:          f.Venue,
		Poster:         f.Poster,
		Description:    f.Description,
		IsPaid:         f.IsPaid,
		Fee:            f.Fee,
		LaptopRequired: f.LaptopRequired,
	}
}

type ListEventsRequest struct {
	Cookie string `header:"Cookie"`
	Domain string `query:"domain" doc:"Only events of this domain"`
	Club   string `query:"club" doc:"Only events of this club"`
	State  string `query:"state" enum:"upcoming,past" doc:"Only upcoming or past events"`
}

type ListEventsResponse struct {
	Body struct {
		Events []EventView `json:"events"`
	}
}

func (h *EventHandler) HandleList(ctx context.Context, input *ListEventsRequest) (*ListEventsResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	all, err := h.store.List(ctx)
	if err != nil {
		return nil, httpError(h.logger, err)
	}

	now := h.now()
	switch lifecycle.State(input.State) {
	case lifecycle.StateUpcoming:
		all = lifecycle.Upcoming(all, now)
	case lifecycle.StatePast:
		all = lifecycle.Past(all, now)
	}

	res := &ListEventsResponse{}
	res.Body.Events = make([]EventView, 0, len(all))
	for _, ev := range all {
		if input.Domain != "" && !strings.EqualFold(ev.Domain, input.Domain) {
			continue
		}
		if input.Club != "" && !strings.EqualFold(ev.Club, input.Club) {
			continue
		}
		res.Body.Events = append(res.Body.Events, viewOf(ev, now))
	}
	return res, nil
}

type EventRequest struct {
	Cookie string `header:"Cookie"`
	ID     uint   `path:"id" doc:"Event ID"`
}

type EventDetailResponse struct {
	Body struct {
		Event        EventView   `json:"event"`
		Similar      []EventView `json:"similar" doc:"Other events of the same domain"`
		PastFromClub []EventView `json:"past_from_club" doc:"Earlier events of the same club"`
	}
}

func (h *EventHandler) HandleGet(ctx context.Context, input *EventRequest) (*EventDetailResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	ev, err := h.store.Get(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	sameDomain, err := h.store.QueryByDomain(ctx, ev.Domain, ev.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	sameClub, err := h.store.QueryByClub(ctx, ev.Club)
	if err != nil {
		return nil, httpError(h.logger, err)
	}

	now := h.now()
	res := &EventDetailResponse{}
	res.Body.Event = viewOf(ev, now)
	res.Body.Similar = viewsOf(lifecycle.SimilarEvents(sameDomain, ev, similarEventsLimit), now)
	res.Body.PastFromClub = viewsOf(lifecycle.PastEventsByClub(sameClub, ev.Club, now, pastByClubLimit), now)
	return res, nil
}

type CreateEventRequest struct {
	Cookie string `header:"Cookie"`
	Body   EventForm
}

type EventResponse struct {
	Body EventView
}

func (h *EventHandler) HandleCreate(ctx context.Context, input *CreateEventRequest) (*EventResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	ev, err := h.store.CreateEvent(ctx, input.Body.draft(), user.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}

	h.logger.Info("event created",
		zap.Uint("event_id", ev.ID),
		zap.String("club", ev.Club),
		zap.Uint("organizer_id", user.ID),
	)
	if err := h.notifier.NotifyEventCreated(ctx, ev, user); err != nil {
		h.logger.Warn("event created notification failed", zap.Uint("event_id", ev.ID), zap.Error(err))
	}

	return &EventResponse{Body: viewOf(ev, h.now())}, nil
}

type UpdateEventRequest struct {
	Cookie string `header:"Cookie"`
	ID     uint   `path:"id" doc:"Event ID"`
	Body   EventForm
}

func (h *EventHandler) HandleUpdate(ctx context.Context, input *UpdateEventRequest) (*EventResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	ev, err := h.store.UpdateEvent(ctx, userID, input.ID, input.Body.draft())
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	h.logger.Info("event updated", zap.Uint("event_id", ev.ID))
	return &EventResponse{Body: viewOf(ev, h.now())}, nil
}

type DeleteEventResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *EventHandler) HandleDelete(ctx context.Context, input *EventRequest) (*DeleteEventResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	ev, err := h.store.Get(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	if err := h.store.DeleteEvent(ctx, userID, input.ID); err != nil {
		return nil, httpError(h.logger, err)
	}

	h.logger.Info("event deleted",
		zap.Uint("event_id", ev.ID),
		zap.Int("registrations_removed", len(ev.Registrations)),
	)
	if err := h.notifier.NotifyEventDeleted(ctx, ev); err != nil {
		h.logger.Warn("event deleted notification failed", zap.Uint("event_id", ev.ID), zap.Error(err))
	}

	res := &DeleteEventResponse{}
	res.Body.Message = "Event deleted"
	return res, nil
}

type OrganizerEventsRequest struct {
	Cookie string `header:"Cookie"`
}

// ReviewedEvent is a past event together with its attendance figures.
type ReviewedEvent struct {
	Event     EventView         `json:"event"`
	Analytics lifecycle.Summary `json:"analytics"`
}

type OrganizerEventsResponse struct {
	Body struct {
		Upcoming []EventView     `json:"upcoming"`
		Past     []ReviewedEvent `json:"past"`
	}
}

func (h *EventHandler) HandleOrganizerEvents(ctx context.Context, input *OrganizerEventsRequest) (*OrganizerEventsResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	if !user.IsOrganizer() {
		return nil, huma.Error403Forbidden("Only organizers have an event dashboard")
	}

	mine, err := h.store.QueryByOrganizer(ctx, user.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}

	now := h.now()
	res := &OrganizerEventsResponse{}
	res.Body.Upcoming = viewsOf(lifecycle.Upcoming(mine, now), now)
	res.Body.Past = make([]ReviewedEvent, 0)
	for _, ev := range lifecycle.Past(mine, now) {
		res.Body.Past = append(res.Body.Past, ReviewedEvent{
			Event:     viewOf(ev, now),
			Analytics: lifecycle.Summarize(ev),
		})
	}
	return res, nil
}

// ownedEvent loads an event and checks that userID organizes it.
func ownedEvent(ctx context.Context, store *events.Store, userID, eventID uint) (models.Event, error) {
	ev, err := store.Get(ctx, eventID)
	if err != nil {
		return models.Event{}, err
	}
	if err := events.RequireOwner(ev, userID); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}
