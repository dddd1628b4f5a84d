package handlers

import (
	"context"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/auth"
	"github.com/gdg-garage/campus-events-api/internal/events"
	"github.com/gdg-garage/campus-events-api/internal/export"
	"github.com/gdg-garage/campus-events-api/internal/lifecycle"
	"go.uber.org/zap"
)

// ReportHandler serves event analytics and the downloadable documents.
type ReportHandler struct {
	store       *events.Store
	authHandler *auth.AuthHandler
	logger      *zap.Logger
	now         func() time.Time
}

func NewReportHandler(store *events.Store, authHandler *auth.AuthHandler, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{store: store, authHandler: authHandler, logger: orNop(logger), now: time.Now}
}

type AnalyticsResponse struct {
	Body lifecycle.Summary
}

func (h *ReportHandler) HandleAnalytics(ctx context.Context, input *EventRequest) (*AnalyticsResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	ev, err := ownedEvent(ctx, h.store, userID, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &AnalyticsResponse{Body: lifecycle.Summarize(ev)}, nil
}

func (h *ReportHandler) HandleAnalyticsJSON(ctx context.Context, input *EventRequest) (*FileOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	ev, err := ownedEvent(ctx, h.store, userID, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	body, err := export.AnalyticsJSON(ev)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return attachment("application/json", export.FileName(ev.Name, "-analytics.json"), body), nil
}

func (h *ReportHandler) HandleRegistrationsCSV(ctx context.Context, input *EventRequest) (*FileOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	ev, err := ownedEvent(ctx, h.store, userID, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	body, err := export.RegistrationsCSV(ev)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return attachment("text/csv", export.FileName(ev.Name, "-registrations.csv"), body), nil
}

// HandlePermissionLetter renders the letter a student hands to their
// department to attend an event.
func (h *ReportHandler) HandlePermissionLetter(ctx context.Context, input *EventRequest) (*FileOutput, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	ev, err := h.store.Get(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	letter, err := export.PermissionLetter(user, ev, h.now())
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return attachment("text/plain; charset=utf-8", export.FileName(ev.Name, "-permission-letter.txt"), []byte(letter)), nil
}
