package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/campus-events-api/internal/auth"
	"github.com/gdg-garage/campus-events-api/internal/events"
	"github.com/gdg-garage/campus-events-api/internal/ledger"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/gdg-garage/campus-events-api/internal/notifier"
	"go.uber.org/zap"
)

type RegistrationHandler struct {
	store       *events.Store
	ledger      *ledger.Ledger
	authHandler *auth.AuthHandler
	notifier    notifier.Notifier
	logger      *zap.Logger
}

func NewRegistrationHandler(store *events.Store, l *ledger.Ledger, authHandler *auth.AuthHandler, n notifier.Notifier, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		store:       store,
		ledger:      l,
		authHandler: authHandler,
		notifier:    n,
		logger:      orNop(logger),
	}
}

type RegisterRequest struct {
	Cookie string `header:"Cookie"`
	ID     uint   `path:"id" doc:"Event ID"`
	Body   struct {
		TransactionID string `json:"transaction_id,omitempty" doc:"Payment transaction ID, required for paid events"`
		Confirmed     bool   `json:"confirmed" doc:"The student confirmed the registration details"`
	}
}

type RegistrationResponse struct {
	Body models.Registration
}

func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegisterRequest) (*RegistrationResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	if !input.Body.Confirmed {
		return nil, huma.Error400BadRequest("Registration must be confirmed")
	}

	registration, err := h.ledger.Register(ctx, input.ID, user.ID, input.Body.TransactionID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	h.logger.Info("registration created",
		zap.Uint("registration_id", registration.ID),
		zap.Uint("event_id", registration.EventID),
		zap.Uint("user_id", user.ID),
	)

	ev, err := h.store.Get(ctx, input.ID)
	if err != nil {
		h.logger.Warn("reload event after registration", zap.Uint("event_id", input.ID), zap.Error(err))
	} else if err := h.notifier.NotifyRegistration(ctx, user, ev, registration); err != nil {
		h.logger.Warn("registration notification failed", zap.Uint("registration_id", registration.ID), zap.Error(err))
	}

	return &RegistrationResponse{Body: registration}, nil
}

type RegistrationListResponse struct {
	Body struct {
		Registrations []models.Registration `json:"registrations"`
	}
}

func (h *RegistrationHandler) HandleList(ctx context.Context, input *EventRequest) (*RegistrationListResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEvent(ctx, h.store, userID, input.ID); err != nil {
		return nil, httpError(h.logger, err)
	}

	registrations, err := h.ledger.List(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	res := &RegistrationListResponse{}
	res.Body.Registrations = registrations
	return res, nil
}

type MyRegistrationsRequest struct {
	Cookie string `header:"Cookie"`
}

func (h *RegistrationHandler) HandleMine(ctx context.Context, input *MyRegistrationsRequest) (*RegistrationListResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	registrations, err := h.ledger.ForUser(ctx, userID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	res := &RegistrationListResponse{}
	res.Body.Registrations = registrations
	return res, nil
}

type AttendanceRequest struct {
	Cookie         string `header:"Cookie"`
	ID             uint   `path:"id" doc:"Event ID"`
	RegistrationID uint   `path:"registrationId" doc:"Registration ID"`
	Body           struct {
		Attended bool `json:"attended"`
	}
}

func (h *RegistrationHandler) HandleAttendance(ctx context.Context, input *AttendanceRequest) (*RegistrationResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEvent(ctx, h.store, userID, input.ID); err != nil {
		return nil, httpError(h.logger, err)
	}

	registration, err := h.ledger.MarkAttendance(ctx, input.ID, input.RegistrationID, input.Body.Attended)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &RegistrationResponse{Body: registration}, nil
}
