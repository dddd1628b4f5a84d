package handlers

import (
	"context"

	"github.com/gdg-garage/campus-events-api/internal/auth"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/gdg-garage/campus-events-api/internal/venues"
	"go.uber.org/zap"
)

type VenueHandler struct {
	registry    *venues.Registry
	authHandler *auth.AuthHandler
	logger      *zap.Logger
}

func NewVenueHandler(registry *venues.Registry, authHandler *auth.AuthHandler, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{registry: registry, authHandler: authHandler, logger: orNop(logger)}
}

type ListVenuesRequest struct {
	Cookie string `header:"Cookie"`
}

type ListVenuesResponse struct {
	Body struct {
		Venues []models.Venue `json:"venues"`
	}
}

func (h *VenueHandler) HandleList(ctx context.Context, input *ListVenuesRequest) (*ListVenuesResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}
	list, err := h.registry.ListVenues(ctx)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	res := &ListVenuesResponse{}
	res.Body.Venues = list
	return res, nil
}

type AvailabilityRequest struct {
	Cookie string `header:"Cookie"`
	Name   string `query:"name" required:"true" doc:"Venue name"`
	Date   string `query:"date" doc:"Event date (YYYY-MM-DD); omit to ask about the venue in general"`
	Time   string `query:"time" doc:"Event time, used with date"`
}

type AvailabilityResponse struct {
	Body struct {
		Venue     string `json:"venue"`
		Available bool   `json:"available"`
	}
}

// HandleAvailability reports whether a venue can be booked. Unknown venues
// are reported as unavailable.
func (h *VenueHandler) HandleAvailability(ctx context.Context, input *AvailabilityRequest) (*AvailabilityResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	res := &AvailabilityResponse{}
	res.Body.Venue = input.Name
	if input.Date == "" {
		res.Body.Available = h.registry.IsAvailable(ctx, input.Name)
	} else {
		res.Body.Available = h.registry.IsAvailableAt(ctx, input.Name, input.Date, input.Time)
	}
	return res, nil
}
