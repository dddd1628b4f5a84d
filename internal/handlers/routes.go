package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/campus-events-api/internal/auth"
	"github.com/gdg-garage/campus-events-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Auth         *auth.AuthHandler
	Events       *EventHandler
	Venues       *VenueHandler
	Registration *RegistrationHandler
	Reports      *ReportHandler
	Navigation   *NavigationHandler
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config, h Handlers) huma.API {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler)
	}
	r.Use(h.Auth.SessionMiddleware)

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Campus Events API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, humaConfig)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	huma.Post(api, "/auth/login", h.Auth.HandleLogin)

	huma.Get(api, "/me", h.Auth.HandleMe, protected)
	huma.Get(api, "/me/registrations", h.Registration.HandleMine, protected)
	huma.Post(api, "/navigate", h.Navigation.HandleNavigate, protected)

	huma.Get(api, "/venues", h.Venues.HandleList, protected)
	huma.Get(api, "/venues/availability", h.Venues.HandleAvailability, protected)

	huma.Get(api, "/events", h.Events.HandleList, protected)
	huma.Post(api, "/events", h.Events.HandleCreate, protected, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
	huma.Get(api, "/events/{id}", h.Events.HandleGet, protected)
	huma.Put(api, "/events/{id}", h.Events.HandleUpdate, protected)
	huma.Delete(api, "/events/{id}", h.Events.HandleDelete, protected)
	huma.Get(api, "/organizer/events", h.Events.HandleOrganizerEvents, protected)

	huma.Post(api, "/events/{id}/registrations", h.Registration.HandleRegister, protected, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
	huma.Get(api, "/events/{id}/registrations", h.Registration.HandleList, protected)
	huma.Put(api, "/events/{id}/registrations/{registrationId}/attendance", h.Registration.HandleAttendance, protected)

	huma.Get(api, "/events/{id}/analytics", h.Reports.HandleAnalytics, protected)
	huma.Get(api, "/events/{id}/analytics.json", h.Reports.HandleAnalyticsJSON, protected)
	huma.Get(api, "/events/{id}/registrations.csv", h.Reports.HandleRegistrationsCSV, protected)
	huma.Get(api, "/events/{id}/permission-letter", h.Reports.HandlePermissionLetter, protected)

	return api
}
