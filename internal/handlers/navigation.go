package handlers

import (
	"context"

	"github.com/gdg-garage/campus-events-api/internal/auth"
	"github.com/gdg-garage/campus-events-api/internal/navigation"
	"go.uber.org/zap"
)

type NavigationHandler struct {
	authHandler *auth.AuthHandler
	logger      *zap.Logger
}

func NewNavigationHandler(authHandler *auth.AuthHandler, logger *zap.Logger) *NavigationHandler {
	return &NavigationHandler{authHandler: authHandler, logger: orNop(logger)}
}

type NavigateRequest struct {
	Cookie string `header:"Cookie"`
	Body   struct {
		Current navigation.View       `json:"current"`
		Action  navigation.ActionType `json:"action" enum:"login,logout,open-event,start-registration,go,event-created,back"`
		Target  navigation.Kind       `json:"target,omitempty" doc:"Destination of a go action"`
		EventID uint                  `json:"event_id,omitempty" doc:"Event opened by an open-event action"`
	}
}

type NavigateResponse struct {
	Body navigation.View
}

func (h *NavigationHandler) HandleNavigate(ctx context.Context, input *NavigateRequest) (*NavigateResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	next, err := navigation.Transition(input.Body.Current, navigation.Action{
		Type:    input.Body.Action,
		Target:  input.Body.Target,
		EventID: input.Body.EventID,
	}, user.Type)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &NavigateResponse{Body: next}, nil
}
