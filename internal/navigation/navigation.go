// Package navigation models the screens of the campus events client as a
// closed set of views and the moves allowed between them. Views that show a
// single event carry its id only.
package navigation

import (
	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/models"
)

type Kind string

const (
	Login              Kind = "login"
	Dashboard          Kind = "dashboard"
	EventDetails       Kind = "event-details"
	Registration       Kind = "registration"
	OrganizerDashboard Kind = "organizer-dashboard"
	CreateEvent        Kind = "create-event"
	MonitorEvents      Kind = "monitor-events"
	ReviewEvents       Kind = "review-events"
)

func (k Kind) Valid() bool {
	switch k {
	case Login, Dashboard, EventDetails, Registration, OrganizerDashboard, CreateEvent, MonitorEvents, ReviewEvents:
		return true
	}
	return false
}

func (k Kind) organizerOnly() bool {
	return k == OrganizerDashboard || k == CreateEvent || k == MonitorEvents || k == ReviewEvents
}

func (k Kind) needsEvent() bool {
	return k == EventDetails || k == Registration
}

type View struct {
	Kind    Kind `json:"kind"`
	EventID uint `json:"event_id,omitempty"`
}

type ActionType string

const (
	ActionLogin             ActionType = "login"
	ActionLogout            ActionType = "logout"
	ActionOpenEvent         ActionType = "open-event"
	ActionStartRegistration ActionType = "start-registration"
	ActionGo                ActionType = "go"
	ActionEventCreated      ActionType = "event-created"
	ActionBack              ActionType = "back"
)

type Action struct {
	Type    ActionType
	Target  Kind
	EventID uint
}

// Home is the first view after login.
func Home(role models.UserType) View {
	if role == models.UserTypeOrganizer {
		return View{Kind: OrganizerDashboard}
	}
	return View{Kind: Dashboard}
}

// Transition returns the view reached from current by action.
func Transition(current View, action Action, role models.UserType) (View, error) {
	if !current.Kind.Valid() {
		return View{}, apperr.Validation("view", "unknown view %q", current.Kind)
	}
	if current.Kind.needsEvent() && current.EventID == 0 {
		return View{}, apperr.Validation("event_id", "%s needs an event", current.Kind)
	}

	if action.Type == ActionLogout {
		return View{Kind: Login}, nil
	}
	if current.Kind == Login {
		if action.Type != ActionLogin {
			return View{}, apperr.Validation("action", "log in first")
		}
		return Home(role), nil
	}

	switch action.Type {
	case ActionOpenEvent:
		if action.EventID == 0 {
			return View{}, apperr.Validation("event_id", "is required")
		}
		return View{Kind: EventDetails, EventID: action.EventID}, nil

	case ActionStartRegistration:
		if current.Kind != EventDetails {
			return View{}, apperr.Validation("action", "registration starts from an event")
		}
		return View{Kind: Registration, EventID: current.EventID}, nil

	case ActionGo:
		target := action.Target
		if !target.Valid() || target == Login || target.needsEvent() {
			return View{}, apperr.Validation("target", "cannot go to %q", target)
		}
		if target.organizerOnly() && role != models.UserTypeOrganizer {
			return View{}, apperr.Forbidden(0, string(target)+" is for organizers")
		}
		return View{Kind: target}, nil

	case ActionEventCreated:
		if current.Kind != CreateEvent {
			return View{}, apperr.Validation("action", "no event is being created")
		}
		return View{Kind: OrganizerDashboard}, nil

	case ActionBack:
		return back(current), nil
	}

	return View{}, apperr.Validation("action", "unknown action %q", action.Type)
}

func back(current View) View {
	switch current.Kind {
	case Registration:
		return View{Kind: EventDetails, EventID: current.EventID}
	case CreateEvent, MonitorEvents, ReviewEvents:
		return View{Kind: OrganizerDashboard}
	default:
		return View{Kind: Dashboard}
	}
}
