package scheduling

import "github.com/GabrielAraujo027/Kalenner/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status int

const (
	StatusScheduled Status = 1
	StatusCancelled Status = 2
	StatusCompleted Status = 3
	StatusDenied    Status = 4
)

func (s Status) Valid() bool {
	return s >= StatusScheduled && s <= StatusDenied
}

// IsTerminal reports whether the status has no outgoing transitions.
// There is no re-open path: Cancelled, Completed and Denied are final.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusDenied
}

func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusCancelled:
		return "cancelled"
	case StatusCompleted:
		return "completed"
	case StatusDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// ===============================
// Transition table
// ===============================

// transitions[from][to] -> admin required. Absent entries are never allowed.
var transitions = map[Status]map[Status]bool{
	StatusScheduled: {
		StatusCancelled: false,
		StatusCompleted: true,
		StatusDenied:    true,
	},
}

// CanTransition validates a status change for the given actor kind.
// Terminal states reject every change, for admins too.
func CanTransition(current, next Status, isAdmin bool) error {
	if !next.Valid() {
		return httperr.ErrBusiness("invalid_transition")
	}
	if current.IsTerminal() {
		return httperr.ErrBusiness("invalid_state")
	}

	adminOnly, ok := transitions[current][next]
	if !ok {
		return httperr.ErrBusiness("invalid_transition")
	}
	if adminOnly && !isAdmin {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
