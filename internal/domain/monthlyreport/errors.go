package monthlyreport

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied       = errors.New("permission denied")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("report was modified by another request")
	ErrRemandReasonRequired   = errors.New("remand reason is required")
	ErrUnknownEvent           = errors.New("unknown approval event")
)

// PermissionError names what the rejected action needed.
type PermissionError struct {
	Action   string
	Required string
	Status   Status
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("cannot %s: requires %s (report is %s)", e.Action, e.Required, e.Status)
}

func (e *PermissionError) Unwrap() error {
	return ErrPermissionDenied
}

// TransitionError is returned for an event the current status does not accept.
type TransitionError struct {
	Event Event
	From  Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a report in status %s", e.Event, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type RevisionConflictError struct {
	Expected int
	Actual   int
}

func (e *RevisionConflictError) Error() string {
	return fmt.Sprintf("report revision is %d, request was based on %d", e.Actual, e.Expected)
}

func (e *RevisionConflictError) Unwrap() error {
	return ErrConcurrentModification
}
