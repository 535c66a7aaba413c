package monthlyreport

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
)

type Event string

const (
	// EventApprove is the employee's own approval of a draft month.
	EventApprove        Event = "approve"
	EventCancel         Event = "cancel"
	EventSubmit         Event = "submit"
	EventManagerApprove Event = "manager-approve"
	EventFinalize       Event = "finalize"
	EventRemand         Event = "remand"
)

// ParseEvent maps a request path segment to an event.
func ParseEvent(s string) (Event, bool) {
	switch e := Event(s); e {
	case EventApprove, EventCancel, EventSubmit, EventManagerApprove, EventFinalize, EventRemand:
		return e, true
	}
	return "", false
}

type rule struct {
	from   []Status
	to     Status
	action string
	guard  func(r MonthlyReport, actor user.Actor) (string, bool)
}

func ownerGuard(permission user.Permission) func(MonthlyReport, user.Actor) (string, bool) {
	return func(r MonthlyReport, actor user.Actor) (string, bool) {
		return "report owner", actor.Owns(r.EmployeeID) && actor.Can(permission)
	}
}

func capabilityGuard(required string, permission user.Permission) func(MonthlyReport, user.Actor) (string, bool) {
	return func(_ MonthlyReport, actor user.Actor) (string, bool) {
		return required, actor.Can(permission)
	}
}

var rules = map[Event]rule{
	EventApprove: {
		from:   []Status{StatusDraft, StatusRemanded},
		to:     StatusApproved,
		action: "approve report",
		guard:  ownerGuard(user.PermissionReportApprove),
	},
	EventCancel: {
		from:   []Status{StatusApproved},
		to:     StatusDraft,
		action: "cancel approval",
		guard:  ownerGuard(user.PermissionReportApprove),
	},
	EventSubmit: {
		from:   []Status{StatusDraft, StatusRemanded},
		to:     StatusSubmitted,
		action: "submit report",
		guard:  ownerGuard(user.PermissionRecordEditOwn),
	},
	EventManagerApprove: {
		from:   []Status{StatusSubmitted},
		to:     StatusApproved,
		action: "approve submitted report",
		guard:  capabilityGuard("manager role", user.PermissionManagerApprove),
	},
	EventFinalize: {
		from:   []Status{StatusApproved},
		to:     StatusFinalized,
		action: "finalize report",
		guard:  capabilityGuard("accounting role", user.PermissionFinalize),
	},
	EventRemand: {
		from:   []Status{StatusSubmitted, StatusApproved},
		to:     StatusRemanded,
		action: "remand report",
		guard:  capabilityGuard("manager or accounting role", user.PermissionRemand),
	},
}

// Transition applies event on behalf of actor and returns the updated report. The input
// is never modified; on error the returned report is the input unchanged.
func Transition(r MonthlyReport, actor user.Actor, event Event, reason string, now time.Time) (MonthlyReport, error) {
	rl, ok := rules[event]
	if !ok {
		return r, ErrUnknownEvent
	}

	if required, allowed := rl.guard(r, actor); !allowed {
		return r, &PermissionError{Action: rl.action, Required: required, Status: r.Status}
	}

	if !accepts(rl.from, r.Status) {
		return r, &TransitionError{Event: event, From: r.Status}
	}

	reason = strings.TrimSpace(reason)
	if event == EventRemand && reason == "" {
		return r, ErrRemandReasonRequired
	}

	out := r
	out.Status = rl.to
	out.UpdatedAt = now

	// Leaving remanded drops the reason; only a remand sets it.
	out.RemandReason = nil

	switch event {
	case EventApprove, EventManagerApprove:
		stamp := now
		by := actor.EmployeeID
		out.ApprovalDate = &stamp
		out.ApprovedBy = &by
	case EventCancel, EventSubmit:
		out.ApprovalDate = nil
		out.ApprovedBy = nil
	case EventFinalize:
		stamp := now
		by := actor.EmployeeID
		out.FinalizedAt = &stamp
		out.FinalizedBy = &by
	case EventRemand:
		out.ApprovalDate = nil
		out.ApprovedBy = nil
		out.RemandReason = &reason
	}

	return out, nil
}

func accepts(from []Status, s Status) bool {
	for _, f := range from {
		if f == s {
			return true
		}
	}
	return false
}
