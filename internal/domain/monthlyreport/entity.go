package monthlyreport

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusFinalized Status = "finalized"
	StatusRemanded  Status = "remanded"
)

// IsEditable reports whether the owning employee may still change the month. A remanded
// report is editable with its reason attached.
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusRemanded
}

// MonthlyReport is the editable unit for one employee-month. Revision counts committed
// writes and backs optimistic concurrency.
type MonthlyReport struct {
	ID           string
	EmployeeID   string
	Year         int
	Month        int
	SpecialNotes string
	Status       Status
	ApprovalDate *time.Time
	ApprovedBy   *string
	RemandReason *string
	FinalizedAt  *time.Time
	FinalizedBy  *string
	Revision     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDraft is the implicit report of a month nobody has saved yet.
func NewDraft(employeeID string, year, month int) MonthlyReport {
	return MonthlyReport{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Status:     StatusDraft,
	}
}

// IsNew reports a report that has not been persisted.
func (r MonthlyReport) IsNew() bool {
	return r.Revision == 0
}

// CanView allows the owning employee and anyone who may view all reports.
func (r MonthlyReport) CanView(actor user.Actor) error {
	if actor.Owns(r.EmployeeID) && actor.Can(user.PermissionReportViewOwn) {
		return nil
	}
	if actor.IsPrivileged() {
		return nil
	}
	return &PermissionError{Action: "view report", Required: "report owner or " + string(user.PermissionReportViewAll), Status: r.Status}
}

// CanEditRecords allows only the owning employee, and only while the month is editable.
func (r MonthlyReport) CanEditRecords(actor user.Actor) error {
	if !actor.Owns(r.EmployeeID) || !actor.Can(user.PermissionRecordEditOwn) {
		return &PermissionError{Action: "edit work records", Required: "report owner", Status: r.Status}
	}
	if !r.Status.IsEditable() {
		return &PermissionError{Action: "edit work records", Required: "status draft or remanded", Status: r.Status}
	}
	return nil
}

// CanEditNotes lets the owner edit special notes while the month is editable and a
// privileged actor edit them in any state.
func (r MonthlyReport) CanEditNotes(actor user.Actor) error {
	if actor.Can(user.PermissionReportEditNote) {
		return nil
	}
	if actor.Owns(r.EmployeeID) && r.Status.IsEditable() {
		return nil
	}
	if actor.Owns(r.EmployeeID) {
		return &PermissionError{Action: "edit special notes", Required: "status draft or remanded, or a privileged role", Status: r.Status}
	}
	return &PermissionError{Action: "edit special notes", Required: "report owner or a privileged role", Status: r.Status}
}

// CheckRevision fails when the caller saw an older revision than the stored one. A nil
// expectation opts out.
func (r MonthlyReport) CheckRevision(expected *int) error {
	if expected == nil || *expected == r.Revision {
		return nil
	}
	return &RevisionConflictError{Expected: *expected, Actual: r.Revision}
}
