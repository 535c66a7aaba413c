package monthlyreport

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

type TransitionRequest struct {
	EmployeeID string `json:"-"`
	Year       int    `json:"-"`
	Month      int    `json:"-"`
	Event      Event  `json:"-"`
	Reason     string `json:"reason"`
	Revision   *int   `json:"revision,omitempty"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if !validator.IsValidYearMonth(r.Year, r.Month) {
		errs.Add("month", "year and month must form a valid reporting period")
	}
	if r.Event == EventRemand && validator.IsEmpty(r.Reason) {
		errs.Add("reason", ErrRemandReasonRequired.Error())
	}
	if len(r.Reason) > 2000 {
		errs.Add("reason", "reason must not exceed 2000 characters")
	}

	return errs.Err()
}

type StatusResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Status       Status  `json:"status"`
	Revision     int     `json:"revision"`
	ApprovalDate *string `json:"approval_date"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	RemandReason *string `json:"remand_reason,omitempty"`
	FinalizedAt  *string `json:"finalized_at,omitempty"`
	FinalizedBy  *string `json:"finalized_by,omitempty"`
}

func ToStatusResponse(r MonthlyReport) StatusResponse {
	return StatusResponse{
		EmployeeID:   r.EmployeeID,
		Year:         r.Year,
		Month:        r.Month,
		Status:       r.Status,
		Revision:     r.Revision,
		ApprovalDate: formatTime(r.ApprovalDate),
		ApprovedBy:   r.ApprovedBy,
		RemandReason: r.RemandReason,
		FinalizedAt:  formatTime(r.FinalizedAt),
		FinalizedBy:  r.FinalizedBy,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
