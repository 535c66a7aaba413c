package dailyreport

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

const DateLayout = "2006-01-02"

type SaveDailyReportRequest struct {
	EmployeeID    string                         `json:"employee_id"`
	Date          string                         `json:"date"`
	WorkSummary   string                         `json:"work_summary"`
	Problems      string                         `json:"problems"`
	Challenges    string                         `json:"challenges"`
	TomorrowTasks string                         `json:"tomorrow_tasks"`
	Thoughts      string                         `json:"thoughts"`
	Details       []workrecord.WorkDetailRequest `json:"details"`
	Revision      *int                           `json:"revision,omitempty"`
}

func (r *SaveDailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if date, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", ErrInvalidDate.Error())
	} else if !validator.IsValidYearMonth(date.Year(), int(date.Month())) {
		errs.Add("date", "date is outside the supported range")
	}

	for field, value := range map[string]string{
		"work_summary":   r.WorkSummary,
		"problems":       r.Problems,
		"challenges":     r.Challenges,
		"tomorrow_tasks": r.TomorrowTasks,
		"thoughts":       r.Thoughts,
	} {
		if len(value) > 4000 {
			errs.Add(field, field+" must not exceed 4000 characters")
		}
	}

	errs = append(errs, workrecord.ValidateDetails(r.Details)...)

	return errs.Err()
}

// ParsedDate must only be called after Validate.
func (r *SaveDailyReportRequest) ParsedDate() time.Time {
	d, _ := time.Parse(DateLayout, r.Date)
	return d
}

type DailyReportResponse struct {
	EmployeeID    string                        `json:"employee_id"`
	Date          string                        `json:"date"`
	Exists        bool                          `json:"exists"`
	WorkSummary   string                        `json:"work_summary"`
	Problems      string                        `json:"problems"`
	Challenges    string                        `json:"challenges"`
	TomorrowTasks string                        `json:"tomorrow_tasks"`
	Thoughts      string                        `json:"thoughts"`
	Record        workrecord.WorkRecordResponse `json:"work_record"`
}

// ToResponse combines the narrative with the day's work record. exists is false when no
// narrative has been saved yet.
func ToResponse(r DailyReport, exists bool, record workrecord.WorkRecord) DailyReportResponse {
	return DailyReportResponse{
		EmployeeID:    r.EmployeeID,
		Date:          r.Date.Format(DateLayout),
		Exists:        exists,
		WorkSummary:   r.WorkSummary,
		Problems:      r.Problems,
		Challenges:    r.Challenges,
		TomorrowTasks: r.TomorrowTasks,
		Thoughts:      r.Thoughts,
		Record:        workrecord.ToResponse(record),
	}
}
