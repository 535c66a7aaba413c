package workrecord

import (
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/timecalc"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

type WorkDetailRequest struct {
	ClientID    string `json:"client_id"`
	ProjectID   string `json:"project_id"`
	Description string `json:"description"`
	WorkTime    string `json:"work_time"` // "H:MM"
}

// WorkRecordRequest is one day of a save. A nil Details keeps the stored breakdown; an
// empty list clears it.
type WorkRecordRequest struct {
	Day            int                 `json:"day"`
	StartTime      string              `json:"start_time"`
	EndTime        string              `json:"end_time"`
	BreakTime      string              `json:"break_time"`
	NightBreakTime string              `json:"night_break_time"`
	AttendanceType AttendanceType      `json:"attendance_type"`
	HolidayType    HolidayType         `json:"holiday_type"`
	WorkContent    string              `json:"work_content"`
	Details        []WorkDetailRequest `json:"details"`
}

func (r WorkRecordRequest) validate(prefix string, daysInMonth int, errs *validator.ValidationErrors) {
	if r.Day < 1 || r.Day > daysInMonth {
		errs.Add(prefix+".day", fmt.Sprintf("day must be between 1 and %d", daysInMonth))
	}
	validateClock(prefix+".start_time", r.StartTime, errs)
	validateClock(prefix+".end_time", r.EndTime, errs)
	validateClock(prefix+".break_time", r.BreakTime, errs)
	validateClock(prefix+".night_break_time", r.NightBreakTime, errs)
	if !r.AttendanceType.IsValid() {
		errs.Add(prefix+".attendance_type", ErrInvalidAttendanceType.Error())
	}
	if !r.HolidayType.IsValid() {
		errs.Add(prefix+".holiday_type", ErrInvalidHolidayType.Error())
	}
	validateDetails(prefix, r.Details, errs)
}

// ToRecord converts validated input; empty time text becomes nil.
func (r WorkRecordRequest) ToRecord() WorkRecord {
	record := WorkRecord{
		Day:            r.Day,
		StartTime:      timecalc.ParseOptional(r.StartTime),
		EndTime:        timecalc.ParseOptional(r.EndTime),
		BreakTime:      timecalc.ParseOptional(r.BreakTime),
		NightBreakTime: timecalc.ParseOptional(r.NightBreakTime),
		AttendanceType: r.AttendanceType,
		HolidayType:    r.HolidayType,
		WorkContent:    r.WorkContent,
	}
	if r.Details != nil {
		record.Details = DetailsFromRequest(r.Details)
	}
	return record
}

// DetailsFromRequest never returns nil so callers can tell "replace with nothing" from
// "leave alone".
func DetailsFromRequest(in []WorkDetailRequest) []WorkDetail {
	out := make([]WorkDetail, 0, len(in))
	for _, d := range in {
		minutes, _ := timecalc.ParseTime(d.WorkTime)
		out = append(out, WorkDetail{
			ClientID:    d.ClientID,
			ProjectID:   d.ProjectID,
			Description: d.Description,
			WorkTime:    minutes,
		})
	}
	return out
}

type SaveMonthRecordsRequest struct {
	EmployeeID   string              `json:"employee_id"`
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	Records      []WorkRecordRequest `json:"records"`
	SpecialNotes *string             `json:"special_notes,omitempty"`
	Revision     *int                `json:"revision,omitempty"`
}

func (r *SaveMonthRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if !validator.IsValidYearMonth(r.Year, r.Month) {
		errs.Add("month", "year and month must form a valid reporting period")
		return errs
	}
	if r.Revision != nil && *r.Revision < 0 {
		errs.Add("revision", "revision must not be negative")
	}

	daysInMonth := validator.DaysIn(r.Year, r.Month)
	seen := make(map[int]bool, len(r.Records))
	for i, rec := range r.Records {
		prefix := fmt.Sprintf("records[%d]", i)
		rec.validate(prefix, daysInMonth, &errs)
		if seen[rec.Day] {
			errs.Add(prefix+".day", ErrDuplicateDay.Error())
		}
		seen[rec.Day] = true
	}

	return errs.Err()
}

type UpdateSpecialNotesRequest struct {
	EmployeeID   string `json:"-"`
	Year         int    `json:"-"`
	Month        int    `json:"-"`
	SpecialNotes string `json:"special_notes"`
	Revision     *int   `json:"revision,omitempty"`
}

func (r *UpdateSpecialNotesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if !validator.IsValidYearMonth(r.Year, r.Month) {
		errs.Add("month", "year and month must form a valid reporting period")
	}
	if len(r.SpecialNotes) > 4000 {
		errs.Add("special_notes", "special_notes must not exceed 4000 characters")
	}

	return errs.Err()
}

type WorkDetailResponse struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
	Description string `json:"description"`
	WorkTime    string `json:"work_time"`
	WorkMinutes int    `json:"work_minutes"`
}

type WorkRecordResponse struct {
	Day            int                  `json:"day"`
	StartTime      string               `json:"start_time"`
	EndTime        string               `json:"end_time"`
	BreakTime      string               `json:"break_time"`
	NightBreakTime string               `json:"night_break_time"`
	AttendanceType AttendanceType       `json:"attendance_type"`
	HolidayType    HolidayType          `json:"holiday_type"`
	WorkContent    string               `json:"work_content"`
	NetWorked      string               `json:"net_worked"`
	NetMinutes     int                  `json:"net_minutes"`
	Details        []WorkDetailResponse `json:"details"`
	Reconciliation Reconciliation       `json:"reconciliation"`
}

func ToResponse(r WorkRecord) WorkRecordResponse {
	details := make([]WorkDetailResponse, 0, len(r.Details))
	for _, d := range r.Details {
		details = append(details, WorkDetailResponse{
			ID:          d.ID,
			ClientID:    d.ClientID,
			ProjectID:   d.ProjectID,
			Description: d.Description,
			WorkTime:    timecalc.FormatDuration(d.WorkTime),
			WorkMinutes: d.WorkTime,
		})
	}

	net := r.NetWorked()
	return WorkRecordResponse{
		Day:            r.Day,
		StartTime:      timecalc.FormatOptional(r.StartTime),
		EndTime:        timecalc.FormatOptional(r.EndTime),
		BreakTime:      timecalc.FormatOptional(r.BreakTime),
		NightBreakTime: timecalc.FormatOptional(r.NightBreakTime),
		AttendanceType: r.AttendanceType,
		HolidayType:    r.HolidayType,
		WorkContent:    r.WorkContent,
		NetWorked:      timecalc.FormatTime(net),
		NetMinutes:     net,
		Details:        details,
		Reconciliation: Reconcile(r),
	}
}

type SaveMonthRecordsResponse struct {
	Revision     int                 `json:"revision"`
	Status       string              `json:"status"`
	SavedDays    int                 `json:"saved_days"`
	Unreconciled []DayReconciliation `json:"unreconciled"`
}

func validateClock(field, value string, errs *validator.ValidationErrors) {
	if validator.IsEmpty(value) {
		return
	}
	if !validator.IsValidClock(value) {
		errs.Add(field, ErrInvalidTime.Error())
	}
}

func validateDetails(prefix string, details []WorkDetailRequest, errs *validator.ValidationErrors) {
	for j, d := range details {
		field := fmt.Sprintf("%s.details[%d]", prefix, j)
		if validator.IsEmpty(d.WorkTime) || !validator.IsValidClock(d.WorkTime) {
			errs.Add(field+".work_time", "work_time must be in H:MM format")
		}
		if !validator.IsEmpty(d.ProjectID) && validator.IsEmpty(d.ClientID) {
			errs.Add(field+".client_id", "client_id is required when project_id is set")
		}
		if len(d.Description) > 1000 {
			errs.Add(field+".description", "description must not exceed 1000 characters")
		}
	}
}

// ValidateDetails checks a detail list submitted outside a month save.
func ValidateDetails(details []WorkDetailRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors
	validateDetails("", details, &errs)
	for i := range errs {
		errs[i].Field = errs[i].Field[1:]
	}
	return errs
}
