package report

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/timecalc"
	"github.com/shopspring/decimal"
)

// BreakdownText is Breakdown rendered as "H:MM".
type BreakdownText struct {
	Working          string `json:"working_hours"`
	Scheduled        string `json:"scheduled_work"`
	InnerOvertime    string `json:"statutory_inner_overtime"`
	OuterOvertime    string `json:"statutory_outer_overtime"`
	LateNight        string `json:"late_night_work"`
	HolidayWork      string `json:"holiday_work"`
	LateNightHoliday string `json:"late_night_holiday_work"`
}

func (b Breakdown) Text() BreakdownText {
	return BreakdownText{
		Working:          timecalc.FormatDuration(b.Working),
		Scheduled:        timecalc.FormatDuration(b.Scheduled),
		InnerOvertime:    timecalc.FormatDuration(b.InnerOvertime),
		OuterOvertime:    timecalc.FormatDuration(b.OuterOvertime),
		LateNight:        timecalc.FormatDuration(b.LateNight),
		HolidayWork:      timecalc.FormatDuration(b.HolidayWork),
		LateNightHoliday: timecalc.FormatDuration(b.LateNightHoliday),
	}
}

// DayEntry is one calendar day of the month view; days without a stored record are
// listed empty.
type DayEntry struct {
	workrecord.WorkRecordResponse
	Date          string          `json:"date"`
	Weekday       string          `json:"weekday"`
	DayKind       holiday.DayKind `json:"day_kind"`
	HolidayName   string          `json:"holiday_name,omitempty"`
	Breakdown     Breakdown       `json:"breakdown"`
	BreakdownText BreakdownText   `json:"daily_summary"`
}

type MonthlySummaryResponse struct {
	Summary
	TotalMinutes  int           `json:"total_minutes"`
	TotalWorkTime string        `json:"total_work_time"`
	TotalsText    BreakdownText `json:"totals_text"`
}

type MonthRecordsResponse struct {
	monthlyreport.StatusResponse
	SpecialNotes   string                         `json:"special_notes"`
	CanEditRecords bool                           `json:"can_edit_records"`
	CanEditNotes   bool                           `json:"can_edit_notes"`
	Records        []DayEntry                     `json:"records"`
	MonthlySummary MonthlySummaryResponse         `json:"monthly_summary"`
	Unreconciled   []workrecord.DayReconciliation `json:"unreconciled"`
}

type ProjectSummaryResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Projects      []ProjectTotal  `json:"projects"`
	TotalMinutes  int             `json:"total_minutes"`
	TotalWorkTime string          `json:"total_work_time"`
	TotalHours    decimal.Decimal `json:"total_hours"`
}

// BuildMonth assembles the month view of rep for actor: every calendar day with its
// stored record, classification, reconciliation and breakdown, plus the month totals.
func BuildMonth(rep monthlyreport.MonthlyReport, actor user.Actor, records []workrecord.WorkRecord, holidays holiday.HolidayMap, policy WorkPolicy) MonthRecordsResponse {
	byDay := make(map[int]workrecord.WorkRecord, len(records))
	for _, r := range records {
		byDay[r.Day] = r
	}

	calendar := holiday.MonthCalendar(rep.Year, time.Month(rep.Month), holidays)
	days := make([]DayEntry, 0, len(calendar))
	for _, c := range calendar {
		r, ok := byDay[c.Day]
		if !ok {
			r = workrecord.WorkRecord{Day: c.Day}
		}
		b := DailyBreakdown(r, c.Kind, policy)
		days = append(days, DayEntry{
			WorkRecordResponse: workrecord.ToResponse(r),
			Date:               c.Date,
			Weekday:            c.Weekday,
			DayKind:            c.Kind,
			HolidayName:        c.HolidayName,
			Breakdown:          b,
			BreakdownText:      b.Text(),
		})
	}

	classify := func(day int) holiday.DayKind {
		return holiday.Classify(holiday.DateOf(rep.Year, rep.Month, day), holidays)
	}
	summary := MonthlySummary(records, classify, policy)
	total := MonthlyTotalMinutes(records)

	return MonthRecordsResponse{
		StatusResponse: monthlyreport.ToStatusResponse(rep),
		SpecialNotes:   rep.SpecialNotes,
		CanEditRecords: rep.CanEditRecords(actor) == nil,
		CanEditNotes:   rep.CanEditNotes(actor) == nil,
		Records:        days,
		MonthlySummary: MonthlySummaryResponse{
			Summary:       summary,
			TotalMinutes:  total,
			TotalWorkTime: timecalc.FormatDuration(total),
			TotalsText:    summary.Totals.Text(),
		},
		Unreconciled: workrecord.Unreconciled(records),
	}
}

// BuildProjectSummary wraps ProjectSummary with the month totals of the breakdown.
func BuildProjectSummary(employeeID string, year, month int, records []workrecord.WorkRecord, names NameLookup) ProjectSummaryResponse {
	projects := ProjectSummary(records, names)
	total := 0
	for _, p := range projects {
		total += p.TotalMinutes
	}
	return ProjectSummaryResponse{
		EmployeeID:    employeeID,
		Year:          year,
		Month:         month,
		Projects:      projects,
		TotalMinutes:  total,
		TotalWorkTime: timecalc.FormatDuration(total),
		TotalHours:    timecalc.MinutesToHours(total),
	}
}
