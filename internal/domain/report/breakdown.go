package report

import (
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/timecalc"
)

// Window is a [Start, End) range of minutes after midnight.
type Window struct {
	Start int
	End   int
}

// WorkPolicy holds the statutory limits the daily breakdown is computed against.
type WorkPolicy struct {
	StandardMinutes  int
	LegalMinutes     int
	LateNightWindows []Window
}

func DefaultPolicy() WorkPolicy {
	return WorkPolicy{
		StandardMinutes: 8 * timecalc.MinutesPerHour,
		LegalMinutes:    8 * timecalc.MinutesPerHour,
		LateNightWindows: []Window{
			{Start: 0, End: 5 * timecalc.MinutesPerHour},
			{Start: 22 * timecalc.MinutesPerHour, End: timecalc.MinutesPerDay},
		},
	}
}

// Breakdown splits one day's (or one month's) working time into the payroll categories.
type Breakdown struct {
	Working          int `json:"working_minutes"`
	Scheduled        int `json:"scheduled_minutes"`
	InnerOvertime    int `json:"statutory_inner_overtime_minutes"`
	OuterOvertime    int `json:"statutory_outer_overtime_minutes"`
	LateNight        int `json:"late_night_minutes"`
	HolidayWork      int `json:"holiday_work_minutes"`
	LateNightHoliday int `json:"late_night_holiday_minutes"`
}

func (b Breakdown) add(o Breakdown) Breakdown {
	return Breakdown{
		Working:          b.Working + o.Working,
		Scheduled:        b.Scheduled + o.Scheduled,
		InnerOvertime:    b.InnerOvertime + o.InnerOvertime,
		OuterOvertime:    b.OuterOvertime + o.OuterOvertime,
		LateNight:        b.LateNight + o.LateNight,
		HolidayWork:      b.HolidayWork + o.HolidayWork,
		LateNightHoliday: b.LateNightHoliday + o.LateNightHoliday,
	}
}

// DailyBreakdown classifies a day's net working time. Everything worked on a Sunday, a
// public holiday or a day carrying a holiday type is holiday work; otherwise time beyond
// the standard day is overtime, inside the legal limit first. The night break comes off
// both the working time and the late-night time.
func DailyBreakdown(record workrecord.WorkRecord, kind holiday.DayKind, policy WorkPolicy) Breakdown {
	working := record.NetWorked()
	if working == 0 {
		return Breakdown{}
	}

	lateNight := 0
	for _, w := range policy.LateNightWindows {
		lateNight += timecalc.Overlap(*record.StartTime, *record.EndTime, w.Start, w.End)
	}
	lateNight = min(max(lateNight-record.NightBreak(), 0), working)

	b := Breakdown{Working: working}
	if kind == holiday.DayKindSundayOrHoliday || record.HolidayType != "" {
		b.HolidayWork = working
		b.LateNightHoliday = lateNight
		return b
	}

	b.Scheduled = min(working, max(policy.StandardMinutes, 0))
	overtime := working - b.Scheduled
	b.InnerOvertime = min(overtime, max(policy.LegalMinutes-policy.StandardMinutes, 0))
	b.OuterOvertime = overtime - b.InnerOvertime
	b.LateNight = lateNight
	return b
}

// Summary is the month-wide fold of daily breakdowns plus the day counts per attendance
// and holiday type. Leave counts are fractional because a half day counts 0.5.
type Summary struct {
	Totals               Breakdown `json:"totals"`
	WorkingDays          int       `json:"working_days"`
	HolidayWorkDays      int       `json:"holiday_work_days"`
	AbsentDays           float64   `json:"absent_days"`
	PaidHolidays         float64   `json:"paid_holidays"`
	CompensatoryHolidays float64   `json:"compensatory_holidays"`
	TransferHolidays     float64   `json:"transfer_holidays"`
	LateDays             int       `json:"late_days"`
	EarlyLeaveDays       int       `json:"early_leave_days"`
	FlexDays             int       `json:"flex_days"`
	DirectTravelDays     int       `json:"direct_travel_days"`
	StatutoryHolidays    int       `json:"statutory_holidays"`
	ScheduledHolidays    int       `json:"scheduled_holidays"`
	SpecialHolidays      int       `json:"special_holidays"`
}

func (s *Summary) countAttendance(t workrecord.AttendanceType) {
	days := 1.0
	if t.IsHalfDay() {
		days = 0.5
	}

	switch {
	case t == workrecord.AttendanceAbsent:
		s.AbsentDays += days
	case t == workrecord.AttendancePaidLeave || t.IsHalfDay():
		s.PaidHolidays += days
	case t == workrecord.AttendanceCompensatory:
		s.CompensatoryHolidays += days
	case t == workrecord.AttendanceTransfer:
		s.TransferHolidays += days
	case t == workrecord.AttendanceLate:
		s.LateDays++
	case t == workrecord.AttendanceEarlyLeave:
		s.EarlyLeaveDays++
	case t == workrecord.AttendanceFlex:
		s.FlexDays++
	case t == workrecord.AttendanceDirectTravel:
		s.DirectTravelDays++
	}
}

func (s *Summary) countHoliday(t workrecord.HolidayType) {
	switch t {
	case workrecord.HolidayStatutory:
		s.StatutoryHolidays++
	case workrecord.HolidayScheduled:
		s.ScheduledHolidays++
	case workrecord.HolidaySpecial:
		s.SpecialHolidays++
	}
}

// MonthlySummary folds DailyBreakdown over the month. classify returns the day kind of a
// day of the reporting month.
func MonthlySummary(records []workrecord.WorkRecord, classify func(day int) holiday.DayKind, policy WorkPolicy) Summary {
	var s Summary
	for _, r := range records {
		b := DailyBreakdown(r, classify(r.Day), policy)
		s.Totals = s.Totals.add(b)
		if b.Working > 0 {
			s.WorkingDays++
		}
		if b.HolidayWork > 0 {
			s.HolidayWorkDays++
		}
		s.countAttendance(r.AttendanceType)
		s.countHoliday(r.HolidayType)
	}
	return s
}
