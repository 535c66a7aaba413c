package report

import (
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func shift(day, start, end, brk int, details ...workrecord.WorkDetail) workrecord.WorkRecord {
	return workrecord.WorkRecord{
		Day:       day,
		StartTime: intPtr(start),
		EndTime:   intPtr(end),
		BreakTime: intPtr(brk),
		Details:   details,
	}
}

var names = Names{
	Clients:  map[string]string{"ca": "Acme", "cb": "Beta Corp"},
	Projects: map[string]string{"px": "Portal", "py": "Billing", "pz": "Audit"},
}

func TestMonthlyTotalMinutes(t *testing.T) {
	records := []workrecord.WorkRecord{
		shift(1, 540, 1080, 60),
		shift(2, 540, 1080, 45),
		{Day: 3},
		shift(4, 1080, 540, 0),
	}
	assert.Equal(t, 975, MonthlyTotalMinutes(records))
}

func TestProjectSummaryGroupsAcrossDays(t *testing.T) {
	day1 := shift(1, 540, 660, 0, workrecord.WorkDetail{ClientID: "ca", ProjectID: "px", WorkTime: 120})
	day2 := shift(2, 540, 600, 0, workrecord.WorkDetail{ClientID: "ca", ProjectID: "px", WorkTime: 60})

	forward := ProjectSummary([]workrecord.WorkRecord{day1, day2}, names)
	backward := ProjectSummary([]workrecord.WorkRecord{day2, day1}, names)

	require.Len(t, forward, 1)
	assert.Equal(t, forward, backward)
	assert.Equal(t, 180, forward[0].TotalMinutes)
	assert.Equal(t, "3:00", forward[0].TotalWorkTime)
	assert.Equal(t, "3", forward[0].TotalHours.String())
	assert.Equal(t, "Acme", forward[0].ClientName)
	assert.Equal(t, "Portal", forward[0].ProjectName)
}

func TestProjectSummaryOrderingAndZeroTotals(t *testing.T) {
	records := []workrecord.WorkRecord{
		{Day: 1, Details: []workrecord.WorkDetail{
			{ClientID: "cb", ProjectID: "pz", WorkTime: 30},
			{ClientID: "ca", ProjectID: "px", WorkTime: 45},
			{ClientID: "ca", ProjectID: "py", WorkTime: 15},
			{ClientID: "cb", ProjectID: "py", WorkTime: 0},
		}},
	}

	got := ProjectSummary(records, names)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Billing", "Portal", "Audit"}, []string{got[0].ProjectName, got[1].ProjectName, got[2].ProjectName})
	assert.Equal(t, "Beta Corp", got[2].ClientName)
}

func TestDailyBreakdownWeekday(t *testing.T) {
	policy := DefaultPolicy()

	b := DailyBreakdown(shift(1, 540, 1080, 60), holiday.DayKindWeekday, policy)
	assert.Equal(t, Breakdown{Working: 480, Scheduled: 480}, b)

	b = DailyBreakdown(shift(1, 540, 1140, 60), holiday.DayKindWeekday, policy)
	assert.Equal(t, 540, b.Working)
	assert.Equal(t, 480, b.Scheduled)
	assert.Equal(t, 0, b.InnerOvertime)
	assert.Equal(t, 60, b.OuterOvertime)

	policy.StandardMinutes = 420
	b = DailyBreakdown(shift(1, 540, 1140, 60), holiday.DayKindSaturday, policy)
	assert.Equal(t, 420, b.Scheduled)
	assert.Equal(t, 60, b.InnerOvertime)
	assert.Equal(t, 60, b.OuterOvertime)
}

func TestDailyBreakdownLateNight(t *testing.T) {
	b := DailyBreakdown(shift(1, 15*60, 23*60, 0), holiday.DayKindWeekday, DefaultPolicy())
	assert.Equal(t, 480, b.Working)
	assert.Equal(t, 60, b.LateNight)

	b = DailyBreakdown(shift(1, 3*60, 12*60, 60), holiday.DayKindWeekday, DefaultPolicy())
	assert.Equal(t, 120, b.LateNight)
}

func TestDailyBreakdownHoliday(t *testing.T) {
	b := DailyBreakdown(shift(1, 20*60, 24*60, 0), holiday.DayKindSundayOrHoliday, DefaultPolicy())
	assert.Equal(t, Breakdown{Working: 240, HolidayWork: 240, LateNightHoliday: 120}, b)
}

func TestMonthlySummary(t *testing.T) {
	records := []workrecord.WorkRecord{
		shift(1, 540, 1080, 60),
		shift(2, 540, 1140, 60),
		shift(7, 540, 720, 0),
		{Day: 3},
	}
	classify := func(day int) holiday.DayKind {
		if day == 7 {
			return holiday.DayKindSundayOrHoliday
		}
		return holiday.DayKindWeekday
	}

	s := MonthlySummary(records, classify, DefaultPolicy())
	assert.Equal(t, 3, s.WorkingDays)
	assert.Equal(t, 1, s.HolidayWorkDays)
	assert.Equal(t, 1200, s.Totals.Working)
	assert.Equal(t, 960, s.Totals.Scheduled)
	assert.Equal(t, 60, s.Totals.OuterOvertime)
	assert.Equal(t, 180, s.Totals.HolidayWork)
	assert.Equal(t, "20:00", s.Totals.Text().Working)
}

func TestBuildMonth(t *testing.T) {
	rep := monthlyreport.NewDraft("emp-1", 2025, 5)
	actor := user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}
	records := []workrecord.WorkRecord{
		shift(2, 540, 1080, 45, workrecord.WorkDetail{WorkTime: 495}),
		shift(5, 540, 1080, 60),
	}
	holidays := holiday.HolidayMap{"2025-05-05": "Children's Day"}

	got := BuildMonth(rep, actor, records, holidays, DefaultPolicy())

	require.Len(t, got.Records, 31)
	assert.Equal(t, monthlyreport.StatusDraft, got.Status)
	assert.Nil(t, got.ApprovalDate)
	assert.True(t, got.CanEditRecords)
	assert.True(t, got.CanEditNotes)

	day2 := got.Records[1]
	assert.Equal(t, "08:15", day2.NetWorked)
	assert.Equal(t, workrecord.StatusBalanced, day2.Reconciliation.Status)

	day5 := got.Records[4]
	assert.Equal(t, holiday.DayKindSundayOrHoliday, day5.DayKind)
	assert.Equal(t, "Children's Day", day5.HolidayName)
	assert.Equal(t, 480, day5.Breakdown.HolidayWork)

	assert.Equal(t, 975, got.MonthlySummary.TotalMinutes)
	assert.Equal(t, "16:15", got.MonthlySummary.TotalWorkTime)
	require.Len(t, got.Unreconciled, 1)
	assert.Equal(t, 5, got.Unreconciled[0].Day)
}

func TestBuildProjectSummary(t *testing.T) {
	records := []workrecord.WorkRecord{
		{Day: 1, Details: []workrecord.WorkDetail{{ClientID: "ca", ProjectID: "px", WorkTime: 90}}},
		{Day: 2, Details: []workrecord.WorkDetail{{ClientID: "cb", ProjectID: "pz", WorkTime: 45}}},
	}
	got := BuildProjectSummary("emp-1", 2025, 5, records, names)
	assert.Equal(t, 135, got.TotalMinutes)
	assert.Equal(t, "2:15", got.TotalWorkTime)
	assert.Equal(t, "2.25", got.TotalHours.String())
}
