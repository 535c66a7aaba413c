package dailyreport

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/timecalc"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/worktime-backend-go/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

type fixture struct {
	store    *servicetest.Store
	svc      dailyreport.DailyReportService
	employee user.Actor
	manager  user.Actor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := servicetest.NewStore()
	emp := store.AddEmployee(employee.Employee{EmployeeCode: "E1", FullName: "Aiko", Role: user.RoleEmployee})
	mgr := store.AddEmployee(employee.Employee{EmployeeCode: "M1", FullName: "Mori", Role: user.RoleManager})

	svc := NewDailyReportService(
		store,
		store.DailyReports(),
		store.Records(),
		store.Reports(),
		store.Employees(),
		store.Clients(),
		store.Projects(),
		timecalc.DefaultGrid,
	)
	return fixture{store: store, svc: svc, employee: emp.Actor(), manager: mgr.Actor()}
}

func TestDailyReportService_GetMissingDay(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.GetDailyReport(context.Background(), f.employee, f.employee.EmployeeID, "2025-05-02")
	require.NoError(t, err)
	assert.False(t, got.Exists)
	assert.Equal(t, "2025-05-02", got.Date)
	assert.Equal(t, 2, got.Record.Day)
	assert.Empty(t, got.Record.Details)

	_, err = f.svc.GetDailyReport(context.Background(), f.employee, f.employee.EmployeeID, "2025-5-2")
	assert.ErrorIs(t, err, dailyreport.ErrInvalidDate)
}

func TestDailyReportService_SaveCreatesRecordAndDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.store.AddClient("Acme")
	p := f.store.AddProject(c.ID, "Portal")

	saved, err := f.svc.SaveDailyReport(ctx, f.employee, dailyreport.SaveDailyReportRequest{
		EmployeeID:  f.employee.EmployeeID,
		Date:        "2025-05-02",
		WorkSummary: "Shipped the export",
		Details: []workrecord.WorkDetailRequest{
			{ClientID: c.ID, ProjectID: p.ID, WorkTime: "6:08"},
			{Description: "reviews", WorkTime: "2:00"},
		},
	})
	require.NoError(t, err)
	assert.True(t, saved.Exists)
	assert.Equal(t, "Shipped the export", saved.WorkSummary)
	require.Len(t, saved.Record.Details, 2)
	assert.Equal(t, 375, saved.Record.Details[0].WorkMinutes, "6:08 snaps to 6:15")

	rep, ok := f.store.Report(f.employee.EmployeeID, 2025, 5)
	require.True(t, ok, "saving a daily report creates the month")
	assert.Equal(t, 1, rep.Revision)

	got, err := f.svc.GetDailyReport(ctx, f.manager, f.employee.EmployeeID, "2025-05-02")
	require.NoError(t, err)
	assert.True(t, got.Exists)
	assert.Len(t, got.Record.Details, 2)
}

func TestDailyReportService_SaveKeepsAttendance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Records().Upsert(ctx, f.employee.EmployeeID, 2025, 5, workrecord.WorkRecord{
		Day: 2, StartTime: intPtr(540), EndTime: intPtr(1080), BreakTime: intPtr(45),
	}))

	saved, err := f.svc.SaveDailyReport(ctx, f.employee, dailyreport.SaveDailyReportRequest{
		EmployeeID: f.employee.EmployeeID,
		Date:       "2025-05-02",
		Details:    []workrecord.WorkDetailRequest{{Description: "all day", WorkTime: "8:15"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", saved.Record.StartTime)
	assert.Equal(t, workrecord.StatusBalanced, saved.Record.Reconciliation.Status)
}

func TestDailyReportService_SaveRejectedWhenLocked(t *testing.T) {
	f := newFixture(t)
	f.store.PutReport(monthlyreport.MonthlyReport{
		EmployeeID: f.employee.EmployeeID, Year: 2025, Month: 5,
		Status: monthlyreport.StatusSubmitted, Revision: 2,
	})

	_, err := f.svc.SaveDailyReport(context.Background(), f.employee, dailyreport.SaveDailyReportRequest{
		EmployeeID:  f.employee.EmployeeID,
		Date:        "2025-05-02",
		WorkSummary: "too late",
	})
	assert.ErrorIs(t, err, monthlyreport.ErrPermissionDenied)

	got, err := f.svc.GetDailyReport(context.Background(), f.employee, f.employee.EmployeeID, "2025-05-02")
	require.NoError(t, err)
	assert.False(t, got.Exists)
}

func TestDailyReportService_SaveRollsBackOnBadProject(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SaveDailyReport(context.Background(), f.employee, dailyreport.SaveDailyReportRequest{
		EmployeeID:  f.employee.EmployeeID,
		Date:        "2025-05-02",
		WorkSummary: "draft",
		Details:     []workrecord.WorkDetailRequest{{ClientID: "nope", ProjectID: "nope", WorkTime: "1:00"}},
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "details[0].client_id")

	_, ok := f.store.Report(f.employee.EmployeeID, 2025, 5)
	assert.False(t, ok)
}
