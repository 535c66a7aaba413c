package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, code string) employee.Employee {
	emp, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{
		EmployeeCode:   code,
		FullName:       "Test " + code,
		EmploymentType: employee.EmploymentTypeFullTime,
		Role:           user.RoleEmployee,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository_CreateAndList(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	active := createTestEmployee(t, ctx, db, "E001")
	retired := createTestEmployee(t, ctx, db, "E002")
	retired.Retired = true
	require.NoError(t, repo.Update(ctx, retired))

	found, err := repo.GetByEmployeeCode(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, active.ID, found.ID)
	assert.Nil(t, found.PasswordHash)

	list, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.List(ctx, employee.EmployeeFilter{IncludeRetired: true})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = repo.GetByID(ctx, "0190a6f0-0000-7000-8000-000000000000")
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestProjectRepository_JoinsClientName(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()

	c, err := postgresql.NewClientRepository(db).Create(ctx, client.Client{Name: "Acme"})
	require.NoError(t, err)

	projects := postgresql.NewProjectRepository(db)
	p, err := projects.Create(ctx, project.Project{ClientID: c.ID, Name: "Portal"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.ClientName)

	list, err := projects.List(ctx, project.ProjectFilter{ClientID: &c.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestWorkRecordRepository_UpsertAndReplaceDetails(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db, "E100")
	c, err := postgresql.NewClientRepository(db).Create(ctx, client.Client{Name: "Acme"})
	require.NoError(t, err)
	p, err := postgresql.NewProjectRepository(db).Create(ctx, project.Project{ClientID: c.ID, Name: "Portal"})
	require.NoError(t, err)

	repo := postgresql.NewWorkRecordRepository(db)
	rec := workrecord.WorkRecord{Day: 2, StartTime: intPtr(540), EndTime: intPtr(1080), BreakTime: intPtr(45), WorkContent: "dev"}
	require.NoError(t, repo.Upsert(ctx, emp.ID, 2025, 5, rec))
	require.NoError(t, repo.ReplaceDetails(ctx, emp.ID, 2025, 5, 2, []workrecord.WorkDetail{
		{ClientID: c.ID, ProjectID: p.ID, WorkTime: 300},
		{Description: "meetings", WorkTime: 195},
	}))

	got, err := repo.GetByDay(ctx, emp.ID, 2025, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 495, got.NetWorked())
	require.Len(t, got.Details, 2)
	assert.Equal(t, p.ID, got.Details[0].ProjectID)
	assert.Empty(t, got.Details[1].ClientID)
	assert.Equal(t, workrecord.StatusBalanced, workrecord.Reconcile(got).Status)

	rec.EndTime = intPtr(1020)
	require.NoError(t, repo.Upsert(ctx, emp.ID, 2025, 5, rec))
	require.NoError(t, repo.ReplaceDetails(ctx, emp.ID, 2025, 5, 2, nil))

	month, err := repo.ListByMonth(ctx, emp.ID, 2025, 5)
	require.NoError(t, err)
	require.Len(t, month, 1)
	assert.Equal(t, 1020, *month[0].EndTime)
	assert.Empty(t, month[0].Details)

	rec.NightBreakTime = intPtr(30)
	rec.AttendanceType = workrecord.AttendanceLate
	rec.HolidayType = workrecord.HolidayScheduled
	require.NoError(t, repo.Upsert(ctx, emp.ID, 2025, 5, rec))
	got, err = repo.GetByDay(ctx, emp.ID, 2025, 5, 2)
	require.NoError(t, err)
	require.NotNil(t, got.NightBreakTime)
	assert.Equal(t, 30, *got.NightBreakTime)
	assert.Equal(t, workrecord.AttendanceLate, got.AttendanceType)
	assert.Equal(t, workrecord.HolidayScheduled, got.HolidayType)

	_, err = repo.GetByDay(ctx, emp.ID, 2025, 5, 3)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestMonthlyReportRepository_RevisionGuard(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db, "E200")
	repo := postgresql.NewMonthlyReportRepository(db)

	_, err := repo.Get(ctx, emp.ID, 2025, 5)
	require.True(t, errors.Is(err, pgx.ErrNoRows))

	saved, err := repo.Save(ctx, monthlyreport.NewDraft(emp.ID, 2025, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Revision)

	// A second insert of the same month loses.
	_, err = repo.Save(ctx, monthlyreport.NewDraft(emp.ID, 2025, 5))
	assert.ErrorIs(t, err, monthlyreport.ErrConcurrentModification)

	saved.SpecialNotes = "late train"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Revision)
	assert.Equal(t, "late train", updated.SpecialNotes)

	// Writing from the stale copy fails.
	_, err = repo.Save(ctx, saved)
	assert.ErrorIs(t, err, monthlyreport.ErrConcurrentModification)

	list, err := repo.ListByMonth(ctx, 2025, 5)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDailyReportRepository_Upsert(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db, "E300")
	repo := postgresql.NewDailyReportRepository(db)
	date := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, dailyreport.DailyReport{EmployeeID: emp.ID, Date: date, WorkSummary: "draft"})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, dailyreport.DailyReport{EmployeeID: emp.ID, Date: date, WorkSummary: "final"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.Get(ctx, emp.ID, date)
	require.NoError(t, err)
	assert.Equal(t, "final", got.WorkSummary)
}

func TestHolidayRepository_SeededCalendar(t *testing.T) {
	db := setupTestDatabase(t)
	repo := postgresql.NewHolidayRepository(db)

	holidays, err := repo.GetByMonth(context.Background(), 2025, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, holidays)
	for _, h := range holidays {
		assert.Equal(t, time.May, h.Date.Month())
	}
}
