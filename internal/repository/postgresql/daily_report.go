package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type dailyReportRepositoryImpl struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) dailyreport.DailyReportRepository {
	return &dailyReportRepositoryImpl{db: db}
}

const dailyReportColumns = `id, employee_id, report_date, work_summary, problems, challenges, tomorrow_tasks,
	thoughts, created_at, updated_at`

func scanDailyReport(row pgx.Row) (dailyreport.DailyReport, error) {
	var d dailyreport.DailyReport
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Date, &d.WorkSummary, &d.Problems, &d.Challenges,
		&d.TomorrowTasks, &d.Thoughts, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Get implements dailyreport.DailyReportRepository.
func (r *dailyReportRepositoryImpl) Get(ctx context.Context, employeeID string, date time.Time) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyReportColumns + `
		FROM daily_reports
		WHERE employee_id = $1 AND report_date = $2
	`

	found, err := scanDailyReport(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("failed to get daily report for %s: %w", date.Format(dailyreport.DateLayout), err)
	}

	return found, nil
}

// Upsert implements dailyreport.DailyReportRepository.
func (r *dailyReportRepositoryImpl) Upsert(ctx context.Context, report dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("failed to generate daily report id: %w", err)
	}

	query := `
		INSERT INTO daily_reports (
			id, employee_id, report_date, work_summary, problems, challenges, tomorrow_tasks, thoughts
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, report_date) DO UPDATE
		SET work_summary = EXCLUDED.work_summary,
			problems = EXCLUDED.problems,
			challenges = EXCLUDED.challenges,
			tomorrow_tasks = EXCLUDED.tomorrow_tasks,
			thoughts = EXCLUDED.thoughts,
			updated_at = NOW()
		RETURNING ` + dailyReportColumns

	saved, err := scanDailyReport(q.QueryRow(ctx, query,
		id, report.EmployeeID, report.Date, report.WorkSummary, report.Problems,
		report.Challenges, report.TomorrowTasks, report.Thoughts,
	))
	if err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("failed to save daily report: %w", err)
	}

	return saved, nil
}
