package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type monthlyReportRepositoryImpl struct {
	db *database.DB
}

func NewMonthlyReportRepository(db *database.DB) monthlyreport.MonthlyReportRepository {
	return &monthlyReportRepositoryImpl{db: db}
}

const monthlyReportColumns = `id, employee_id, year, month, special_notes, status, approval_date, approved_by,
	remand_reason, finalized_at, finalized_by, revision, created_at, updated_at`

func scanMonthlyReport(row pgx.Row) (monthlyreport.MonthlyReport, error) {
	var r monthlyreport.MonthlyReport
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Year, &r.Month, &r.SpecialNotes, &r.Status,
		&r.ApprovalDate, &r.ApprovedBy, &r.RemandReason, &r.FinalizedAt, &r.FinalizedBy,
		&r.Revision, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Get implements monthlyreport.MonthlyReportRepository.
func (r *monthlyReportRepositoryImpl) Get(ctx context.Context, employeeID string, year, month int) (monthlyreport.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + monthlyReportColumns + `
		FROM monthly_reports
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	report, err := scanMonthlyReport(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		return monthlyreport.MonthlyReport{}, fmt.Errorf("failed to get monthly report %04d-%02d for employee %s: %w", year, month, employeeID, err)
	}

	return report, nil
}

// ListByMonth implements monthlyreport.MonthlyReportRepository.
func (r *monthlyReportRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]monthlyreport.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + monthlyReportColumns + `
		FROM monthly_reports
		WHERE year = $1 AND month = $2
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly reports: %w", err)
	}
	defer rows.Close()

	var reports []monthlyreport.MonthlyReport
	for rows.Next() {
		report, err := scanMonthlyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reports, nil
}

// Save implements monthlyreport.MonthlyReportRepository. An insert losing the race on the
// (employee_id, year, month) key and an update whose revision no longer matches both
// come back without a row.
func (r *monthlyReportRepositoryImpl) Save(ctx context.Context, report monthlyreport.MonthlyReport) (monthlyreport.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	var row pgx.Row

	if report.IsNew() {
		id, err := uuid.NewV7()
		if err != nil {
			return monthlyreport.MonthlyReport{}, fmt.Errorf("failed to generate monthly report id: %w", err)
		}

		query := `
			INSERT INTO monthly_reports (
				id, employee_id, year, month, special_notes, status, approval_date, approved_by,
				remand_reason, finalized_at, finalized_by, revision
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)
			ON CONFLICT (employee_id, year, month) DO NOTHING
			RETURNING ` + monthlyReportColumns

		row = q.QueryRow(ctx, query,
			id, report.EmployeeID, report.Year, report.Month, report.SpecialNotes, report.Status,
			report.ApprovalDate, report.ApprovedBy, report.RemandReason, report.FinalizedAt, report.FinalizedBy,
		)
	} else {
		query := `
			UPDATE monthly_reports
			SET special_notes = $1, status = $2, approval_date = $3, approved_by = $4,
				remand_reason = $5, finalized_at = $6, finalized_by = $7,
				revision = revision + 1, updated_at = NOW()
			WHERE employee_id = $8 AND year = $9 AND month = $10 AND revision = $11
			RETURNING ` + monthlyReportColumns

		row = q.QueryRow(ctx, query,
			report.SpecialNotes, report.Status, report.ApprovalDate, report.ApprovedBy,
			report.RemandReason, report.FinalizedAt, report.FinalizedBy,
			report.EmployeeID, report.Year, report.Month, report.Revision,
		)
	}

	saved, err := scanMonthlyReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return monthlyreport.MonthlyReport{}, monthlyreport.ErrConcurrentModification
		}
		return monthlyreport.MonthlyReport{}, fmt.Errorf("failed to save monthly report: %w", err)
	}

	return saved, nil
}
