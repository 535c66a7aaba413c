package monthlyreport

import "context"

type MonthlyReportRepository interface {
	// Get returns pgx.ErrNoRows when the month was never saved.
	Get(ctx context.Context, employeeID string, year, month int) (MonthlyReport, error)
	ListByMonth(ctx context.Context, year, month int) ([]MonthlyReport, error)
	// Save inserts or updates the report. report.Revision must be the revision the caller
	// read (0 for a new report); the stored revision is incremented and returned.
	// A mismatch yields ErrConcurrentModification.
	Save(ctx context.Context, report MonthlyReport) (MonthlyReport, error)
}
