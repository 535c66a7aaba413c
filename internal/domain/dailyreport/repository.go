package dailyreport

import (
	"context"
	"time"
)

type DailyReportRepository interface {
	Get(ctx context.Context, employeeID string, date time.Time) (DailyReport, error)
	Upsert(ctx context.Context, report DailyReport) (DailyReport, error)
}
