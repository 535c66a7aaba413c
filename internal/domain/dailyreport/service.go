package dailyreport

import (
	"context"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
)

type DailyReportService interface {
	GetDailyReport(ctx context.Context, actor user.Actor, employeeID, date string) (DailyReportResponse, error)
	SaveDailyReport(ctx context.Context, actor user.Actor, req SaveDailyReportRequest) (DailyReportResponse, error)
}
