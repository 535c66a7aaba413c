package report

import (
	"context"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
)

// WorkTimeService reads and commits one employee-month of work records.
type WorkTimeService interface {
	GetMonthRecords(ctx context.Context, actor user.Actor, employeeID string, year, month int) (MonthRecordsResponse, error)
	SaveMonthRecords(ctx context.Context, actor user.Actor, req workrecord.SaveMonthRecordsRequest) (workrecord.SaveMonthRecordsResponse, error)
	UpdateSpecialNotes(ctx context.Context, actor user.Actor, req workrecord.UpdateSpecialNotesRequest) (MonthRecordsResponse, error)
	GetMonthlyProjectSummary(ctx context.Context, actor user.Actor, employeeID string, year, month int) (ProjectSummaryResponse, error)
}
