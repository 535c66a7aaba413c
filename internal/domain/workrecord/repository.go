package workrecord

import "context"

type WorkRecordRepository interface {
	// ListByMonth returns the stored days of a month ordered by day, details included.
	ListByMonth(ctx context.Context, employeeID string, year, month int) ([]WorkRecord, error)
	GetByDay(ctx context.Context, employeeID string, year, month, day int) (WorkRecord, error)
	// Upsert writes the attendance columns of one day; details are untouched.
	Upsert(ctx context.Context, employeeID string, year, month int, record WorkRecord) error
	ReplaceDetails(ctx context.Context, employeeID string, year, month, day int, details []WorkDetail) error
}
