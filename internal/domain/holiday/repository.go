package holiday

import "context"

type HolidayRepository interface {
	GetByYear(ctx context.Context, year int) ([]Holiday, error)
	GetByMonth(ctx context.Context, year, month int) ([]Holiday, error)
}
