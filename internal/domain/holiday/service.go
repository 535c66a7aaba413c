package holiday

import "context"

type HolidayService interface {
	GetHolidays(ctx context.Context, year int) (HolidayMap, error)
	GetCalendar(ctx context.Context, year, month int) ([]CalendarDay, error)
}
