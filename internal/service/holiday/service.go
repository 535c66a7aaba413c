package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

type holidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayServiceImpl{holidayRepo: holidayRepo}
}

// GetHolidays implements holiday.HolidayService.
func (s *holidayServiceImpl) GetHolidays(ctx context.Context, year int) (holiday.HolidayMap, error) {
	if !validator.IsValidYearMonth(year, 1) {
		return nil, validator.ValidationErrors{{Field: "year", Message: "year must be between 2000 and 9999"}}
	}

	holidays, err := s.holidayRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays for %d: %w", year, err)
	}
	return holiday.ToMap(holidays), nil
}

// GetCalendar implements holiday.HolidayService.
func (s *holidayServiceImpl) GetCalendar(ctx context.Context, year, month int) ([]holiday.CalendarDay, error) {
	if !validator.IsValidYearMonth(year, month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "year and month must form a valid reporting period"}}
	}

	holidays, err := s.holidayRepo.GetByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays for %04d-%02d: %w", year, month, err)
	}
	return holiday.MonthCalendar(year, time.Month(month), holiday.ToMap(holidays)), nil
}
