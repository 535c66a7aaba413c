package holiday

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/worktime-backend-go/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayService_GetHolidays(t *testing.T) {
	store := servicetest.NewStore()
	store.AddHoliday(holiday.DateOf(2025, 1, 1), "New Year's Day")
	store.AddHoliday(holiday.DateOf(2025, 5, 5), "Children's Day")
	store.AddHoliday(holiday.DateOf(2026, 1, 1), "New Year's Day")
	svc := NewHolidayService(store.Holidays())

	holidays, err := svc.GetHolidays(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, holiday.HolidayMap{
		"2025-01-01": "New Year's Day",
		"2025-05-05": "Children's Day",
	}, holidays)

	_, err = svc.GetHolidays(context.Background(), 1999)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestHolidayService_GetCalendar(t *testing.T) {
	store := servicetest.NewStore()
	// Saturday
	store.AddHoliday(holiday.DateOf(2026, 5, 2), "Substitute")
	svc := NewHolidayService(store.Holidays())

	days, err := svc.GetCalendar(context.Background(), 2026, 5)
	require.NoError(t, err)
	require.Len(t, days, 31)
	assert.Equal(t, holiday.DayKindWeekday, days[0].Kind)
	assert.Equal(t, holiday.DayKindSundayOrHoliday, days[1].Kind, "a holiday on Saturday counts as holiday")
	assert.Equal(t, "Substitute", days[1].HolidayName)
	assert.Equal(t, holiday.DayKindSundayOrHoliday, days[2].Kind)

	_, err = svc.GetCalendar(context.Background(), 2026, 0)
	assert.Error(t, err)
}
