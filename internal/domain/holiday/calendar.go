package holiday

import "time"

type DayKind string

const (
	DayKindWeekday         DayKind = "weekday"
	DayKindSaturday        DayKind = "saturday"
	DayKindSundayOrHoliday DayKind = "sunday_or_holiday"
)

// Classify buckets a date for display and for holiday-work accounting. A public holiday
// wins over Saturday.
func Classify(date time.Time, holidays HolidayMap) DayKind {
	if _, ok := holidays[date.Format(DateLayout)]; ok {
		return DayKindSundayOrHoliday
	}
	switch date.Weekday() {
	case time.Sunday:
		return DayKindSundayOrHoliday
	case time.Saturday:
		return DayKindSaturday
	default:
		return DayKindWeekday
	}
}

// HolidayName returns the holiday name, or "" on ordinary days.
func HolidayName(date time.Time, holidays HolidayMap) string {
	return holidays[date.Format(DateLayout)]
}

// CalendarDay is one row of a month view.
type CalendarDay struct {
	Day         int     `json:"day"`
	Date        string  `json:"date"`
	Weekday     string  `json:"weekday"`
	Kind        DayKind `json:"kind"`
	HolidayName string  `json:"holiday_name,omitempty"`
}

// MonthCalendar lists every day of the month with its classification.
func MonthCalendar(year int, month time.Month, holidays HolidayMap) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Day:         d.Day(),
			Date:        d.Format(DateLayout),
			Weekday:     d.Weekday().String(),
			Kind:        Classify(d, holidays),
			HolidayName: HolidayName(d, holidays),
		})
	}
	return days
}

// DateOf builds the calendar date of a day within a reporting month.
func DateOf(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
