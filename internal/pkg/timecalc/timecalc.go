// Package timecalc holds the minute-based time-of-day and duration arithmetic shared by
// every work-time component. All functions are total: malformed input maps to an invalid
// marker or to a zero value, never to a panic.
package timecalc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultGrid is the step every time-entry field is quantized to.
	DefaultGrid = 15

	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTime parses "H:MM" or "HH:MM" into minutes after midnight. "24:00" is accepted as
// the end-of-day sentinel; any other hour >= 24 or minute >= 60 is rejected.
func ParseTime(text string) (int, bool) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}

	if minute >= MinutesPerHour {
		return 0, false
	}
	if hour > 24 || (hour == 24 && minute != 0) {
		return 0, false
	}

	return hour*MinutesPerHour + minute, true
}

// ParseOptional returns nil for empty or malformed text.
func ParseOptional(text string) *int {
	minutes, ok := ParseTime(text)
	if !ok {
		return nil
	}
	return &minutes
}

// FormatTime renders minutes as zero-padded "HH:MM". Negative input renders as "00:00".
func FormatTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// FormatOptional renders nil as the empty string.
func FormatOptional(minutes *int) string {
	if minutes == nil {
		return ""
	}
	return FormatTime(*minutes)
}

// FormatDuration renders a total as "H:MM" without padding the hours, e.g. "171:30".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// RoundToGrid rounds to the nearest multiple of grid, ties rounding up.
func RoundToGrid(minutes, grid int) int {
	if grid <= 0 {
		return minutes
	}
	return int(math.Floor(float64(minutes)/float64(grid)+0.5)) * grid
}

// Duration is end-start, or 0 when end is before start. Shifts crossing midnight are not
// supported.
func Duration(start, end int) int {
	if end < start {
		return 0
	}
	return end - start
}

// NetWorked is the gross duration minus the break, clamped at zero.
func NetWorked(start, end, breakMinutes int) int {
	net := Duration(start, end) - breakMinutes
	if net < 0 {
		return 0
	}
	return net
}

// Overlap returns how many minutes of [start, end) fall inside [winStart, winEnd).
func Overlap(start, end, winStart, winEnd int) int {
	lo := max(start, winStart)
	hi := min(end, winEnd)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// MinutesToHours converts minutes to decimal hours rounded to two places.
func MinutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(MinutesPerHour)).
		Round(2)
}
