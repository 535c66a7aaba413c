package workrecord

import "errors"

var (
	ErrInvalidDay            = errors.New("day is outside the reporting month")
	ErrDuplicateDay          = errors.New("day appears more than once")
	ErrInvalidTime           = errors.New("time must be in HH:MM format")
	ErrNegativeWorkTime      = errors.New("work time must not be negative")
	ErrProjectClientMismatch = errors.New("project does not belong to the selected client")
	ErrRecordNotFound        = errors.New("work record not found")
	ErrInvalidAttendanceType = errors.New("attendance_type is not a known attendance type")
	ErrInvalidHolidayType    = errors.New("holiday_type must be statutory, scheduled or special")
)
