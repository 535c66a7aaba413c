package workrecord

// Field names one editable attendance column of a WorkRecord.
type Field string

const (
	FieldStartTime      Field = "start_time"
	FieldEndTime        Field = "end_time"
	FieldBreakTime      Field = "break_time"
	FieldNightBreakTime Field = "night_break_time"
	FieldWorkContent    Field = "work_content"
)

// AttendanceType classifies a day for the monthly day counts. Empty means ordinary attendance.
type AttendanceType string

const (
	AttendanceNormal        AttendanceType = "normal"
	AttendanceAbsent        AttendanceType = "absent"
	AttendancePaidLeave     AttendanceType = "paid_leave"
	AttendanceHalfDay       AttendanceType = "half_day"
	AttendanceHalfPaidLeave AttendanceType = "half_paid_leave"
	AttendanceAMHalfDay     AttendanceType = "am_half_day"
	AttendancePMHalfDay     AttendanceType = "pm_half_day"
	AttendanceCompensatory  AttendanceType = "compensatory_holiday"
	AttendanceTransfer      AttendanceType = "transfer_holiday"
	AttendanceLate          AttendanceType = "late"
	AttendanceEarlyLeave    AttendanceType = "early_leave"
	AttendanceFlex          AttendanceType = "flex"
	AttendanceDirectTravel  AttendanceType = "direct_travel"
)

func (t AttendanceType) IsValid() bool {
	switch t {
	case "", AttendanceNormal, AttendanceAbsent, AttendancePaidLeave, AttendanceHalfDay,
		AttendanceHalfPaidLeave, AttendanceAMHalfDay, AttendancePMHalfDay, AttendanceCompensatory,
		AttendanceTransfer, AttendanceLate, AttendanceEarlyLeave, AttendanceFlex, AttendanceDirectTravel:
		return true
	}
	return false
}

// IsHalfDay reports the half-day leave kinds, which count as half a paid holiday.
func (t AttendanceType) IsHalfDay() bool {
	switch t {
	case AttendanceHalfDay, AttendanceHalfPaidLeave, AttendanceAMHalfDay, AttendancePMHalfDay:
		return true
	}
	return false
}

// HolidayType marks a day as a holiday regardless of the calendar.
type HolidayType string

const (
	HolidayStatutory HolidayType = "statutory"
	HolidayScheduled HolidayType = "scheduled"
	HolidaySpecial   HolidayType = "special"
)

func (t HolidayType) IsValid() bool {
	switch t {
	case "", HolidayStatutory, HolidayScheduled, HolidaySpecial:
		return true
	}
	return false
}

// WorkRecord is one employee's attendance entry for one calendar day. Time fields are
// minutes after midnight (breaks are durations), nil when not entered.
type WorkRecord struct {
	Day            int
	StartTime      *int
	EndTime        *int
	BreakTime      *int
	NightBreakTime *int
	AttendanceType AttendanceType
	HolidayType    HolidayType
	WorkContent    string
	Details        []WorkDetail
}

// WorkDetail allocates part of a day to a client/project. Empty ClientID/ProjectID mean unset.
type WorkDetail struct {
	ID          string
	ClientID    string
	ProjectID   string
	Description string
	WorkTime    int
}

// DetailPatch carries the detail fields being edited; nil fields are left as they are.
// WorkTime is "H:MM" text as typed.
type DetailPatch struct {
	ClientID    *string
	ProjectID   *string
	Description *string
	WorkTime    *string
}
