package workrecord

import (
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/timecalc"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

// NetWorked returns start-to-end minus both breaks, zero when either end of the shift is
// missing.
func (r WorkRecord) NetWorked() int {
	if r.StartTime == nil || r.EndTime == nil {
		return 0
	}
	return timecalc.NetWorked(*r.StartTime, *r.EndTime, deref(r.BreakTime)+deref(r.NightBreakTime))
}

// NightBreak is the break taken inside the late-night window, zero when not entered.
func (r WorkRecord) NightBreak() int {
	return deref(r.NightBreakTime)
}

func (r WorkRecord) DetailTotal() int {
	total := 0
	for _, d := range r.Details {
		total += d.WorkTime
	}
	return total
}

// Clone returns a deep copy; the result shares no pointers or slices with r.
func (r WorkRecord) Clone() WorkRecord {
	out := r
	out.StartTime = copyInt(r.StartTime)
	out.EndTime = copyInt(r.EndTime)
	out.BreakTime = copyInt(r.BreakTime)
	out.NightBreakTime = copyInt(r.NightBreakTime)
	if r.Details != nil {
		out.Details = make([]WorkDetail, len(r.Details))
		copy(out.Details, r.Details)
	}
	return out
}

// WithField returns a copy with one column replaced. Time columns are parsed and snapped
// to the default grid; malformed or empty text clears the column. Unknown fields leave
// the copy unchanged.
func (r WorkRecord) WithField(field Field, value string) WorkRecord {
	out := r.Clone()
	switch field {
	case FieldStartTime:
		out.StartTime = quantize(value, timecalc.DefaultGrid)
	case FieldEndTime:
		out.EndTime = quantize(value, timecalc.DefaultGrid)
	case FieldBreakTime:
		out.BreakTime = quantize(value, timecalc.DefaultGrid)
	case FieldNightBreakTime:
		out.NightBreakTime = quantize(value, timecalc.DefaultGrid)
	case FieldWorkContent:
		out.WorkContent = value
	}
	return out
}

// WithDetail applies patch to the detail at index. An out-of-range index returns an
// unchanged copy.
func (r WorkRecord) WithDetail(index int, patch DetailPatch) WorkRecord {
	out := r.Clone()
	if index < 0 || index >= len(out.Details) {
		return out
	}

	d := out.Details[index]
	if patch.ClientID != nil {
		// A new client invalidates the project choice.
		if *patch.ClientID != d.ClientID {
			d.ProjectID = ""
		}
		d.ClientID = *patch.ClientID
	}
	if patch.ProjectID != nil {
		d.ProjectID = *patch.ProjectID
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.WorkTime != nil {
		d.WorkTime = deref(quantize(*patch.WorkTime, timecalc.DefaultGrid))
	}
	out.Details[index] = d
	return out
}

// AddDetail appends an empty detail row.
func (r WorkRecord) AddDetail() WorkRecord {
	out := r.Clone()
	out.Details = append(out.Details, WorkDetail{})
	return out
}

func (r WorkRecord) RemoveDetail(index int) WorkRecord {
	out := r.Clone()
	if index < 0 || index >= len(out.Details) {
		return out
	}
	out.Details = append(out.Details[:index:index], out.Details[index+1:]...)
	return out
}

// IsEmpty reports a day nothing was entered for.
func (r WorkRecord) IsEmpty() bool {
	return r.StartTime == nil && r.EndTime == nil && r.BreakTime == nil && r.NightBreakTime == nil &&
		r.AttendanceType == "" && r.HolidayType == "" &&
		validator.IsEmpty(r.WorkContent) && len(r.Details) == 0
}

// Rounded snaps every time column and detail work time to grid, clamped to one day.
func (r WorkRecord) Rounded(grid int) WorkRecord {
	out := r.Clone()
	out.StartTime = snap(out.StartTime, grid)
	out.EndTime = snap(out.EndTime, grid)
	out.BreakTime = snap(out.BreakTime, grid)
	out.NightBreakTime = snap(out.NightBreakTime, grid)
	for i := range out.Details {
		out.Details[i].WorkTime = deref(snap(&out.Details[i].WorkTime, grid))
	}
	return out
}

// Validate checks the bounds a record must satisfy before it is committed. Whether the
// day reconciles is not checked here.
func (r WorkRecord) Validate(daysInMonth int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if r.Day < 1 || r.Day > daysInMonth {
		errs.Add("day", fmt.Sprintf("day must be between 1 and %d", daysInMonth))
	}

	for _, f := range []struct {
		name  Field
		value *int
	}{
		{FieldStartTime, r.StartTime},
		{FieldEndTime, r.EndTime},
		{FieldBreakTime, r.BreakTime},
		{FieldNightBreakTime, r.NightBreakTime},
	} {
		if f.value != nil && (*f.value < 0 || *f.value > timecalc.MinutesPerDay) {
			errs.Add(string(f.name), "time must be between 00:00 and 24:00")
		}
	}

	if !r.AttendanceType.IsValid() {
		errs.Add("attendance_type", ErrInvalidAttendanceType.Error())
	}
	if !r.HolidayType.IsValid() {
		errs.Add("holiday_type", ErrInvalidHolidayType.Error())
	}

	for i, d := range r.Details {
		field := fmt.Sprintf("details[%d]", i)
		if d.WorkTime < 0 {
			errs.Add(field+".work_time", ErrNegativeWorkTime.Error())
		} else if d.WorkTime > timecalc.MinutesPerDay {
			errs.Add(field+".work_time", "work time must not exceed 24:00")
		}
		if d.ProjectID != "" && d.ClientID == "" {
			errs.Add(field+".client_id", "client is required when a project is selected")
		}
	}

	return errs
}

func quantize(text string, grid int) *int {
	return snap(timecalc.ParseOptional(text), grid)
}

func snap(minutes *int, grid int) *int {
	if minutes == nil {
		return nil
	}
	v := min(max(timecalc.RoundToGrid(*minutes, grid), 0), timecalc.MinutesPerDay)
	return &v
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
