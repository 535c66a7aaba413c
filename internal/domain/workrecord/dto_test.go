package workrecord

import (
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMonthRecordsRequestValidate(t *testing.T) {
	req := SaveMonthRecordsRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		Month:      2,
		Records: []WorkRecordRequest{
			{Day: 3, StartTime: "09:00", EndTime: "18:00", BreakTime: "1:00"},
			{Day: 4, Details: []WorkDetailRequest{{ClientID: "c", ProjectID: "p", WorkTime: "2:30"}}},
		},
	}
	assert.NoError(t, req.Validate())

	req.Records = append(req.Records,
		WorkRecordRequest{Day: 3},
		WorkRecordRequest{Day: 29, StartTime: "9"},
		WorkRecordRequest{Day: 5, Details: []WorkDetailRequest{{ProjectID: "p", WorkTime: "x"}}},
	)
	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Equal(t, ErrDuplicateDay.Error(), fields["records[2].day"])
	assert.Contains(t, fields, "records[3].day")
	assert.Contains(t, fields, "records[3].start_time")
	assert.Contains(t, fields, "records[4].details[0].work_time")
	assert.Contains(t, fields, "records[4].details[0].client_id")
}

func TestSaveMonthRecordsRequestBadPeriod(t *testing.T) {
	req := SaveMonthRecordsRequest{EmployeeID: "emp-1", Year: 2025, Month: 13}
	assert.Error(t, req.Validate())
}

func TestToRecordKeepsDetailsNilness(t *testing.T) {
	r := WorkRecordRequest{Day: 1, StartTime: "09:00"}.ToRecord()
	assert.Nil(t, r.Details)
	assert.Nil(t, r.EndTime)

	r = WorkRecordRequest{Day: 1, Details: []WorkDetailRequest{}}.ToRecord()
	assert.NotNil(t, r.Details)
	assert.Empty(t, r.Details)
}

func TestValidateDetailsFieldNames(t *testing.T) {
	errs := ValidateDetails([]WorkDetailRequest{{WorkTime: ""}})
	assert.Contains(t, errs.ToMap(), "details[0].work_time")
}

func TestSaveMonthRecordsRequestAttendanceFields(t *testing.T) {
	req := SaveMonthRecordsRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		Month:      5,
		Records: []WorkRecordRequest{
			{Day: 1, StartTime: "18:00", EndTime: "24:00", NightBreakTime: "0:30", HolidayType: HolidayStatutory},
			{Day: 2, AttendanceType: AttendanceAMHalfDay},
		},
	}
	assert.NoError(t, req.Validate())

	req.Records = append(req.Records,
		WorkRecordRequest{Day: 3, AttendanceType: "vacation", HolidayType: "company", NightBreakTime: "late"},
	)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	fields := verrs.ToMap()
	assert.Equal(t, ErrInvalidAttendanceType.Error(), fields["records[2].attendance_type"])
	assert.Equal(t, ErrInvalidHolidayType.Error(), fields["records[2].holiday_type"])
	assert.Contains(t, fields, "records[2].night_break_time")
}

func TestSaveMonthRecordsRequestNotesOnly(t *testing.T) {
	notes := "approved overtime on the 12th"
	req := SaveMonthRecordsRequest{EmployeeID: "emp-1", Year: 2025, Month: 5, Records: nil, SpecialNotes: &notes}
	assert.NoError(t, req.Validate())
}

func TestToRecordCarriesAttendanceFields(t *testing.T) {
	r := WorkRecordRequest{
		Day:            7,
		StartTime:      "20:00",
		EndTime:        "24:00",
		NightBreakTime: "0:15",
		AttendanceType: AttendanceFlex,
		HolidayType:    HolidaySpecial,
	}.ToRecord()
	require.NotNil(t, r.NightBreakTime)
	assert.Equal(t, 15, *r.NightBreakTime)
	assert.Equal(t, AttendanceFlex, r.AttendanceType)
	assert.Equal(t, HolidaySpecial, r.HolidayType)
	assert.Equal(t, 225, r.NetWorked())

	resp := ToResponse(r)
	assert.Equal(t, "00:15", resp.NightBreakTime)
	assert.Equal(t, AttendanceFlex, resp.AttendanceType)
	assert.Equal(t, HolidaySpecial, resp.HolidayType)
}
