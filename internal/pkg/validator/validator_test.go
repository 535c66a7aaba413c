package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"09:00", "9:00", "00:00", "24:00", "23:45"}
	invalid := []string{"24:15", "25:00", "12:60", "noon", "", "0900"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	if !IsValidYearMonth(2025, 4) {
		t.Errorf("IsValidYearMonth(2025, 4) = false, want true")
	}
	if IsValidYearMonth(2025, 13) || IsValidYearMonth(2025, 0) || IsValidYearMonth(1999, 1) {
		t.Errorf("IsValidYearMonth accepted an out-of-range period")
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, c := range cases {
		if got := DaysIn(c.year, c.month); got != c.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_time", Message: "invalid"},
		{Field: "day", Message: "required"},
	}
	got := errs.Error()
	want := "start_time: invalid; day: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	var errs ValidationErrors
	errs.Add("start_time", "invalid")
	errs.Add("day", "required")
	got := errs.ToMap()
	want := map[string]string{"start_time": "invalid", "day": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Errorf("empty ValidationErrors.Err() should be nil")
	}
	errs.Add("x", "bad")
	if errs.Err() == nil {
		t.Errorf("non-empty ValidationErrors.Err() should not be nil")
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"E001", "emp-12", "A_b"}
	for _, c := range valid {
		if !IsValidEmployeeCode(c) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", c)
		}
	}
	invalid := []string{"", "-lead", "has space", "x/y"}
	for _, c := range invalid {
		if IsValidEmployeeCode(c) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", c)
		}
	}
}
