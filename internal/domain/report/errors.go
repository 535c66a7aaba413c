package report

import "errors"

var (
	ErrInvalidPeriod    = errors.New("year and month must form a valid reporting period")
	ErrEmployeeRequired = errors.New("employee_id is required")
)
