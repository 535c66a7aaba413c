package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeCodeExists     = errors.New("employee code already exists")
	ErrInvalidEmployeeCode    = errors.New("invalid employee code format")
	ErrInvalidEmploymentType  = errors.New("employment_type must be full_time, part_time or contract")
	ErrCannotRetireSelf       = errors.New("cannot retire your own employee record")
	ErrEmployeeAlreadyRetired = errors.New("employee is already retired")
)
