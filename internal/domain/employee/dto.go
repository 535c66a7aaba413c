package employee

import (
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeCode   string `json:"employee_code"`
	FullName       string `json:"full_name"`
	DepartmentName string `json:"department_name"`
	EmploymentType string `json:"employment_type"`
	Role           string `json:"role"`
	Retired        bool   `json:"retired"`
	HasPassword    bool   `json:"has_password"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName,
		DepartmentName: e.DepartmentName,
		EmploymentType: string(e.EmploymentType),
		Role:           string(e.Role),
		Retired:        e.Retired,
		HasPassword:    e.PasswordHash != nil,
	}
}

type EmployeeFilter struct {
	IncludeRetired bool
}

type CreateEmployeeRequest struct {
	EmployeeCode   string `json:"employee_code"`
	FullName       string `json:"full_name"`
	DepartmentName string `json:"department_name"`
	EmploymentType string `json:"employment_type"`
	Role           string `json:"role"`
	Password       string `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Employee code
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: ErrInvalidEmployeeCode.Error(),
		})
	}

	// Full name
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if len(r.DepartmentName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name must not exceed 255 characters",
		})
	}

	if !validator.IsInSlice(r.EmploymentType, validEmploymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: ErrInvalidEmploymentType.Error(),
		})
	}

	if _, ok := user.ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of owner, manager, accounting, employee",
		})
	}

	// Password is optional; employees without one cannot log in.
	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}
	if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FullName       *string `json:"full_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Role           *string `json:"role,omitempty"`
	Retired        *bool   `json:"retired,omitempty"`
	Password       *string `json:"password,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 255 characters",
			})
		}
	}

	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, validEmploymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: ErrInvalidEmploymentType.Error(),
		})
	}

	if r.Role != nil {
		if _, ok := user.ParseRole(*r.Role); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of owner, manager, accounting, employee",
			})
		}
	}

	if r.Password != nil && (len(*r.Password) < 8 || len(*r.Password) > 72) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be between 8 and 72 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
