package employee

import (
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
)

type Employee struct {
	ID             string
	EmployeeCode   string
	FullName       string
	DepartmentName string
	EmploymentType EmploymentType
	Role           user.Role
	Retired        bool
	PasswordHash   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanLogin reports whether the employee has credentials and is still employed.
func (e Employee) CanLogin() bool {
	return !e.Retired && e.PasswordHash != nil && *e.PasswordHash != ""
}

func (e Employee) Actor() user.Actor {
	return user.Actor{EmployeeID: e.ID, Role: e.Role}
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeContract EmploymentType = "contract"
)

var validEmploymentTypes = []string{
	string(EmploymentTypeFullTime),
	string(EmploymentTypePartTime),
	string(EmploymentTypeContract),
}
