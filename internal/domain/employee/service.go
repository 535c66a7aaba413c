package employee

import (
	"context"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee (self, or employee.manage holders)
	GetEmployee(ctx context.Context, actor user.Actor, id string) (EmployeeResponse, error)

	// ListEmployees lists employees (report.view_all holders)
	ListEmployees(ctx context.Context, actor user.Actor, filter EmployeeFilter) ([]EmployeeResponse, error)

	// CreateEmployee creates a new employee with a hashed password (owner only)
	CreateEmployee(ctx context.Context, actor user.Actor, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates profile, role, retirement and password (owner only)
	UpdateEmployee(ctx context.Context, actor user.Actor, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
