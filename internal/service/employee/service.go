package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func hashPassword(password string) (*string, error) {
	if password == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)
	return &hashed, nil
}

func (s *EmployeeServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, actor user.Actor, id string) (employee.EmployeeResponse, error) {
	if !actor.Owns(id) && !actor.Can(user.PermissionReportViewAll) && !actor.Can(user.PermissionEmployeeManage) {
		return employee.EmployeeResponse{}, user.ErrInsufficientPermissions
	}

	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, actor user.Actor, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if !actor.Can(user.PermissionReportViewAll) && !actor.Can(user.PermissionEmployeeManage) {
		return nil, user.ErrInsufficientPermissions
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, actor user.Actor, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !actor.Can(user.PermissionEmployeeManage) {
		return employee.EmployeeResponse{}, user.ErrOwnerAccessRequired
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode:   strings.TrimSpace(req.EmployeeCode),
		FullName:       strings.TrimSpace(req.FullName),
		DepartmentName: strings.TrimSpace(req.DepartmentName),
		EmploymentType: employee.EmploymentType(req.EmploymentType),
		Role:           role,
		PasswordHash:   passwordHash,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.InfoContext(ctx, "employee created", "employee_id", created.ID, "role", created.Role, "by", actor.EmployeeID)
	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, actor user.Actor, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !actor.Can(user.PermissionEmployeeManage) {
		return employee.EmployeeResponse{}, user.ErrOwnerAccessRequired
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Retired != nil && *req.Retired {
		if actor.Owns(emp.ID) {
			return employee.EmployeeResponse{}, employee.ErrCannotRetireSelf
		}
		if emp.Retired {
			return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyRetired
		}
	}

	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.DepartmentName != nil {
		emp.DepartmentName = strings.TrimSpace(*req.DepartmentName)
	}
	if req.EmploymentType != nil {
		emp.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.Role != nil {
		emp.Role, _ = user.ParseRole(*req.Role)
	}
	if req.Retired != nil {
		emp.Retired = *req.Retired
	}
	if req.Password != nil {
		emp.PasswordHash, err = hashPassword(*req.Password)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	slog.InfoContext(ctx, "employee updated", "employee_id", emp.ID, "by", actor.EmployeeID)
	return employee.ToResponse(emp), nil
}
