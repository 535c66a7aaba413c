package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type approvalServiceImpl struct {
	tx           database.Transactor
	reportRepo   monthlyreport.MonthlyReportRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewApprovalService(
	tx database.Transactor,
	reportRepo monthlyreport.MonthlyReportRepository,
	employeeRepo employee.EmployeeRepository,
) monthlyreport.ApprovalService {
	return &approvalServiceImpl{
		tx:           tx,
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

func (s *approvalServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (s *approvalServiceImpl) loadReport(ctx context.Context, employeeID string, year, month int) (monthlyreport.MonthlyReport, error) {
	rep, err := s.reportRepo.Get(ctx, employeeID, year, month)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return monthlyreport.NewDraft(employeeID, year, month), nil
		}
		return monthlyreport.MonthlyReport{}, fmt.Errorf("failed to get monthly report: %w", err)
	}
	return rep, nil
}

func withEvent(req monthlyreport.TransitionRequest, event monthlyreport.Event) monthlyreport.TransitionRequest {
	req.Event = event
	return req
}

// Approve implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) Approve(ctx context.Context, actor user.Actor, req monthlyreport.TransitionRequest) (monthlyreport.StatusResponse, error) {
	return s.Apply(ctx, actor, withEvent(req, monthlyreport.EventApprove))
}

// CancelApproval implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) CancelApproval(ctx context.Context, actor user.Actor, req monthlyreport.TransitionRequest) (monthlyreport.StatusResponse, error) {
	return s.Apply(ctx, actor, withEvent(req, monthlyreport.EventCancel))
}

// Submit implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) Submit(ctx context.Context, actor user.Actor, req monthlyreport.TransitionRequest) (monthlyreport.StatusResponse, error) {
	return s.Apply(ctx, actor, withEvent(req, monthlyreport.EventSubmit))
}

// ManagerApprove implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) ManagerApprove(ctx context.Context, actor user.Actor, req monthlyreport.TransitionRequest) (monthlyreport.StatusResponse, error) {
	return s.Apply(ctx, actor, withEvent(req, monthlyreport.EventManagerApprove))
}

// Finalize implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) Finalize(ctx context.Context, actor user.Actor, req monthlyreport.TransitionRequest) (monthlyreport.StatusResponse, error) {
	return s.Apply(ctx, actor, withEvent(req, monthlyreport.EventFinalize))
}

// Remand implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) Remand(ctx context.Context, actor user.Actor, req monthlyreport.TransitionRequest) (monthlyreport.StatusResponse, error) {
	return s.Apply(ctx, actor, withEvent(req, monthlyreport.EventRemand))
}

// Apply implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) Apply(ctx context.Context, actor user.Actor, req monthlyreport.TransitionRequest) (monthlyreport.StatusResponse, error) {
	if _, ok := monthlyreport.ParseEvent(string(req.Event)); !ok {
		return monthlyreport.StatusResponse{}, monthlyreport.ErrUnknownEvent
	}
	if err := req.Validate(); err != nil {
		return monthlyreport.StatusResponse{}, err
	}

	var (
		emp   employee.Employee
		from  monthlyreport.Status
		saved monthlyreport.MonthlyReport
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		emp, err = s.getEmployee(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		rep, err := s.loadReport(ctx, req.EmployeeID, req.Year, req.Month)
		if err != nil {
			return err
		}
		if err := rep.CheckRevision(req.Revision); err != nil {
			return err
		}
		from = rep.Status

		next, err := monthlyreport.Transition(rep, actor, req.Event, req.Reason, s.now())
		if err != nil {
			return err
		}

		saved, err = s.reportRepo.Save(ctx, next)
		return err
	})
	if err != nil {
		return monthlyreport.StatusResponse{}, err
	}

	slog.InfoContext(ctx, "Monthly report status changed",
		"employee_id", req.EmployeeID,
		"year", req.Year,
		"month", req.Month,
		"event", req.Event,
		"from", from,
		"to", saved.Status,
		"revision", saved.Revision,
		"actor", actor.EmployeeID,
	)

	response := monthlyreport.ToStatusResponse(saved)
	response.EmployeeName = emp.FullName
	return response, nil
}

// GetStatus implements monthlyreport.ApprovalService.
func (s *approvalServiceImpl) GetStatus(ctx context.Context, actor user.Actor, employeeID string, year, month int) (monthlyreport.StatusResponse, error) {
	if validator.IsEmpty(employeeID) || !validator.IsValidYearMonth(year, month) {
		return monthlyreport.StatusResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "employee_id, year and month must identify a reporting period",
		}}
	}

	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return monthlyreport.StatusResponse{}, err
	}

	rep, err := s.loadReport(ctx, employeeID, year, month)
	if err != nil {
		return monthlyreport.StatusResponse{}, err
	}
	if err := rep.CanView(actor); err != nil {
		return monthlyreport.StatusResponse{}, err
	}

	response := monthlyreport.ToStatusResponse(rep)
	response.EmployeeName = emp.FullName
	return response, nil
}

// ListStatuses implements monthlyreport.ApprovalService. Active employees without a
// stored report are listed as draft.
func (s *approvalServiceImpl) ListStatuses(ctx context.Context, actor user.Actor, year, month int) ([]monthlyreport.StatusResponse, error) {
	if !actor.Can(user.PermissionReportViewAll) {
		return nil, user.ErrInsufficientPermissions
	}
	if !validator.IsValidYearMonth(year, month) {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "year and month must form a valid reporting period",
		}}
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	reports, err := s.reportRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly reports: %w", err)
	}
	byEmployee := make(map[string]monthlyreport.MonthlyReport, len(reports))
	for _, r := range reports {
		byEmployee[r.EmployeeID] = r
	}

	statuses := make([]monthlyreport.StatusResponse, 0, len(employees))
	for _, emp := range employees {
		rep, ok := byEmployee[emp.ID]
		if !ok {
			rep = monthlyreport.NewDraft(emp.ID, year, month)
		}
		response := monthlyreport.ToStatusResponse(rep)
		response.EmployeeName = emp.FullName
		statuses = append(statuses, response)
	}

	return statuses, nil
}
