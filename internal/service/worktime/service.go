package worktime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type workTimeServiceImpl struct {
	tx           database.Transactor
	reportRepo   monthlyreport.MonthlyReportRepository
	recordRepo   workrecord.WorkRecordRepository
	holidayRepo  holiday.HolidayRepository
	employeeRepo employee.EmployeeRepository
	clientRepo   client.ClientRepository
	projectRepo  project.ProjectRepository
	policy       report.WorkPolicy
	grid         int
}

func NewWorkTimeService(
	tx database.Transactor,
	reportRepo monthlyreport.MonthlyReportRepository,
	recordRepo workrecord.WorkRecordRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	clientRepo client.ClientRepository,
	projectRepo project.ProjectRepository,
	policy report.WorkPolicy,
	grid int,
) report.WorkTimeService {
	return &workTimeServiceImpl{
		tx:           tx,
		reportRepo:   reportRepo,
		recordRepo:   recordRepo,
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		policy:       policy,
		grid:         grid,
	}
}

func (s *workTimeServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// loadReport returns the stored report or the implicit draft of a month never saved.
func (s *workTimeServiceImpl) loadReport(ctx context.Context, employeeID string, year, month int) (monthlyreport.MonthlyReport, error) {
	rep, err := s.reportRepo.Get(ctx, employeeID, year, month)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return monthlyreport.NewDraft(employeeID, year, month), nil
		}
		return monthlyreport.MonthlyReport{}, fmt.Errorf("failed to get monthly report: %w", err)
	}
	return rep, nil
}

func checkPeriod(employeeID string, year, month int) error {
	if validator.IsEmpty(employeeID) {
		return report.ErrEmployeeRequired
	}
	if !validator.IsValidYearMonth(year, month) {
		return report.ErrInvalidPeriod
	}
	return nil
}

// GetMonthRecords implements report.WorkTimeService.
func (s *workTimeServiceImpl) GetMonthRecords(ctx context.Context, actor user.Actor, employeeID string, year, month int) (report.MonthRecordsResponse, error) {
	if err := checkPeriod(employeeID, year, month); err != nil {
		return report.MonthRecordsResponse{}, err
	}

	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return report.MonthRecordsResponse{}, err
	}

	rep, err := s.loadReport(ctx, employeeID, year, month)
	if err != nil {
		return report.MonthRecordsResponse{}, err
	}

	if err := rep.CanView(actor); err != nil {
		return report.MonthRecordsResponse{}, err
	}

	return s.buildMonth(ctx, actor, emp, rep)
}

func (s *workTimeServiceImpl) buildMonth(ctx context.Context, actor user.Actor, emp employee.Employee, rep monthlyreport.MonthlyReport) (report.MonthRecordsResponse, error) {
	records, err := s.recordRepo.ListByMonth(ctx, rep.EmployeeID, rep.Year, rep.Month)
	if err != nil {
		return report.MonthRecordsResponse{}, fmt.Errorf("failed to list work records: %w", err)
	}

	holidays, err := s.holidayRepo.GetByMonth(ctx, rep.Year, rep.Month)
	if err != nil {
		return report.MonthRecordsResponse{}, fmt.Errorf("failed to get holidays: %w", err)
	}

	response := report.BuildMonth(rep, actor, records, holiday.ToMap(holidays), s.policy)
	response.EmployeeName = emp.FullName
	return response, nil
}

// SaveMonthRecords implements report.WorkTimeService.
func (s *workTimeServiceImpl) SaveMonthRecords(ctx context.Context, actor user.Actor, req workrecord.SaveMonthRecordsRequest) (workrecord.SaveMonthRecordsResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.SaveMonthRecordsResponse{}, err
	}

	records := make([]workrecord.WorkRecord, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, r.ToRecord().Rounded(s.grid))
	}

	var (
		saved  monthlyreport.MonthlyReport
		stored []workrecord.WorkRecord
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.getEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		rep, err := s.loadReport(ctx, req.EmployeeID, req.Year, req.Month)
		if err != nil {
			return err
		}
		// A notes-only save is gated by the notes check below.
		if len(records) > 0 {
			if err := rep.CanEditRecords(actor); err != nil {
				return err
			}
		} else if err := rep.CanView(actor); err != nil {
			return err
		}
		if err := rep.CheckRevision(req.Revision); err != nil {
			return err
		}
		checker := NewDetailChecker(s.clientRepo, s.projectRepo)
		var errs validator.ValidationErrors
		for i, rec := range records {
			if err := checker.Check(ctx, fmt.Sprintf("records[%d]", i), rec.Details, &errs); err != nil {
				return err
			}
		}
		if err := errs.Err(); err != nil {
			return err
		}

		for _, rec := range records {
			if err := s.recordRepo.Upsert(ctx, req.EmployeeID, req.Year, req.Month, rec); err != nil {
				return err
			}
			if rec.Details != nil {
				if err := s.recordRepo.ReplaceDetails(ctx, req.EmployeeID, req.Year, req.Month, rec.Day, rec.Details); err != nil {
					return err
				}
			}
		}

		if req.SpecialNotes != nil && *req.SpecialNotes != rep.SpecialNotes {
			if err := rep.CanEditNotes(actor); err != nil {
				return err
			}
			rep.SpecialNotes = *req.SpecialNotes
		}

		saved, err = s.reportRepo.Save(ctx, rep)
		if err != nil {
			return err
		}

		stored, err = s.recordRepo.ListByMonth(ctx, req.EmployeeID, req.Year, req.Month)
		return err
	})
	if err != nil {
		return workrecord.SaveMonthRecordsResponse{}, err
	}

	unreconciled := workrecord.Unreconciled(stored)
	slog.InfoContext(ctx, "Monthly work records saved",
		"employee_id", req.EmployeeID,
		"year", req.Year,
		"month", req.Month,
		"days", len(records),
		"revision", saved.Revision,
		"unreconciled_days", len(unreconciled),
		"actor", actor.EmployeeID,
	)

	return workrecord.SaveMonthRecordsResponse{
		Revision:     saved.Revision,
		Status:       string(saved.Status),
		SavedDays:    len(records),
		Unreconciled: unreconciled,
	}, nil
}

// UpdateSpecialNotes implements report.WorkTimeService.
func (s *workTimeServiceImpl) UpdateSpecialNotes(ctx context.Context, actor user.Actor, req workrecord.UpdateSpecialNotesRequest) (report.MonthRecordsResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthRecordsResponse{}, err
	}

	var (
		emp   employee.Employee
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
		if err := rep.CanEditNotes(actor); err != nil {
			return err
		}
		if err := rep.CheckRevision(req.Revision); err != nil {
			return err
		}

		rep.SpecialNotes = req.SpecialNotes
		saved, err = s.reportRepo.Save(ctx, rep)
		return err
	})
	if err != nil {
		return report.MonthRecordsResponse{}, err
	}

	slog.InfoContext(ctx, "Special notes updated",
		"employee_id", req.EmployeeID,
		"year", req.Year,
		"month", req.Month,
		"revision", saved.Revision,
		"actor", actor.EmployeeID,
	)

	return s.buildMonth(ctx, actor, emp, saved)
}

// GetMonthlyProjectSummary implements report.WorkTimeService.
func (s *workTimeServiceImpl) GetMonthlyProjectSummary(ctx context.Context, actor user.Actor, employeeID string, year, month int) (report.ProjectSummaryResponse, error) {
	if err := checkPeriod(employeeID, year, month); err != nil {
		return report.ProjectSummaryResponse{}, err
	}

	if _, err := s.getEmployee(ctx, employeeID); err != nil {
		return report.ProjectSummaryResponse{}, err
	}

	rep, err := s.loadReport(ctx, employeeID, year, month)
	if err != nil {
		return report.ProjectSummaryResponse{}, err
	}
	if err := rep.CanView(actor); err != nil {
		return report.ProjectSummaryResponse{}, err
	}

	records, err := s.recordRepo.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return report.ProjectSummaryResponse{}, fmt.Errorf("failed to list work records: %w", err)
	}

	names, err := s.masterNames(ctx)
	if err != nil {
		return report.ProjectSummaryResponse{}, err
	}

	return report.BuildProjectSummary(employeeID, year, month, records, names), nil
}

func (s *workTimeServiceImpl) masterNames(ctx context.Context) (report.Names, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return report.Names{}, fmt.Errorf("failed to list clients: %w", err)
	}
	projects, err := s.projectRepo.List(ctx, project.ProjectFilter{})
	if err != nil {
		return report.Names{}, fmt.Errorf("failed to list projects: %w", err)
	}

	names := report.Names{
		Clients:  make(map[string]string, len(clients)),
		Projects: make(map[string]string, len(projects)),
	}
	for _, c := range clients {
		names.Clients[c.ID] = c.Name
	}
	for _, p := range projects {
		names.Projects[p.ID] = p.Name
	}
	return names, nil
}
