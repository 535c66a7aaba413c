package dailyreport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/worktime-backend-go/internal/service/worktime"
	"github.com/jackc/pgx/v5"
)

type dailyReportServiceImpl struct {
	tx           database.Transactor
	dailyRepo    dailyreport.DailyReportRepository
	recordRepo   workrecord.WorkRecordRepository
	reportRepo   monthlyreport.MonthlyReportRepository
	employeeRepo employee.EmployeeRepository
	clientRepo   client.ClientRepository
	projectRepo  project.ProjectRepository
	grid         int
}

func NewDailyReportService(
	tx database.Transactor,
	dailyRepo dailyreport.DailyReportRepository,
	recordRepo workrecord.WorkRecordRepository,
	reportRepo monthlyreport.MonthlyReportRepository,
	employeeRepo employee.EmployeeRepository,
	clientRepo client.ClientRepository,
	projectRepo project.ProjectRepository,
	grid int,
) dailyreport.DailyReportService {
	return &dailyReportServiceImpl{
		tx:           tx,
		dailyRepo:    dailyRepo,
		recordRepo:   recordRepo,
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		grid:         grid,
	}
}

func (s *dailyReportServiceImpl) ensureEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	return nil
}

func (s *dailyReportServiceImpl) loadReport(ctx context.Context, employeeID string, date time.Time) (monthlyreport.MonthlyReport, error) {
	year, month := date.Year(), int(date.Month())
	rep, err := s.reportRepo.Get(ctx, employeeID, year, month)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return monthlyreport.NewDraft(employeeID, year, month), nil
		}
		return monthlyreport.MonthlyReport{}, fmt.Errorf("failed to get monthly report: %w", err)
	}
	return rep, nil
}

// loadRecord returns the stored record of the day, or an empty one and false.
func (s *dailyReportServiceImpl) loadRecord(ctx context.Context, employeeID string, date time.Time) (workrecord.WorkRecord, bool, error) {
	rec, err := s.recordRepo.GetByDay(ctx, employeeID, date.Year(), int(date.Month()), date.Day())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workrecord.WorkRecord{Day: date.Day()}, false, nil
		}
		return workrecord.WorkRecord{}, false, fmt.Errorf("failed to get work record: %w", err)
	}
	return rec, true, nil
}

// GetDailyReport implements dailyreport.DailyReportService.
func (s *dailyReportServiceImpl) GetDailyReport(ctx context.Context, actor user.Actor, employeeID, dateStr string) (dailyreport.DailyReportResponse, error) {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return dailyreport.DailyReportResponse{}, dailyreport.ErrInvalidDate
	}

	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	rep, err := s.loadReport(ctx, employeeID, date)
	if err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	if err := rep.CanView(actor); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	exists := true
	narrative, err := s.dailyRepo.Get(ctx, employeeID, date)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.DailyReportResponse{}, fmt.Errorf("failed to get daily report: %w", err)
		}
		exists = false
		narrative = dailyreport.DailyReport{EmployeeID: employeeID, Date: date}
	}

	record, _, err := s.loadRecord(ctx, employeeID, date)
	if err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	return dailyreport.ToResponse(narrative, exists, record), nil
}

// SaveDailyReport implements dailyreport.DailyReportService. The narrative and the day's
// detail list are committed together with a revision bump of the month.
func (s *dailyReportServiceImpl) SaveDailyReport(ctx context.Context, actor user.Actor, req dailyreport.SaveDailyReportRequest) (dailyreport.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.DailyReportResponse{}, err
	}
	date := req.ParsedDate()

	var details []workrecord.WorkDetail
	if req.Details != nil {
		details = workrecord.WorkRecord{Details: workrecord.DetailsFromRequest(req.Details)}.Rounded(s.grid).Details
	}

	var (
		saved  dailyreport.DailyReport
		record workrecord.WorkRecord
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		rep, err := s.loadReport(ctx, req.EmployeeID, date)
		if err != nil {
			return err
		}
		if err := rep.CanEditRecords(actor); err != nil {
			return err
		}
		if err := rep.CheckRevision(req.Revision); err != nil {
			return err
		}

		var errs validator.ValidationErrors
		if err := worktime.NewDetailChecker(s.clientRepo, s.projectRepo).Check(ctx, "", details, &errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}

		saved, err = s.dailyRepo.Upsert(ctx, dailyreport.DailyReport{
			EmployeeID:    req.EmployeeID,
			Date:          date,
			WorkSummary:   req.WorkSummary,
			Problems:      req.Problems,
			Challenges:    req.Challenges,
			TomorrowTasks: req.TomorrowTasks,
			Thoughts:      req.Thoughts,
		})
		if err != nil {
			return err
		}

		var exists bool
		record, exists, err = s.loadRecord(ctx, req.EmployeeID, date)
		if err != nil {
			return err
		}
		if !exists {
			if err := s.recordRepo.Upsert(ctx, req.EmployeeID, date.Year(), int(date.Month()), record); err != nil {
				return err
			}
		}
		if details != nil {
			if err := s.recordRepo.ReplaceDetails(ctx, req.EmployeeID, date.Year(), int(date.Month()), date.Day(), details); err != nil {
				return err
			}
			record, _, err = s.loadRecord(ctx, req.EmployeeID, date)
			if err != nil {
				return err
			}
		}

		_, err = s.reportRepo.Save(ctx, rep)
		return err
	})
	if err != nil {
		return dailyreport.DailyReportResponse{}, err
	}

	slog.InfoContext(ctx, "Daily report saved",
		"employee_id", req.EmployeeID,
		"date", req.Date,
		"details", len(record.Details),
		"reconciled", workrecord.Reconcile(record).Balanced(),
		"actor", actor.EmployeeID,
	)

	return dailyreport.ToResponse(saved, true, record), nil
}
