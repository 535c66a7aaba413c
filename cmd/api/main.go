package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/config"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/report"
	appHTTP "github.com/cmlabs-hris/worktime-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/postgresql"
	approvalService "github.com/cmlabs-hris/worktime-backend-go/internal/service/approval"
	serviceAuth "github.com/cmlabs-hris/worktime-backend-go/internal/service/auth"
	dailyReportService "github.com/cmlabs-hris/worktime-backend-go/internal/service/dailyreport"
	employeeService "github.com/cmlabs-hris/worktime-backend-go/internal/service/employee"
	holidayService "github.com/cmlabs-hris/worktime-backend-go/internal/service/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/service/master"
	"github.com/cmlabs-hris/worktime-backend-go/internal/service/worktime"
	"github.com/cmlabs-hris/worktime-backend-go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Apply(context.Background(), db); err != nil {
		slog.Error("Error applying migrations", "error", err)
		os.Exit(1)
	}

	transactor := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	reportRepo := postgresql.NewMonthlyReportRepository(db)
	recordRepo := postgresql.NewWorkRecordRepository(db)
	dailyRepo := postgresql.NewDailyReportRepository(db)

	policy := report.DefaultPolicy()
	policy.StandardMinutes = cfg.Work.StandardMinutes
	policy.LegalMinutes = cfg.Work.LegalMinutes
	grid := cfg.Work.GridMinutes

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterService := master.NewMasterService(clientRepo, projectRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	workTimeService := worktime.NewWorkTimeService(
		transactor,
		reportRepo,
		recordRepo,
		holidayRepo,
		employeeRepo,
		clientRepo,
		projectRepo,
		policy,
		grid,
	)
	dailyReportSvc := dailyReportService.NewDailyReportService(
		transactor,
		dailyRepo,
		recordRepo,
		reportRepo,
		employeeRepo,
		clientRepo,
		projectRepo,
		grid,
	)
	approvalSvc := approvalService.NewApprovalService(transactor, reportRepo, employeeRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
		},
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewMasterHandler(masterService),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewWorkRecordHandler(workTimeService),
		appHTTP.NewDailyReportHandler(dailyReportSvc),
		appHTTP.NewApprovalHandler(approvalSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
