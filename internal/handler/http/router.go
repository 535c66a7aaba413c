package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the settings the router takes from configuration.
type RouterOptions struct {
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	holidayHandler HolidayHandler,
	workRecordHandler WorkRecordHandler,
	dailyReportHandler DailyReportHandler,
	approvalHandler ApprovalHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worktime-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/{year}", holidayHandler.GetHolidays)
				r.Get("/calendar/{year}/{month}", holidayHandler.GetCalendar)
			})

			r.Route("/work-records", func(r chi.Router) {
				r.Post("/", workRecordHandler.SaveMonthRecords)
				r.Route("/{employeeID}/{year}/{month}", func(r chi.Router) {
					r.Get("/", workRecordHandler.GetMonthRecords)
					r.Get("/project-summary", workRecordHandler.GetProjectSummary)
					r.Put("/special-notes", workRecordHandler.UpdateSpecialNotes)
				})
			})

			r.Route("/daily-reports", func(r chi.Router) {
				r.Post("/", dailyReportHandler.SaveDailyReport)
				r.Get("/{employeeID}/{date}", dailyReportHandler.GetDailyReport)
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Get("/{year}/{month}", approvalHandler.ListStatuses)
				r.Route("/{employeeID}/{year}/{month}", func(r chi.Router) {
					r.Get("/", approvalHandler.GetStatus)
					r.Post("/{action}", approvalHandler.Transition)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterView))
					r.Get("/", masterHandler.ListClients)
					r.Get("/{id}", masterHandler.GetClient)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterManage))
					r.Post("/", masterHandler.CreateClient)
					r.Put("/{id}", masterHandler.UpdateClient)
					r.Delete("/{id}", masterHandler.DeleteClient)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterView))
					r.Get("/", masterHandler.ListProjects)
					r.Get("/{id}", masterHandler.GetProject)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterManage))
					r.Post("/", masterHandler.CreateProject)
					r.Put("/{id}", masterHandler.UpdateProject)
					r.Delete("/{id}", masterHandler.DeleteProject)
				})
			})

			// Permission checks live in the employee service since self-lookup is allowed.
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
			})
		})
	})
	return r
}
