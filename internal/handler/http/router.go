package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/config"
	"github.com/planilla-cr/planilla-backend-go/internal/handler/http/middleware"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	vacationHandler VacationHandler,
	financeHandler FinanceHandler,
	ratesHandler RatesHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "planilla-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)

				r.Get("/{employeeID}/leaves", leaveHandler.ListByEmployee)
				r.Get("/{employeeID}/vacations", vacationHandler.ListByEmployee)
				r.Get("/{employeeID}/vacations/balances", vacationHandler.Balances)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Create)
				r.Delete("/{id}", leaveHandler.Delete)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", vacationHandler.Create)
				r.Delete("/{id}", vacationHandler.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/runs", payrollHandler.ListRuns)
				r.Get("/runs/{id}", payrollHandler.GetRun)
				r.Get("/runs/{id}/pdf", payrollHandler.ExportRunPDF)
				r.Post("/preview", payrollHandler.PreviewRun)
				r.Get("/bonus-estimates", payrollHandler.BonusEstimates)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Post("/runs", payrollHandler.CreateRun)
					r.Delete("/runs/{id}", payrollHandler.DeleteRun)
				})
			})

			r.Route("/finance", func(r chi.Router) {
				r.Get("/transactions", financeHandler.ListByMonth)
				r.Post("/transactions", financeHandler.Create)
				r.Delete("/transactions/{id}", financeHandler.Delete)
				r.Get("/summary", financeHandler.Summary)
			})

			r.Route("/rates", func(r chi.Router) {
				r.Get("/", ratesHandler.Get)
				r.Get("/history", ratesHandler.History)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Put("/", ratesHandler.Update)
				})
			})
		})
	})
	return r
}
