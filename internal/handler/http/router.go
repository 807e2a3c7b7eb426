package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	contractHandler ContractHandler,
	policyHandler PolicyHandler,
	holidayHandler HolidayHandler,
	timesheetHandler TimesheetHandler,
	overtimeHandler OvertimeHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/contracts", func(r chi.Router) {
			r.Post("/", contractHandler.Create)
			r.Get("/", contractHandler.List)

			r.Route("/{contractID}", func(r chi.Router) {
				r.Get("/", contractHandler.GetByID)

				r.Get("/policies", policyHandler.ListByContract)
				r.Get("/policies/active", policyHandler.GetActive)

				r.Get("/timesheet", timesheetHandler.ListByMonth)

				r.Route("/overtime", func(r chi.Router) {
					r.Get("/breakdown", overtimeHandler.Breakdown)
					r.Get("/weekly", overtimeHandler.WeeklySummaries)
				})

				r.Get("/payroll/runs", payrollHandler.ListRuns)
			})
		})

		r.Post("/policies", policyHandler.Create)

		r.Route("/holidays", func(r chi.Router) {
			r.Post("/", holidayHandler.Create)
			r.Get("/", holidayHandler.ListByYear)
			r.Delete("/{holidayID}", holidayHandler.Delete)
		})

		r.Route("/timesheet", func(r chi.Router) {
			r.Post("/", timesheetHandler.Create)
			r.Delete("/{entryID}", timesheetHandler.Delete)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/calculate", payrollHandler.Calculate)
			r.Post("/runs", payrollHandler.CalculateAndSave)
			r.Put("/deductions", payrollHandler.SetDeductionConfig)
			r.Put("/meal-allowance", payrollHandler.SetMealAllowanceConfig)
			r.Post("/mileage", payrollHandler.AddMileageTrip)
		})
	})
	return r
}
