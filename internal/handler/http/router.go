package http

import (
	"log/slog"
	"os"

	"github.com/clockwork-hr/attendance-backend-go/internal/config"
	"github.com/clockwork-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	punchHandler PunchHandler,
	attendanceHandler AttendanceHandler,
	summaryHandler SummaryHandler,
	correctionHandler CorrectionHandler,
	exceptionHandler ExceptionHandler,
	ledgerHandler LedgerHandler,
	settingsHandler SettingsHandler,
	scheduleHandler ScheduleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", punchHandler.Ingest)
				r.Delete("/{id}", punchHandler.Delete)
				r.Post("/resolve", punchHandler.ResolveUnmatched)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/{employeeID}/{date}", attendanceHandler.GetDay)
				r.Post("/save", attendanceHandler.SaveDay)
				r.Post("/revert", attendanceHandler.RevertDay)
				r.Post("/treat", attendanceHandler.TreatPending)
			})

			r.Route("/summaries", func(r chi.Router) {
				r.Get("/{employeeID}/{year}/{month}", summaryHandler.GetMonthly)
				r.Get("/{employeeID}/{year}/{month}/check", summaryHandler.CheckValidation)
				r.Post("/validate", summaryHandler.Validate)
				r.Post("/validate/bulk", summaryHandler.BulkValidate)
				r.Post("/recalculate", summaryHandler.Recalculate)
				r.Post("/invalidate", summaryHandler.Invalidate)
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Post("/bulk-clear", correctionHandler.BulkClear)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/timetables/{id}", scheduleHandler.GetTimetable)
				r.Get("/{employeeID}/{date}", scheduleHandler.GetDaySchedule)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)
				r.Put("/", settingsHandler.Update)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", ledgerHandler.RecordOvertime)
			})

			r.Route("/exceptions", func(r chi.Router) {
				r.Post("/", exceptionHandler.Create)
				r.Post("/{id}/approve", exceptionHandler.Approve)
				r.Post("/{id}/reject", exceptionHandler.Reject)
				r.Delete("/{id}", exceptionHandler.Delete)
			})
		})
	})
	return r
}
