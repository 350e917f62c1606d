package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/config"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	userHandler UserHandler,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftpay-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", userHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", userHandler.GetProfile)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/", userHandler.ListUsers)
				r.Get("/{userID}/assignments", shiftHandler.ListAssignmentsByUser)
				r.Get("/{userID}/attendances", attendanceHandler.ListAttendancesByUser)
				r.Get("/{userID}/adjustments", payrollHandler.ListRewardPenaltiesByUser)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.ListShifts)
				r.Get("/{shiftID}", shiftHandler.GetShift)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Post("/", shiftHandler.CreateShift)
					r.Put("/{shiftID}", shiftHandler.UpdateShift)
					r.Delete("/{shiftID}", shiftHandler.DeleteShift)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/", shiftHandler.ListAssignments)
				r.Post("/", shiftHandler.AssignShift)
				r.Patch("/{assignmentID}/status", shiftHandler.UpdateAssignmentStatus)
				r.Delete("/{assignmentID}", shiftHandler.RemoveAssignment)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.ListMyAttendances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/{attendanceID}", attendanceHandler.GetAttendance)
					r.Post("/{attendanceID}/payroll", payrollHandler.CalculateLine)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/statements/my", payrollHandler.GetMyStatement)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/lines", payrollHandler.ListLinesByDate)
					r.Get("/lines/{lineID}", payrollHandler.GetLine)
					r.Post("/adjustments", payrollHandler.CreateRewardPenalty)
					r.Get("/statements", payrollHandler.ListStatements)
					r.Get("/statements/{statementID}", payrollHandler.GetStatement)
					r.Get("/summary", payrollHandler.GetMonthlySummary)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/statements/generate", payrollHandler.GenerateMonthly)
					r.Put("/statements/{statementID}", payrollHandler.UpdateStatement)
					r.Delete("/adjustments/{adjustmentID}", payrollHandler.DeleteRewardPenalty)
				})
			})
		})
	})

	return r
}
