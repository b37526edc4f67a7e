package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http/middleware"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	User        UserHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Report      ReportHandler
	Dashboard   DashboardHandler
	Maintenance MaintenanceHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-backend"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Post("/verify", h.Auth.Verify)
				r.Put("/update-profile", h.Auth.UpdateProfile)
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Get("/{id}/qr", h.Employee.GetQR)
				r.Get("/{id}/stats", h.Employee.Stats)

				// Scanner station and admin may change the roster
				r.Group(func(r chi.Router) {
					r.Use(middleware.ScannerOrAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/today", h.Attendance.Today)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ScannerOrAdmin)
					r.Post("/entry", h.Attendance.Entry)
					r.Post("/exit", h.Attendance.Exit)
					r.Post("/scan", h.Attendance.Scan)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", h.Report.Daily)
				r.Get("/weekly", h.Report.Period)
				r.Get("/weekly/export", h.Report.PeriodExport)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.Dashboard.Stats)
				r.Get("/attendance-today", h.Attendance.Today)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Delete("/reset-database", h.Maintenance.Reset)
				r.Get("/stats", h.Maintenance.Counts)
			})
		})
	})

	return r
}
