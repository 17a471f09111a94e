package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Admin      AdminHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Job        JobHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.IsTokenRevoked))

			// Admin only
			r.Route("/admin/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/pending", h.Admin.ListPendingUsers)
				r.Post("/{id}/approve", h.Admin.ApproveUser)
				r.Post("/{id}/reject", h.Admin.RejectUser)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMe)

				// Reviewer (HR or admin) roster access
				r.Group(func(r chi.Router) {
					r.Use(middleware.ReviewerOnly)
					r.Get("/", h.Employee.List)
					r.Get("/by-email/{email}", h.Employee.GetByEmail)
				})

				// Admin only profile management
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Get("/my", h.Attendance.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ReviewerOnly)
					r.Get("/", h.Attendance.List)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ReviewerOnly)
					r.Get("/", h.Leave.List)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", h.Job.List)
				r.Get("/{id}", h.Job.Get)
				r.Post("/{id}/apply", h.Job.Apply)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ReviewerOnly)
					r.Get("/applications", h.Job.ListApplications)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Job.Create)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/salary/my/receipt", h.Report.MyReceipt)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ReviewerOnly)
					r.Get("/salary", h.Report.MonthlySummary)
					r.Get("/salary/receipt", h.Report.Receipt)
				})
			})
		})
	})

	return r
}
