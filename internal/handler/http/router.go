package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/oa-project/office-backend-go/internal/config"
	"github.com/oa-project/office-backend-go/internal/domain/auth"
	"github.com/oa-project/office-backend-go/internal/handler/http/middleware"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Staff      StaffHandler
	Department DepartmentHandler
	Inform     InformHandler
}

func NewRouter(cfg config.AppConfig, authService auth.AuthService, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "office-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// Activation authenticates with the mailed token itself.
		r.Get("/staff/activate", h.Staff.Activate)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticated(authService))

			r.Get("/auth/me", h.Auth.Me)
			r.Post("/auth/reset-password", h.Auth.ResetPassword)

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Create)
				r.Patch("/{id}", h.Attendance.Decide)
				r.Get("/types", h.Attendance.ListTypes)
				r.Get("/my-approver", h.Attendance.MyApprover)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.Staff.List)
				r.Post("/", h.Staff.Add)
				r.Post("/download", h.Staff.Download)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Put("/leader", h.Department.UpdateLeader)
			})

			r.Route("/informs", func(r chi.Router) {
				r.Get("/", h.Inform.List)
				r.Post("/", h.Inform.Create)
				r.Delete("/{id}", h.Inform.Delete)
				r.Post("/{id}/read", h.Inform.MarkRead)
			})
		})
	})
	return r
}
