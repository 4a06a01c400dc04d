package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/livehost-agency/agency-backend-go/internal/handler/http/middleware"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/jwt"
)

// RouterOptions carries the knobs the router needs beyond the handlers.
type RouterOptions struct {
	Env             string
	StorageBasePath string
	AllowedOrigins  []string
}

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	sellerHandler SellerHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
	payrollHandler PayrollHandler,
	opts RouterOptions,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "agency-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	// Uploaded sales proofs and profile images when running on local storage.
	if opts.StorageBasePath != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.StorageBasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/payroll/period", payrollHandler.CurrentPeriod)

			// Live sellers only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSeller)

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/", attendanceHandler.Submit)
					r.Get("/slots", attendanceHandler.ListSlots)
					r.Get("/me", attendanceHandler.ListMine)
					r.Post("/schedule", attendanceHandler.Schedule)
					r.Post("/{id}/check-in", attendanceHandler.CheckIn)
					r.Post("/{id}/check-out", attendanceHandler.CheckOut)
					r.Post("/{id}/cancel", attendanceHandler.Cancel)
				})

				r.Get("/dashboard/me", dashboardHandler.Me)
				r.Get("/payroll/me", payrollHandler.MyEarnings)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/sellers", func(r chi.Router) {
					r.Get("/", sellerHandler.List)
					r.Post("/", sellerHandler.Create)
					r.Get("/stats", sellerHandler.Stats)
					r.Get("/{id}", sellerHandler.Get)
					r.Put("/{id}", sellerHandler.Update)
					r.Delete("/{id}", sellerHandler.Delete)
					r.Get("/{id}/earnings", payrollHandler.SellerEarnings)
				})

				r.Get("/attendance/review", attendanceHandler.ListForReview)
				r.Get("/dashboard/admin", dashboardHandler.Admin)
			})
		})
	})
	return r
}
