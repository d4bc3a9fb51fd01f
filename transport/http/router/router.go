package router

import (
	"hotel/config"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/dashboard"
	"hotel/internal/handlers/report"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/sale"
	"hotel/internal/handlers/user"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Employee  user.Handler
	Room      room.Handler
	Sale      sale.Handler
	Report    report.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
	App            middleware.AppMiddleware
	Config         *config.Config
}

// Middlewares installs the request-wide chain. Auth and role checks are attached per route group.
func (r *Router) Middlewares(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)

	if r.Config.App.CORS.Enable {
		corsConfig := r.Config.App.CORS

		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	router.Use(r.App.Tracing)
	router.Use(r.App.Metrics)
	router.Use(r.App.RateLimit())
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup, r.AuthRole)
		r.DomainHandlers.Employee.Router(routerGroup, r.AuthRole)
		r.DomainHandlers.Room.Router(routerGroup, r.AuthRole)
		r.DomainHandlers.Sale.Router(routerGroup, r.AuthRole)
		r.DomainHandlers.Report.Router(routerGroup, r.AuthRole)
		r.DomainHandlers.Dashboard.Router(routerGroup, r.AuthRole)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole, app middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
		App:            app,
		Config:         cfg,
	}
}
