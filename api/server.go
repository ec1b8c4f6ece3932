/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, the middleware stack and the route table.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, picked up by the logger
  2. Logger:     One zap line per request
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. Metrics:    Prometheus request counter and latency histogram
  5. CORS:       Cross-origin requests from the mobile/web client

ROUTE GROUPS:
  /api/tenants/*   Tenants and their payments
  /api/rooms/*     Rooms and their beds
  /api/beds/*      Bed updates
  /api/payments/*  Payment deletion
  /api/admin/*     Reconciliation and reset
  /healthz         Liveness
  /metrics         Prometheus exposition

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/warp/hostelr/logger"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	AllowedOrigins []string
	Metrics        *Metrics
}

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logger.Middleware(h.log))
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", h.Health)
	if opts.Metrics != nil {
		r.Method("GET", "/metrics", opts.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/tenants", func(r chi.Router) {
			r.Get("/", h.ListTenants)
			r.Post("/", h.CreateTenant)
			r.Get("/{id}", h.GetTenant)
			r.Patch("/{id}", h.UpdateTenant)
			r.Delete("/{id}", h.DeleteTenant)
			r.Post("/{id}/reconcile", h.ReconcileTenant)
			r.Get("/{id}/payments", h.ListPayments)
			r.Post("/{id}/payments", h.CreatePayment)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Delete("/{id}", h.DeletePayment)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", h.ListRooms)
			r.Post("/", h.CreateRoom)
			r.Get("/{id}", h.GetRoom)
			r.Patch("/{id}", h.UpdateRoom)
			r.Delete("/{id}", h.DeleteRoom)
			r.Get("/{id}/beds", h.ListBeds)
			r.Post("/{id}/beds", h.CreateBed)
		})

		r.Route("/beds", func(r chi.Router) {
			r.Patch("/{id}", h.UpdateBed)
			r.Delete("/{id}", h.DeleteBed)
		})

		r.Get("/dashboard", h.GetDashboard)
		r.Get("/reminders", h.ListReminders)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reconcile", h.ReconcileAll)
			r.Post("/reset", h.ResetDatabase)
		})
	})

	return r
}
