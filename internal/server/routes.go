package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"schoolwidget/internal/handlers"
	"schoolwidget/internal/handlers/api"
	"schoolwidget/internal/middleware"
	"schoolwidget/internal/widget"
)

// RegisterRoutes registers all application routes. pinger gates readiness and
// may be nil when no database is configured.
func (s *Server) RegisterRoutes(w *widget.Widget, pinger handlers.Pinger) {
	// Initialize handlers
	widgetHandler := handlers.NewWidgetHandler(w, s.Cfg)
	probeHandler := handlers.NewProbeHandler(pinger)
	apiHandler := api.NewWidgetHandler(w)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})))

	// Widget page
	s.App.Get("/", widgetHandler.Index)
	s.App.Post("/run", middleware.WidgetForm, widgetHandler.Run)
	s.App.Post("/reset", widgetHandler.Reset)
	s.App.Post("/chip", middleware.WidgetForm, widgetHandler.Chip)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/ask", apiHandler.Ask)
	apiGroup.Post("/plan", apiHandler.Plan)
	apiGroup.Get("/rules", apiHandler.Rules)
	apiGroup.Get("/dates", apiHandler.Dates)
}
