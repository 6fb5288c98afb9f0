package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loyaltyapi/internal/config"
	"loyaltyapi/internal/http/middleware"
	"loyaltyapi/internal/service"
)

// Deps carries everything the routes need.
type Deps struct {
	DB       Pinger
	Clients  service.ClientService
	Reports  service.ReportService
	Messages config.MessagesConfig
	// Gatherer enables /metrics when set.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	client := api.Group("/client")
	client.Get("/search", SearchClient(d.Clients, d.Messages))
	client.Get("/export", ExportClient(d.Clients, d.Messages))

	reports := api.Group("/reports")
	reports.Get("/loyal-customers", LoyaltyReport(d.Reports, d.Messages))
}
