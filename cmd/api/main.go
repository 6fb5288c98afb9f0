package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"loyaltyapi/docs"
	"loyaltyapi/internal/config"
	"loyaltyapi/internal/database"
	"loyaltyapi/internal/database/migration"
	handlers "loyaltyapi/internal/http/handler"
	"loyaltyapi/internal/http/middleware"
	"loyaltyapi/internal/logger"
	"loyaltyapi/internal/otel"
	"loyaltyapi/internal/repository/postgres"
	"loyaltyapi/internal/service"
	"loyaltyapi/internal/storage"
)

// @title Loyalty API
// @version 1.0
// @description Client lookup, CSV export and loyalty report downloads.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	reportOpts := []service.ReportOption{
		service.WithThreshold(cfg.Report.LoyaltyThreshold),
		service.WithWindowDays(cfg.Report.WindowDays),
		service.WithLogger(log.With().Str("component", "report").Logger()),
	}
	if cfg.Report.ArchiveEnabled {
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
		reportOpts = append(reportOpts, service.WithArchive(objStore, cfg.Report.ArchivePrefix))
	}

	clientSvc := service.NewClientService(
		postgres.NewDocumentTypePostgres(db),
		postgres.NewClientPostgres(db),
	)
	reportSvc := service.NewReportService(postgres.NewPurchasePostgres(db), reportOpts...)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Tracing.ServiceName,
		ErrorHandler: handlers.ErrorHandler(cfg.Messages),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,OPTIONS",
		// Browsers only expose the download filename when explicitly allowed.
		ExposeHeaders: fiber.HeaderContentDisposition,
	}))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.RequestID(log))
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Clients:  clientSvc,
		Reports:  reportSvc,
		Messages: cfg.Messages,
		Gatherer: reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Str("event", "server_started").Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
	listenErr := serve(app, ":"+cfg.Port, quit)
	if listenErr != nil {
		log.Error().Err(listenErr).Msg("http server stopped")
	} else {
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown")
	}

	log.Info().Msg("application stopped")

	if listenErr != nil {
		_ = db.Close()
		os.Exit(1)
	}
}

// serve runs the server until a signal arrives on quit or the listener fails.
// It returns nil on a signal and the listener error otherwise.
func serve(app *fiber.App, addr string, quit <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err == nil {
			return errors.New("http server exited without error")
		}
		return err
	case <-quit:
		return nil
	}
}
