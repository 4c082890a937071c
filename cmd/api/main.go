package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	accessHttp "game-analytics-service/internal/access/adapters/http/fiber"
	accessUsecase "game-analytics-service/internal/access/core/usecase"

	dashboardsCache "game-analytics-service/internal/dashboards/adapters/cache"
	dashboardsHttp "game-analytics-service/internal/dashboards/adapters/http/fiber"
	"game-analytics-service/internal/dashboards/core/domain"
	dashboardsUsecase "game-analytics-service/internal/dashboards/core/usecase"

	eventsHttp "game-analytics-service/internal/events/adapters/http/fiber"
	eventsSink "game-analytics-service/internal/events/adapters/logsink"
	eventsUsecase "game-analytics-service/internal/events/core/usecase"

	"game-analytics-service/internal/config"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/logging"
	"game-analytics-service/internal/metrics"

	_ "game-analytics-service/docs"
)

// @title Game Analytics Service API
// @version 1.0
// @description Chart-ready dashboards over the game analytics backend, admin access and event logging.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	// Analytics backend client
	client, err := datasource.New(cfg.Backend)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to create backend client")
	}

	// Event output
	eventOut, err := eventsSink.Open(cfg.Ingest.Output)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to open event output")
	}
	defer eventOut.Close()

	// Usecases
	filterOptionsUC := dashboardsUsecase.NewFilterOptionsUseCase(
		client,
		dashboardsCache.NewOptionCache(cfg.Cache.OptionsSize, cfg.Cache.OptionsTTL),
	)
	lister := dashboardsUsecase.WithOptionLister(filterOptionsUC)
	getDashboardUC := dashboardsUsecase.NewGetDashboardUseCase(map[string]dashboardsUsecase.Builder{
		domain.InApp:       dashboardsUsecase.NewInAppUseCase(client, lister),
		domain.RewardedAds: dashboardsUsecase.NewRewardedAdsUseCase(client, lister),
		domain.Gameplay:    dashboardsUsecase.NewGameplayUseCase(client, lister),
		domain.Resources:   dashboardsUsecase.NewResourcesUseCase(client, lister),
	})

	storeEventUC := eventsUsecase.NewStoreEventUseCase(
		eventsSink.New(eventOut, cfg.Ingest.DedupeSize, cfg.Ingest.DedupeWindow),
		eventsUsecase.WithMaxBulk(cfg.Ingest.MaxBulk),
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "game-analytics-service",
		ReadTimeout:           cfg.Server.ReadTimeout,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})
	app.Use(logging.Middleware())
	app.Use(metrics.Middleware())

	api := app.Group("/api")

	// dashboard endpoints
	dashboardsHttp.NewDashboardHandler(getDashboardUC, filterOptionsUC).Register(api)

	// admin endpoints
	accessHttp.NewAccessHandler(
		accessUsecase.NewListAccessUseCase(client),
		accessUsecase.NewSaveAccessUseCase(client),
		accessUsecase.NewCreateUserUseCase(client),
	).Register(api)

	// event log endpoints
	eventsHttp.NewEventHandler(storeEventUC).Register(app, cfg.Ingest.Header, cfg.Ingest.APIKey)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/prometheus", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			logging.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logging.Info().Str("addr", cfg.Server.Addr()).Str("backend", cfg.Backend.BaseURL).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logging.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error().Err(err).Msg("fiber shutdown error")
	}

	logging.Info().Msg("server exiting")
}
