package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/config"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/database"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/health"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/metrics"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/middleware"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/nats"
	nrpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/newrelic"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/server"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/gateway"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/handler"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/repository"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Register Prometheus metrics
	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	// Initialize repositories
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	refRepo := repository.NewUserRefRepository(postgresClient.GetDB())
	geoRepo := repository.NewGeoRepository(redisClient)

	// Initialize gateway
	ridesGW := gateway.NewRideGW(natsClient)

	// Initialize usecase
	rideUC, err := usecase.NewRideUC(configs, rideRepo, refRepo, geoRepo, ridesGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}

	// Schedule the lifecycle migrator
	migrator := usecase.NewMigrator(configs, rideRepo, refRepo, geoRepo)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(configs.Migrator.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := migrator.Run(ctx); err != nil {
			logger.Error("Migration run failed", logger.Err(err))
		}
	}); err != nil {
		zapLogger.Fatal("Failed to schedule migrator", logger.Err(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("Lifecycle migrator scheduled",
		logger.String("cron", configs.Migrator.CronSpec),
		logger.Int("batch_size", configs.Migrator.BatchSize))

	// Initialize handlers
	rideHandler := handler.NewHandler(rideUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize health service
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/ping", health.NewPingHandler(appName))

	// Expose Prometheus metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register service routes
	rideHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	// Shutdown New Relic
	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
