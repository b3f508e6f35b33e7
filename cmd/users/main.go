package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/config"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/database"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/health"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/middleware"
	nrpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/newrelic"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/server"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users/handler"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users/repository"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users/usecase"
)

func main() {
	appName := "users-service"
	configPath := "config/users.env"
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

	// Initialize repositories
	userRepo := repository.NewUserRepository(configs, postgresClient.GetDB())
	socialRepo := repository.NewSocialRepository(postgresClient.GetDB())
	deviceRepo := repository.NewDeviceRepository(redisClient)

	// Initialize usecase
	userUC, err := usecase.NewUserUC(configs, userRepo, socialRepo, deviceRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize user use case", logger.Err(err))
	}

	// Initialize handlers
	userHandler := handler.NewHandler(userUC, configs, redisClient)

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
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/ping", health.NewPingHandler(appName))

	// Register service routes
	userHandler.RegisterRoutes(e)

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
