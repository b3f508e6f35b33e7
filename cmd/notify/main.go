package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/database"
	httppkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/http"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	nsqpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/nsq"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify/gateway"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify/handler"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify/repository"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify/usecase"
)

func init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
	}
}

func loadConfig() *models.Config {
	cfg := &models.Config{}

	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.Host = viper.GetString("database.host")
	cfg.Database.Port = viper.GetInt("database.port")
	cfg.Database.Username = viper.GetString("database.username")
	cfg.Database.Password = viper.GetString("database.password")
	cfg.Database.Database = viper.GetString("database.database")
	cfg.Database.SSLMode = viper.GetString("database.ssl_mode")

	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.NATS.URL = viper.GetString("nats.url")
	cfg.NSQ.Address = viper.GetString("nsq.address")
	cfg.NSQ.LookupdAddress = viper.GetString("nsq.lookupd_address")

	cfg.FCM.Endpoint = viper.GetString("fcm.endpoint")
	cfg.FCM.ServerKey = viper.GetString("fcm.server_key")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.Type = viper.GetString("logger.type")

	return cfg
}

func main() {
	cfg := loadConfig()

	appLogger, err := logger.InitAppLoggerFromConfig(cfg, nil)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer appLogger.Close()

	// Initialize PostgreSQL for follower lookups
	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis for device token lookups
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NSQ producer for the push queue
	producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create NSQ producer")
	}
	defer producer.Stop()

	// Wire the notify pipeline
	recipientRepo := repository.NewRecipientRepository(postgresClient.GetDB(), redisClient)
	pushQueue := gateway.NewPushGW(producer)
	fcmClient := httppkg.NewEnhancedClient(logger.GetGlobalLogger(), 10*time.Second)
	pushSender := gateway.NewFCMGW(cfg, fcmClient)

	notifyUC, err := usecase.NewNotifyUC(cfg, recipientRepo, pushQueue, pushSender)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize notify use case")
	}

	consumers := handler.NewHandler(cfg, notifyUC)
	if err := consumers.Start(); err != nil {
		appLogger.WithError(err).Fatal("Failed to start consumers")
	}
	defer consumers.Stop()

	// Minimal REST surface for probes
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := viper.GetString("server.address")
		appLogger.WithFields(map[string]interface{}{"address": addr}).Info("Starting REST server")
		if err := router.Run(addr); err != nil {
			appLogger.WithError(err).Fatal("REST server stopped")
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down gracefully...")
}
