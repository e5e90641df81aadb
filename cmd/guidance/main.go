package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/guestnav/guestnav/internal/pkg/config"
	"github.com/guestnav/guestnav/internal/pkg/database"
	"github.com/guestnav/guestnav/internal/pkg/health"
	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/middleware"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	nrpkg "github.com/guestnav/guestnav/internal/pkg/newrelic"
	"github.com/guestnav/guestnav/internal/pkg/server"
	wspkg "github.com/guestnav/guestnav/internal/pkg/websocket"
	"github.com/guestnav/guestnav/services/guidance/gateway"
	"github.com/guestnav/guestnav/services/guidance/handler"
	"github.com/guestnav/guestnav/services/guidance/repository"
	"github.com/guestnav/guestnav/services/guidance/usecase"
)

func main() {
	appName := "guidance-service"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/guidance.env"))

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Postgres)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	sessionTTL := time.Duration(configs.Guidance.SessionTTLSec) * time.Second
	sessionRepo := repository.NewSessionRepository(redisClient, sessionTTL)
	venueRepo := repository.NewVenueRepository(postgresClient)

	// Initialize WebSocket manager and push gateway
	wsManager := wspkg.NewManager(configs.JWT)
	guidanceGW := gateway.NewGuidanceGW(wsManager)

	// Initialize usecase
	guidanceUC, err := usecase.NewGuidanceUC(configs, sessionRepo, venueRepo, guidanceGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize guidance orchestrator", zap.Error(err))
	}

	// Initialize handler
	guidanceHandler := handler.NewHandler(guidanceUC, natsClient, wsManager, configs)

	// Initialize NATS consumers
	if err := guidanceHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	defer guidanceHandler.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "postgres", Probe: postgresClient.GetDB().Ping},
		health.Check{Name: "redis", Probe: func() error {
			return redisClient.GetClient().Ping(context.Background()).Err()
		}},
		health.Check{Name: "nats", Probe: natsClient.Healthy},
	)

	// Register service routes
	guidanceHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}
