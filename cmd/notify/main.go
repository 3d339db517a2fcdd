package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/wekesa/mizigo/internal/pkg/config"
	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/health"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	natspkg "github.com/wekesa/mizigo/internal/pkg/nats"
	"github.com/wekesa/mizigo/internal/pkg/server"
	"github.com/wekesa/mizigo/services/notify/gateway"
	"github.com/wekesa/mizigo/services/notify/handler"
	"github.com/wekesa/mizigo/services/notify/repository"
	"github.com/wekesa/mizigo/services/notify/usecase"
)

func main() {
	appName := "notify-service"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Postgres client (dispatch audit log)
	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer pgClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	notifyRepo := repository.NewNotifyRepository(pgClient)

	// Initialize gateway
	notifyGW := gateway.NewNotifyGW(natsClient)

	// Initialize usecase
	notifyUC := usecase.NewNotifyUC(notifyRepo, notifyGW)

	// Initialize NATS consumers
	notifyHandler := handler.NewNATSHandler(notifyUC, natsClient)
	if err := notifyHandler.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router (health endpoints only; dispatch is event driven)
	e := echo.New()
	e.HideBanner = true

	health.RegisterHealthEndpoints(e, appName)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}
}
