package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/wekesa/mizigo/internal/pkg/cache"
	"github.com/wekesa/mizigo/internal/pkg/config"
	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/health"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	natspkg "github.com/wekesa/mizigo/internal/pkg/nats"
	"github.com/wekesa/mizigo/internal/pkg/server"
	"github.com/wekesa/mizigo/services/tracking/gateway"
	"github.com/wekesa/mizigo/services/tracking/handler"
	"github.com/wekesa/mizigo/services/tracking/repository"
	"github.com/wekesa/mizigo/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize place name cache
	places, err := cache.NewPlaceCache(configs.Tracking.PlaceCacheSize)
	if err != nil {
		logger.Fatal("Failed to initialize place cache", logger.Err(err))
	}

	// Initialize repository
	trackingRepo := repository.NewTrackingRepository(redisClient)

	// Initialize gateway
	trackingGW := gateway.NewTrackingGW(configs, natsClient, zapLogger)

	// Initialize usecase
	detector := usecase.NewDeviationDetector(configs.Tracking.DeviationThresholdKm)
	aggregator := usecase.NewAlertAggregator(
		configs.Tracking.DeviationThresholdKm,
		configs.Tracking.AlertHistoryLimit,
		trackingGW,
		places,
	)
	trackingUC := usecase.NewTrackingUC(configs, trackingRepo, trackingGW, detector, aggregator)

	// Initialize handler
	trackingHandler := handler.NewHandler(trackingUC, natsClient, configs)

	// Initialize NATS consumers
	if err := trackingHandler.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	health.RegisterHealthEndpoints(e, appName)
	trackingHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}
}
