package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/wekesa/mizigo/internal/pkg/config"
	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/health"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/server"
	"github.com/wekesa/mizigo/services/planner/gateway"
	"github.com/wekesa/mizigo/services/planner/handler"
	"github.com/wekesa/mizigo/services/planner/repository"
	"github.com/wekesa/mizigo/services/planner/usecase"
)

func main() {
	appName := "planner-service"
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

	// Initialize repository
	plannerRepo := repository.NewPlannerRepository(redisClient)

	// Initialize gateway
	plannerGW := gateway.NewPlannerGW(configs, zapLogger)

	// Initialize usecase
	plannerUC := usecase.NewPlannerUC(configs, plannerRepo, plannerGW)

	// Initialize handler
	plannerHandler := handler.NewHandler(plannerUC, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	health.RegisterHealthEndpoints(e, appName)
	plannerHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}
}
