package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/wekesa/mizigo/internal/pkg/models"
)

// InitConfig loads configuration from a .env file (local only) and the
// environment.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// External services
	configs.Services.BookingsAPIURL = GetEnv("BOOKINGS_API_URL", "http://localhost:9990")
	configs.Services.RoutingAPIURL = GetEnv("ROUTING_API_URL", "http://localhost:9991")

	// Tracking config
	configs.Tracking.IntervalSec = GetEnvAsInt("TRACKING_INTERVAL_SEC", 30)
	configs.Tracking.FetchTimeoutSec = GetEnvAsInt("TRACKING_FETCH_TIMEOUT_SEC", 10)
	configs.Tracking.DeviationThresholdKm = GetEnvAsFloat("TRACKING_DEVIATION_THRESHOLD_KM", 1.0)
	configs.Tracking.AlertHistoryLimit = GetEnvAsInt("TRACKING_ALERT_HISTORY_LIMIT", 50)
	configs.Tracking.PlaceCacheSize = GetEnvAsInt("TRACKING_PLACE_CACHE_SIZE", 256)
	configs.Tracking.DegradedAfter = GetEnvAsInt("TRACKING_DEGRADED_AFTER", 3)

	// Planner config
	configs.Planner.AvgSpeedKmh = GetEnvAsFloat("PLANNER_AVG_SPEED_KMH", 60.0)
	configs.Planner.MaxDetourKm = GetEnvAsFloat("PLANNER_MAX_DETOUR_KM", 50.0)
	configs.Planner.AcceptTimeoutSec = GetEnvAsInt("PLANNER_ACCEPT_TIMEOUT_SEC", 10)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// API keys for internal routes
	configs.APIKey.TrackingKey = GetEnv("API_KEY_TRACKING", "")
	configs.APIKey.PlannerKey = GetEnv("API_KEY_PLANNER", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}
