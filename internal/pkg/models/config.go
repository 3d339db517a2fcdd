package models

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Services ServicesConfig
	Tracking TrackingConfig
	Planner  PlannerConfig
	Logger   LoggerConfig
	APIKey   APIKeyConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// ServicesConfig holds URLs of external collaborators
type ServicesConfig struct {
	BookingsAPIURL string
	RoutingAPIURL  string
}

// TrackingConfig holds tracking session tuning.
// DeviationThresholdKm is externally configurable on purpose: degree-based
// distance varies with latitude, so the right value is deployment-specific.
type TrackingConfig struct {
	IntervalSec          int
	FetchTimeoutSec      int
	DeviationThresholdKm float64
	AlertHistoryLimit    int
	PlaceCacheSize       int
	DegradedAfter        int
}

// PlannerConfig holds consolidation planner tuning
type PlannerConfig struct {
	AvgSpeedKmh      float64
	MaxDetourKm      float64
	AcceptTimeoutSec int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// APIKeyConfig holds keys accepted on internal routes
type APIKeyConfig struct {
	TrackingKey string
	PlannerKey  string
}
