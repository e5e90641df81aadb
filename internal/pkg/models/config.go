package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Venue    VenueConfig
	Position PositionConfig
	Guidance GuidanceConfig
	Ping     PingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// PostgresConfig contains database connection configuration
type PostgresConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains device channel authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// VenueConfig selects the venue profile this deployment serves
type VenueConfig struct {
	ID string
}

// PositionConfig tunes the position source
type PositionConfig struct {
	PreferIndoor        bool
	MinIntervalMs       int
	StalenessWindowSec  int
	NoFixTimeoutSec     int
	SampleTTLSec        int
	IndoorHealthWindowS int
}

// GuidanceConfig tunes guidance push behavior
type GuidanceConfig struct {
	SessionTTLSec int
}

// PingConfig tunes the ping notification channel
type PingConfig struct {
	TTLSec int
}
