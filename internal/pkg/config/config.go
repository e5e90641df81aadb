package config

import (
	"log"
	"os"
	"strconv"

	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads configuration from the environment. For local runs the
// env file at configPath is loaded first; in other environments the process
// environment is expected to be fully populated.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" && configPath != "" {
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

	// Postgres config
	configs.Postgres.Host = GetEnv("DB_HOST", "")
	configs.Postgres.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Postgres.Username = GetEnv("DB_USERNAME", "")
	configs.Postgres.Password = GetEnv("DB_PASSWORD", "")
	configs.Postgres.Database = GetEnv("DB_DATABASE", "")
	configs.Postgres.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Postgres.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Postgres.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config (device channel auth)
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/guestnav.log")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Venue config
	configs.Venue.ID = GetEnv("VENUE_ID", "")

	// Position source config
	configs.Position.PreferIndoor = GetEnvAsBool("POSITION_PREFER_INDOOR", true)
	configs.Position.MinIntervalMs = GetEnvAsInt("POSITION_MIN_INTERVAL_MS", 1000)
	configs.Position.StalenessWindowSec = GetEnvAsInt("POSITION_STALENESS_WINDOW_SEC", 10)
	configs.Position.NoFixTimeoutSec = GetEnvAsInt("POSITION_NO_FIX_TIMEOUT_SEC", 15)
	configs.Position.SampleTTLSec = GetEnvAsInt("POSITION_SAMPLE_TTL_SEC", 3600)
	configs.Position.IndoorHealthWindowS = GetEnvAsInt("POSITION_INDOOR_HEALTH_WINDOW_SEC", 10)

	// Guidance config
	configs.Guidance.SessionTTLSec = GetEnvAsInt("GUIDANCE_SESSION_TTL_SEC", 7200)

	// Ping channel config
	configs.Ping.TTLSec = GetEnvAsInt("PING_TTL_SEC", 30)

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

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
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
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
