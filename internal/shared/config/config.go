package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Refresh token store backends
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	AllowedOrigins []string

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// JWT configuration
	JWT JWTConfig

	// Audit event publishing
	Kafka KafkaConfig

	// Logging
	LogLevel string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	DSN          string
	MaxIdleConns int
	MaxOpenConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// JWTConfig holds token configuration. Access and refresh tokens are signed
// with distinct secrets.
type JWTConfig struct {
	Secret           string
	RefreshSecret    string
	JWTExpiresIn     time.Duration
	RefreshExpiresIn time.Duration
	Issuer           string
	RefreshStore     string
}

// KafkaConfig holds the audit producer and consumer configuration. An empty
// broker list disables publishing.
type KafkaConfig struct {
	Brokers       []string
	AuditTopic    string
	RetryMax      int
	ConsumerGroup string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB
		AllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{}),

		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "triply_db"),
			User:         getEnv("DB_USER", "triply_user"),
			Password:     getEnv("DB_PASSWORD", "triply_password"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 100),
		},

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		// Secrets have no defaults; Validate rejects a config without them.
		JWT: JWTConfig{
			Secret:           getEnv("JWT_SECRET", ""),
			RefreshSecret:    getEnv("JWT_REFRESH_SECRET", ""),
			JWTExpiresIn:     getDurationEnv("JWT_EXPIRES_IN", time.Hour),
			RefreshExpiresIn: getDurationEnv("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
			Issuer:           getEnv("JWT_ISSUER", "triply"),
			RefreshStore:     strings.ToLower(getEnv("REFRESH_TOKEN_STORE", StorePostgres)),
		},

		Kafka: KafkaConfig{
			Brokers:       getStringSliceEnv("KAFKA_BROKERS", []string{}),
			AuditTopic:    getEnv("KAFKA_AUDIT_TOPIC", "triply-audit"),
			RetryMax:      getIntEnv("KAFKA_RETRY_MAX", 3),
			ConsumerGroup: getEnv("KAFKA_AUDIT_GROUP", "triply-audit-log"),
		},

		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// Validate reports configuration that must stop the server from starting.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" || c.JWT.RefreshSecret == "" {
		return errors.New("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	}
	if c.JWT.Secret == c.JWT.RefreshSecret {
		return errors.New("JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.JWT.RefreshStore != StorePostgres && c.JWT.RefreshStore != StoreRedis {
		return errors.New("REFRESH_TOKEN_STORE must be either 'postgres' or 'redis'")
	}
	return nil
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv accepts Go durations ("1h") or plain seconds ("3600").
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}
