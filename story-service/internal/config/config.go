package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"story-server/pkg/database"
	"story-server/shared/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Media backends.
const (
	MediaBackendLocal = "local"
	MediaBackendGCS   = "gcs"
)

// Config holds the Story Service settings.
type Config struct {
	// Server
	Port           string `envconfig:"STORY_SERVER_PORT" default:"8080"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding    string `envconfig:"LOG_ENCODING" default:"json"`
	LogSampling    bool   `envconfig:"LOG_SAMPLING" default:"false"`
	MaxUploadBytes int64  `envconfig:"MAX_UPLOAD_BYTES" default:"52428800"`
	AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`

	// PostgreSQL
	DBHost        string        `envconfig:"DB_HOST" required:"true"`
	DBPort        int           `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" required:"true"`
	DBName        string        `envconfig:"DB_NAME" required:"true"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int32         `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"5m"`

	// secret, no envconfig tag
	DBPassword string `ignored:"true"`

	// Redis (rate limiting). Empty addr falls back to an in-memory store.
	RedisAddr           string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword       string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB             int    `envconfig:"REDIS_DB" default:"0"`
	SocialRatePerMinute uint   `envconfig:"SOCIAL_RATE_LIMIT_PER_MINUTE" default:"60"`

	// RabbitMQ. Empty URL disables story events.
	RabbitMQURL         string `envconfig:"RABBITMQ_URL" default:""`
	StoryEventsExchange string `envconfig:"STORY_EVENTS_EXCHANGE" default:"story_events"`

	// Media
	MediaBackend  string `envconfig:"MEDIA_BACKEND" default:"local"`
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	GCSBucket     string `envconfig:"GCS_BUCKET" default:""`
	GCSPublicBase string `envconfig:"GCS_PUBLIC_BASE_URL" default:""`

	// CORS, comma separated
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Tracing
	OtelEnabled     bool    `envconfig:"OTEL_ENABLED" default:"false"`
	OtelEndpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	OtelInsecure    bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	OtelSampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1.0"`
	ServiceName     string  `envconfig:"SERVICE_NAME" default:"story-service"`

	// secret, no envconfig tag
	JWTSecret string `ignored:"true"`
}

// GetAllowedOrigins splits CORSAllowedOrigins by comma.
func (c *Config) GetAllowedOrigins() []string {
	if strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// Database returns the connection settings for pkg/database.
func (c *Config) Database() database.Config {
	return database.Config{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		DBName:          c.DBName,
		SSLMode:         c.DBSSLMode,
		MaxConns:        c.DBMaxConns,
		MaxConnIdleTime: c.DBIdleTimeout,
		ConnectAttempts: 10,
		RetryDelay:      3 * time.Second,
	}
}

// Validate checks cross-field settings envconfig cannot express.
func (c *Config) Validate() error {
	switch c.MediaBackend {
	case MediaBackendLocal:
		if c.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required for the local media backend")
		}
	case MediaBackendGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required for the gcs media backend")
		}
	default:
		return fmt.Errorf("unknown MEDIA_BACKEND %q", c.MediaBackend)
	}
	if c.OtelSampleRatio < 0 || c.OtelSampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATIO must be within [0, 1], got %v", c.OtelSampleRatio)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// LoadConfig loads an optional .env file, the environment and the secrets.
// envFilePath may be empty.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				return nil, fmt.Errorf("error loading %s: %w", envFilePath, err)
			}
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	var loadErr error
	cfg.DBPassword, loadErr = utils.ReadSecretOrEnv("db_password", "DB_PASSWORD")
	if loadErr != nil {
		return nil, loadErr
	}
	cfg.JWTSecret, loadErr = utils.ReadSecretOrEnv("jwt_secret", "JWT_SECRET")
	if loadErr != nil {
		return nil, loadErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LogSummary logs the effective settings without secrets.
func (c *Config) LogSummary(logger *zap.Logger) {
	logger.Info("Story Service configuration loaded",
		zap.String("port", c.Port),
		zap.String("logLevel", c.LogLevel),
		zap.String("db", fmt.Sprintf("postgres://%s:***@%s:%d/%s?sslmode=%s", c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)),
		zap.Int32("dbMaxConns", c.DBMaxConns),
		zap.Bool("redis", c.RedisAddr != ""),
		zap.Bool("events", c.RabbitMQURL != ""),
		zap.String("mediaBackend", c.MediaBackend),
		zap.Strings("corsOrigins", c.GetAllowedOrigins()),
		zap.Bool("otel", c.OtelEnabled),
		zap.Bool("autoMigrate", c.AutoMigrate),
	)
}
