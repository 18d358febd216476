package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string
	LogJSON  bool

	Database DatabaseConfig

	JWTSecretKey      string
	JWTExpirationTime time.Duration

	RedisURL          string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxRequestBytes   int64

	CORSAllowedOrigins []string

	AnalyticsMaxDays int
}

// Load reads .env (outside tests) and the process environment.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "test" {
		// a missing .env is fine; the environment may already be populated
		_ = godotenv.Load()
	}

	cfg := &Config{
		Env:      getEnvAsString("GO_ENV", "development"),
		Port:     getEnvAsString("PORT", "8080"),
		LogLevel: getEnvAsString("LOG_LEVEL", "info"),
		LogJSON:  getEnvAsBool("LOG_JSON", false),

		Database: LoadDatabaseConfig(),

		JWTSecretKey:      os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationTime: time.Duration(getEnvAsInt64("JWT_EXPIRATION_TIME", 3600)) * time.Second,

		RedisURL:          os.Getenv("REDIS_URL"),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		MaxRequestBytes:   getEnvAsInt64("MAX_REQUEST_BYTES", 1<<20),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),

		AnalyticsMaxDays: getEnvAsInt("ANALYTICS_MAX_DAYS", 365),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is not set"))
	}
	if c.JWTExpirationTime <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION_TIME must be positive"))
	}
	if c.Database.URI == "" {
		errs = append(errs, errors.New("MONGO_URI is not set"))
	}
	if c.AnalyticsMaxDays < 0 {
		errs = append(errs, errors.New("ANALYTICS_MAX_DAYS cannot be negative"))
	}
	return errors.Join(errs...)
}
