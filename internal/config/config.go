package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Twilio   TwilioConfig
	Holiday  HolidayServiceConfig
	Job      JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	Currency    string // default order currency
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

// SMTPConfig configures the email transport. When User or Pass is empty the
// email channel is disabled: the dispatcher reports "Email service not configured"
// instead of failing startup.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// TwilioConfig configures the single messaging client used for both SMS and
// WhatsApp. Any empty credential disables both channels gracefully.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	APIBaseURL string
}

// HolidayServiceConfig points at the remote holiday service. When the service
// is down or returns nothing, the delivery engine falls back to a generated set.
type HolidayServiceConfig struct {
	BaseURL        string
	TimeoutSeconds int
	CacheTTLHours  int
}

type JobConfig struct {
	RetryFailedLimit  int // notifications retried per run
	CartRetentionDays int // stale carts older than this get cleared
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Florist API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Currency:    getEnv("APP_CURRENCY", "INR"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "florist"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry:  getEnvInt("JWT_ACCESS_EXPIRY", 15),
			RefreshTokenExpiry: getEnvInt("JWT_REFRESH_EXPIRY", 72),
		},
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port: getEnvInt("SMTP_PORT", 587),
			User: getEnv("SMTP_USER", ""),
			Pass: getEnv("SMTP_PASS", ""),
			From: getEnv("SMTP_FROM", "orders@springblossoms.in"),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
			APIBaseURL: getEnv("TWILIO_API_URL", "https://api.twilio.com"),
		},
		Holiday: HolidayServiceConfig{
			BaseURL:        getEnv("HOLIDAY_SERVICE_URL", "http://localhost:8081"),
			TimeoutSeconds: getEnvInt("HOLIDAY_SERVICE_TIMEOUT", 10),
			CacheTTLHours:  getEnvInt("HOLIDAY_CACHE_TTL_HOURS", 24),
		},
		Job: JobConfig{
			RetryFailedLimit:  getEnvInt("JOB_RETRY_FAILED_LIMIT", 100),
			CartRetentionDays: getEnvInt("JOB_CART_RETENTION_DAYS", 30),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical config. Notification credentials are deliberately
// NOT required: a missing group disables that channel instead of blocking startup.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.SMTP.User == "" || c.SMTP.Pass == "" {
			fmt.Println("WARNING: SMTP credentials not set - order confirmation emails will not be sent")
		}
		if c.Twilio.AccountSID == "" {
			fmt.Println("WARNING: Twilio credentials not set - SMS/WhatsApp notifications will not be sent")
		}
	}

	return nil
}

// EmailConfigured reports whether the email channel has credentials
func (c *SMTPConfig) EmailConfigured() bool {
	return c.User != "" && c.Pass != ""
}

// MessagingConfigured reports whether the SMS/WhatsApp channel has credentials
func (c *TwilioConfig) MessagingConfigured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
