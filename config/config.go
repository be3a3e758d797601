package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const defaultJWTSecret = "defaultSecret"

// Config holds application configuration
type Config struct {
	Port string
	// Database
	DBDriver       string // postgres, mysql or sqlite
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	JWTKey    string
	TokenTTL  time.Duration
	SaltRound int

	CorsOrigins string
	LogLevel    string

	ReportCron     string // empty disables the scheduled report
	SendgridApiKey string
	EmailSender    string

	SetupAdminEmail    string
	SetupAdminPassword string

	// Base URL used by the CLI tools talking to a running server
	ApiURL string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig loads .env (if present), builds the configuration and stores it in AppConfig.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found. Using system environment variables.")
	}

	AppConfig = Load()

	if AppConfig.JWTKey == defaultJWTSecret {
		log.Warn().Msg("Using default JWT_SECRET. Update it in your environment.")
	}
	if AppConfig.DBDriver == "sqlite" {
		log.Warn().Str("db", AppConfig.DBName).Msg("Using SQLite database, intended for local development only.")
	}

	return AppConfig
}

// Load builds a Config from the process environment only.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "5000"),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "reachout"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		JWTKey:    getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),
		SaltRound: getEnvInt("SALT_ROUND", 12),

		CorsOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		ReportCron:     os.Getenv("REPORT_CRON"),
		SendgridApiKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@reachoutacademy.com"),

		SetupAdminEmail:    getEnv("SETUP_ADMIN_EMAIL", "admin@reachoutacademy.com"),
		SetupAdminPassword: getEnv("SETUP_ADMIN_PASSWORD", "admin123"),

		ApiURL: getEnv("API_URL", "http://localhost:5000"),
	}
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() (string, error) {
	switch c.DBDriver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
		), nil
	case "mysql":
		// parseTime is required for DATE columns to scan into time values
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
		), nil
	case "sqlite":
		return c.DBName, nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Error converting environment variable to int")
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid duration, using default")
		return defaultValue
	}
	return d
}
