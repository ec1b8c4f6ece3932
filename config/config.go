/*
config.go - Process configuration from the environment

PURPOSE:
  Collects the knobs cmd/server needs into one struct. Values come from
  environment variables, optionally primed from a .env file in the working
  directory. Command-line flags override them in cmd/server.

VARIABLES:
  APP_ENV               development | production (log format)
  LOG_LEVEL             debug | info | warn | error
  SERVER_PORT           HTTP port (default 8080)
  DB_PATH               SQLite file, or ":memory:" (default hostelr.db)
  DB_SEED               seed sample data into an empty store (default true)
  CORS_ALLOWED_ORIGINS  comma separated origins
  REMINDER_INTERVAL     overdue scan period, Go duration (default 1h)
*/
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration.
type Config struct {
	Env      string
	Log      LogConfig
	Server   ServerConfig
	Database DatabaseConfig
	Reminder ReminderConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// DatabaseConfig holds store configuration.
type DatabaseConfig struct {
	Path string
	Seed bool
}

// ReminderConfig holds the overdue scanner configuration.
type ReminderConfig struct {
	Interval time.Duration
}

// IsProduction reports whether APP_ENV selects production logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "hostelr.db"),
			Seed: getEnvAsBool("DB_SEED", true),
		},
		Reminder: ReminderConfig{
			Interval: getEnvAsDuration("REMINDER_INTERVAL", time.Hour),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
