package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pringles-wms/pkg/database"

	"github.com/joho/godotenv"
)

// Config is the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Timezone string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	URL      string
	LogLevel string
}

type LogConfig struct {
	Level string
}

// Load reads environment variables, optionally from envFile or a .env in the working directory.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// a missing .env is fine, the process environment is used as is
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "3000"),
		},
		Database: DatabaseConfig{
			Driver:   getenvWithDefault("DB_DRIVER", database.DriverSQLite),
			Path:     getenvWithDefault("DB_PATH", "pringles_wms.db"),
			URL:      os.Getenv("DATABASE_URL"),
			LogLevel: getenvWithDefault("DB_LOG_LEVEL", "warn"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Timezone: getenvWithDefault("APP_TIMEZONE", "Europe/Berlin"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration can be used to start the application.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("APP_PORT must not be empty")
	}

	switch c.Database.Driver {
	case database.DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DB_PATH must be provided for the sqlite driver")
		}
	case database.DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("DATABASE_URL must be provided for the postgres driver")
		}
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported", c.Database.Driver)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured time zone. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseOptions converts the database section for database.Connect.
func (c *Config) DatabaseOptions() database.Options {
	return database.Options{
		Driver:   c.Database.Driver,
		Path:     c.Database.Path,
		DSN:      c.Database.URL,
		LogLevel: c.Database.LogLevel,
	}
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
