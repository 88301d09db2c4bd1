// Package config provides configuration management for the gateway.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SettingsModuleEnv names the environment variable the external application
// reads to locate its settings module.
const SettingsModuleEnv = "GUARDIAN_SETTINGS_MODULE"

// DefaultSettingsModule is used when no settings module is supplied.
const DefaultSettingsModule = "guardian_eye.settings"

// Config holds all configuration values for the gateway.
type Config struct {
	// MongoDB
	MongoURI      string
	MongoDatabase string

	// PingTimeout bounds server selection during the health ping.
	// Zero leaves the driver's defaults in place.
	PingTimeout time.Duration

	// SettingsModule is the configuration-module pointer consumed by the
	// external application.
	SettingsModule string

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
//
// The settings-module variable is defaulted only when absent; a value set
// externally is never overridden.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	settings := os.Getenv(SettingsModuleEnv)
	if settings == "" {
		settings = DefaultSettingsModule
		if err := os.Setenv(SettingsModuleEnv, settings); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		// MongoDB
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "guardian_eye"),
		PingTimeout:   time.Duration(getEnvInt("MONGODB_PING_TIMEOUT_MS", 0)) * time.Millisecond,

		SettingsModule: settings,

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
