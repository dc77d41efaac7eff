package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Session configuration
	JWTSecret  string
	SessionTTL time.Duration
}

// LoadConfig builds a Config from the environment. In production, values
// missing from the environment fall back to Docker secrets.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:    getSetting("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getSetting("SERVER_PORT", "8080"),
		DBHost:        getSetting("DB_HOST", "localhost"),
		DBPort:        getSetting("DB_PORT", "5432"),
		DBUser:        getSetting("DB_USER", "postgres"),
		DBPassword:    getSetting("DB_PASSWORD", ""),
		DBName:        getSetting("DB_NAME", "gastronomia"),
		DBSSLMode:     getSetting("DB_SSL_MODE", "disable"),
		RedisHost:     getSetting("REDIS_HOST", "localhost"),
		RedisPort:     getSetting("REDIS_PORT", "6379"),
		RedisPassword: getSetting("REDIS_PASSWORD", ""),
		RedisURL:      getSetting("REDIS_URL", ""),
		JWTSecret:     getSetting("JWT_SECRET", ""),
	}

	if raw := getSetting("REDIS_DB", "0"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", raw, err)
		}
		cfg.RedisDB = db
	}

	ttlHours := getSetting("SESSION_TTL_HOURS", "24")
	hours, err := strconv.Atoi(ttlHours)
	if err != nil || hours <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS value %q", ttlHours)
	}
	cfg.SessionTTL = time.Duration(hours) * time.Hour

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getSetting reads an environment variable, then the matching Docker secret
// in production, then the default.
func getSetting(name, fallback string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	if IsProduction() {
		if val := readSecret(strings.ToLower(name)); val != "" {
			return val
		}
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
