package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

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

	// JWT configuration
	JWTSecret string

	// Migrations
	MigrationsDir string

	// CORS
	AllowedOrigins []string
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to Docker secrets in production.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getSetting("SERVER_PORT", "server_port", "8080"),
		ServerHost:    getSetting("SERVER_HOST", "server_host", "0.0.0.0"),
		DBHost:        getSetting("DB_HOST", "db_host", "localhost"),
		DBPort:        getSetting("DB_PORT", "db_port", "5432"),
		DBUser:        getSetting("DB_USER", "db_user", "postgres"),
		DBPassword:    getSetting("DB_PASSWORD", "db_password", ""),
		DBName:        getSetting("DB_NAME", "db_name", "taskbuster"),
		DBSSLMode:     getSetting("DB_SSL_MODE", "db_ssl_mode", "disable"),
		RedisHost:     getSetting("REDIS_HOST", "redis_host", "localhost"),
		RedisPort:     getSetting("REDIS_PORT", "redis_port", "6379"),
		RedisPassword: getSetting("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      getSetting("REDIS_URL", "redis_url", ""),
		JWTSecret:     getSetting("JWT_SECRET", "jwt_secret", ""),
		MigrationsDir: getSetting("MIGRATIONS_DIR", "migrations_dir", "migrations"),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getSetting reads an environment variable, then the matching Docker
// secret, then falls back to the default.
func getSetting(envVar, secretName, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if v := readSecret(secretName); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
