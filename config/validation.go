package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the settings the service cannot run without
// are present. The JWT secret may only be defaulted outside production.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}
	if cfg.JWTSecret == "" {
		if IsProduction() {
			errors = append(errors, "jwt_secret is required in production")
		} else {
			cfg.JWTSecret = "insecure-dev-secret"
		}
	}
	if IsProduction() && cfg.DBPassword == "" {
		errors = append(errors, "db_password is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
