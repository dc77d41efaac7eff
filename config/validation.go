package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and test tolerate missing credentials;
// production does not.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "ServerPort", Message: "server port is required"}
	}
	if cfg.DBHost == "" || cfg.DBName == "" {
		return ValidationError{Field: "Database", Message: "database host and name are required"}
	}

	if !IsProduction() {
		return nil
	}

	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWTSecret", Message: "JWT_SECRET is required in production"}
	}
	if cfg.DBPassword == "" {
		return ValidationError{Field: "DBPassword", Message: "DB_PASSWORD is required in production"}
	}
	return nil
}
