package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs []string

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "is required for postgres"}.Error())
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "is required for postgres"}.Error())
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "is required for sqlite"}.Error())
		}
		if cfg.Env == Production {
			errs = append(errs, ValidationError{"DB_DRIVER", "sqlite is not supported in production"}.Error())
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unknown driver %q", cfg.DBDriver)}.Error())
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{"JWT_SECRET", "is required"}.Error())
	}
	if cfg.TokenTTL <= 0 {
		errs = append(errs, ValidationError{"TOKEN_TTL", "must be positive"}.Error())
	}
	if len(cfg.CORSOrigins) == 0 {
		errs = append(errs, ValidationError{"CORS_ORIGINS", "must list at least one origin"}.Error())
	}
	if cfg.ToggleRateLimit < 0 {
		errs = append(errs, ValidationError{"TOGGLE_RATE_LIMIT", "must not be negative"}.Error())
	}

	// In production, sensitive values must come from secrets or the environment
	if cfg.Env == Production {
		if cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"db_password", "secret is required"}.Error())
		}
		if cfg.JWTSecret == DevJWTSecret {
			errs = append(errs, ValidationError{"jwt_secret", "must not use the development secret"}.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
