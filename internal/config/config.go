package config

import (
	"fmt"
	"time"

	apperrors "workforce-scheduler-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration: tokens are issued by the external identity
	// provider, this service only verifies them
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Scheduling engine configuration
	MaterializationTime        string `mapstructure:"MATERIALIZATION_TIME"`         // "HH:MM", store-local
	MaterializationHorizonDays int    `mapstructure:"MATERIALIZATION_HORIZON_DAYS"` // dates generated per daily pass
	EvaluationIntervalSeconds  int    `mapstructure:"EVALUATION_INTERVAL_SECONDS"`
	GraceMinutes               int    `mapstructure:"GRACE_MINUTES"`
	EscalationMinutes          int    `mapstructure:"ESCALATION_MINUTES"`
	StoreHoursFile             string `mapstructure:"STORE_HOURS_FILE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "workforce_scheduler")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Scheduling engine defaults
	viper.SetDefault("MATERIALIZATION_TIME", "04:00")
	viper.SetDefault("MATERIALIZATION_HORIZON_DAYS", 1)
	viper.SetDefault("EVALUATION_INTERVAL_SECONDS", 300)
	viper.SetDefault("GRACE_MINUTES", 15)
	viper.SetDefault("ESCALATION_MINUTES", 60)
	viper.SetDefault("STORE_HOURS_FILE", "config/store_hours.yaml")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return apperrors.NewConfigurationError("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return apperrors.NewConfigurationError("database name is required")
	}

	if _, err := time.Parse("15:04", config.MaterializationTime); err != nil {
		return apperrors.NewConfigurationError("MATERIALIZATION_TIME must be HH:MM")
	}

	if config.MaterializationHorizonDays < 1 {
		return apperrors.NewConfigurationError("MATERIALIZATION_HORIZON_DAYS must be at least 1")
	}

	if config.EvaluationIntervalSeconds < 1 {
		return apperrors.NewConfigurationError("EVALUATION_INTERVAL_SECONDS must be positive")
	}

	if config.GraceMinutes < 0 || config.EscalationMinutes < 0 {
		return apperrors.NewConfigurationError("grace and escalation minutes must not be negative")
	}

	if config.EscalationMinutes <= config.GraceMinutes {
		return apperrors.NewConfigurationError("ESCALATION_MINUTES must be larger than GRACE_MINUTES")
	}

	return nil
}

// EvaluationInterval returns the delay-evaluation polling interval
func (c *Config) EvaluationInterval() time.Duration {
	return time.Duration(c.EvaluationIntervalSeconds) * time.Second
}

// GracePeriod returns the lateness grace period
func (c *Config) GracePeriod() time.Duration {
	return time.Duration(c.GraceMinutes) * time.Minute
}

// EscalationPeriod returns the lateness escalation threshold
func (c *Config) EscalationPeriod() time.Duration {
	return time.Duration(c.EscalationMinutes) * time.Minute
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
