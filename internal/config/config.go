package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"FRONTEND_URL"`
		TrustedProxies []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`
		BodyLimitMB    int      `yaml:"body_limit_mb" env:"SERVER_BODY_LIMIT_MB"`
	} `yaml:"server"`

	Database struct {
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Name           string `yaml:"name" env:"MONGODB_DATABASE"`
		MaxPoolSize    int    `yaml:"max_pool_size" env:"MONGODB_MAX_POOL_SIZE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		Expiration string `yaml:"expiration" env:"JWT_EXPIRATION"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	RateLimit struct {
		GeneralRequests int    `yaml:"general_requests" env:"RATE_LIMIT_GENERAL_REQUESTS"`
		GeneralWindow   string `yaml:"general_window" env:"RATE_LIMIT_GENERAL_WINDOW"`
		InquiryRequests int    `yaml:"inquiry_requests" env:"RATE_LIMIT_INQUIRY_REQUESTS"`
		InquiryWindow   string `yaml:"inquiry_window" env:"RATE_LIMIT_INQUIRY_WINDOW"`
	} `yaml:"rate_limit"`

	SMTP struct {
		Host        string `yaml:"host" env:"SMTP_HOST"`
		Port        int    `yaml:"port" env:"SMTP_PORT"`
		Username    string `yaml:"username" env:"SMTP_USERNAME"`
		Password    string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName    string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail   string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		NotifyEmail string `yaml:"notify_email" env:"NOTIFY_EMAIL"`
	} `yaml:"smtp"`

	Seed struct {
		AdminName     string `yaml:"admin_name" env:"SEED_ADMIN_NAME"`
		AdminEmail    string `yaml:"admin_email" env:"SEED_ADMIN_EMAIL"`
		AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
		SampleData    bool   `yaml:"sample_data" env:"SEED_SAMPLE_DATA"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory, if present, is loaded into the
// process environment first so it takes part in the override step.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	config.Server.BodyLimitMB = 10

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "organic_classes"
	config.Database.MaxPoolSize = 20
	config.Database.ConnectTimeout = "10s"

	config.JWT.Expiration = "168h"
	config.JWT.Issuer = "organicclasses.com"

	config.RateLimit.GeneralRequests = 100
	config.RateLimit.GeneralWindow = "15m"
	config.RateLimit.InquiryRequests = 5
	config.RateLimit.InquiryWindow = "1h"

	config.SMTP.Port = 587
	config.SMTP.FromName = "Organic Classes"

	config.Seed.AdminName = "Admin User"
	config.Seed.AdminEmail = "admin@organicclasses.com"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return fmt.Errorf("database uri is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	durations := map[string]string{
		"JWT expiration":            config.JWT.Expiration,
		"database connect timeout":  config.Database.ConnectTimeout,
		"general rate limit window": config.RateLimit.GeneralWindow,
		"inquiry rate limit window": config.RateLimit.InquiryWindow,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.RateLimit.GeneralRequests <= 0 || config.RateLimit.InquiryRequests <= 0 {
		return fmt.Errorf("rate limit request counts must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
