package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr   string        `env:"SERVER_ADDR" envDefault:":8080"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"5m"`

	// Origins allowed to call the API from a browser
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Estimation service configuration
	EstimatorCfg EstimatorConfig `envPrefix:"GEMINI_"`

	// Session configuration
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// UTF-8 font for PDF reports. PDF export is disabled when it is missing.
	ReportFontPath string `env:"REPORT_FONT_PATH" envDefault:"ttf/DejaVuSans.ttf"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// EstimatorConfig configures the generative estimation service.
// APIKey is checked when the connector is built, not here.
type EstimatorConfig struct {
	HTTPClientConfig
	APIKey      string  `env:"API_KEY"`
	Model       string  `env:"MODEL" envDefault:"gemini-2.5-flash"`
	Temperature float32 `env:"TEMPERATURE" envDefault:"0.2"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"0s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"30s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"0s"`
}

// SessionConfig holds in-memory session store settings
type SessionConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"2h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment and validates it
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.EstimatorCfg.Temperature < 0 || cfg.EstimatorCfg.Temperature > 2 {
		errors = append(errors, fmt.Sprintf("GEMINI_TEMPERATURE must be between 0 and 2, got %v", cfg.EstimatorCfg.Temperature))
	}

	if cfg.EstimatorCfg.Model == "" {
		errors = append(errors, "GEMINI_MODEL must not be empty")
	}

	if cfg.SessionCfg.TTL <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be positive, got %s", cfg.SessionCfg.TTL))
	}

	if cfg.SessionCfg.CleanupInterval <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_CLEANUP_INTERVAL must be positive, got %s", cfg.SessionCfg.CleanupInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
