package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds every setting the server resolves at startup.
type Config struct {
	Port               string        `mapstructure:"PORT"`
	Environment        string        `mapstructure:"ENVIRONMENT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	DatabasePath       string        `mapstructure:"DATABASE_PATH"`
	StaticDir          string        `mapstructure:"STATIC_DIR"`
	PublicURL          string        `mapstructure:"PUBLIC_URL"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitRequests  int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow    time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	HTTPClientTimeout  time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`

	HubSpotAccessToken string `mapstructure:"HUBSPOT_ACCESS_TOKEN"`
	HubSpotAPIURL      string `mapstructure:"HUBSPOT_API_URL"`

	HuggingFaceToken    string `mapstructure:"HUGGING_FACE_TOKEN"`
	HuggingFaceModelURL string `mapstructure:"HUGGING_FACE_MODEL_URL"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASS"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`

	DashboardUser     string `mapstructure:"DASHBOARD_USER"`
	DashboardPassword string `mapstructure:"DASHBOARD_PASS"`
}

var defaults = map[string]any{
	"PORT":                   "3000",
	"ENVIRONMENT":            "development",
	"LOG_LEVEL":              "info",
	"DATABASE_PATH":          "leads.db",
	"STATIC_DIR":             "dist",
	"PUBLIC_URL":             "http://localhost:5173",
	"CORS_ALLOWED_ORIGINS":   "*",
	"RATE_LIMIT_REQUESTS":    100,
	"RATE_LIMIT_WINDOW":      "15m",
	"HTTP_CLIENT_TIMEOUT":    "30s",
	"HUBSPOT_ACCESS_TOKEN":   "",
	"HUBSPOT_API_URL":        "https://api.hubapi.com",
	"HUGGING_FACE_TOKEN":     "",
	"HUGGING_FACE_MODEL_URL": "https://api-inference.huggingface.co/models/meta-llama/Meta-Llama-3-8B-Instruct",
	"SMTP_HOST":              "",
	"SMTP_PORT":              587,
	"SMTP_USER":              "",
	"SMTP_PASS":              "",
	"SMTP_FROM":              "",
	"STRIPE_SECRET_KEY":      "",
	"DASHBOARD_USER":         "",
	"DASHBOARD_PASS":         "",
}

// Load reads an optional .env file from path and resolves the configuration
// from the environment, falling back to defaults.
func Load(path string) (*Config, error) {
	envFile := filepath.Join(path, ".env")
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		log.Debugf("No %s file found, using process environment", envFile)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	cfg.CORSAllowedOrigins = splitList(cfg.CORSAllowedOrigins)
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var problems []string

	if c.Port == "" {
		problems = append(problems, "PORT must not be empty")
	}
	if c.DatabasePath == "" {
		problems = append(problems, "DATABASE_PATH must not be empty")
	}
	if c.RateLimitRequests <= 0 {
		problems = append(problems, "RATE_LIMIT_REQUESTS must be positive")
	}
	if c.RateLimitWindow <= 0 {
		problems = append(problems, "RATE_LIMIT_WINDOW must be positive")
	}
	if c.SMTPHost != "" && (c.SMTPPort <= 0 || c.SMTPPort > 65535) {
		problems = append(problems, "SMTP_PORT must be a valid port")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}

// IsProduction reports whether the server runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// DashboardAuthConfigured reports whether the analytics credential pair is set.
func (c *Config) DashboardAuthConfigured() bool {
	return c.DashboardUser != "" && c.DashboardPassword != ""
}

// viper splits comma separated env values only for some inputs, so normalize here.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ConfigureLogging applies the level and formatter to the standard logrus logger.
func ConfigureLogging(c *Config) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, falling back to info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
