package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"transactionapi/internal/source"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const defaultRemoteTransactionsURL = "https://2e36b6c35bd3.ngrok-free.app/transactions"

type Config struct {
	// HTTP Server
	Port               string
	CORSAllowedOrigins []string

	// Deployment environment, decides the data source unless DataSource is set
	Environment string
	DataSource  string

	// Local dataset
	LocalDataPath string

	// Upstream transactions API
	APIBaseURL            string
	RemoteTransactionsURL string
	APIToken              string
	RemoteTimeout         time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	env := getEnv("APP_ENV", getEnv("NODE_ENV", EnvDevelopment))

	defaultLevel := "info"
	if env == EnvDevelopment {
		defaultLevel = "debug"
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3001"}),

		Environment: env,
		DataSource:  getEnv("DATA_SOURCE", ""),

		LocalDataPath: getEnv("LOCAL_DATA_PATH", "data/transactions.json"),

		APIBaseURL:            getEnv("API_BASE_URL", "http://localhost:3000"),
		RemoteTransactionsURL: getEnv("REMOTE_TRANSACTIONS_URL", defaultRemoteTransactionsURL),
		APIToken:              getEnv("API_TOKEN", ""),
		RemoteTimeout:         getEnvDuration("REMOTE_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("LOG_LEVEL", defaultLevel),
	}

	return cfg
}

// IsDevelopment reports whether the service runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// SourceMode returns the data source mode. DATA_SOURCE overrides the
// environment-derived choice.
func (c *Config) SourceMode() source.Mode {
	if c.DataSource != "" {
		return source.Mode(c.DataSource)
	}
	return source.ModeForEnvironment(c.Environment)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.Environment == "" {
		errors = append(errors, "environment cannot be empty")
	}

	// Validate data source
	mode := c.SourceMode()
	if mode != source.ModeLocal && mode != source.ModeRemote {
		errors = append(errors, fmt.Sprintf("invalid data source '%s': must be one of [local remote]", c.DataSource))
	}

	if mode == source.ModeLocal && c.LocalDataPath == "" {
		errors = append(errors, "local data path cannot be empty when using the local data source")
	}

	if mode == source.ModeRemote {
		if err := validateHTTPURL(c.RemoteTransactionsURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid remote transactions URL '%s': %v", c.RemoteTransactionsURL, err))
		}
	}

	if c.APIBaseURL != "" {
		if err := validateHTTPURL(c.APIBaseURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
		}
	}

	if c.RemoteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid remote timeout %v: must be positive", c.RemoteTimeout))
	} else if c.RemoteTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid remote timeout %v: must be at most 5 minutes", c.RemoteTimeout))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func validateHTTPURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme must be 'http' or 'https'")
	}
	if parsed.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
