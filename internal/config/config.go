// Package config loads server settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/splitz/ledger/internal/calculator"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBPath string

	// Logging
	LogLevel  string
	LogFormat string

	// Auth; an empty JWTIssuer accepts any iss claim
	JWTSecret string
	JWTIssuer string
	JWTLeeway time.Duration

	// AMQP; events are dropped when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string

	// Cross-group balances
	BalanceFetchConcurrency int
	MissingGroupPolicy      string

	ShutdownTimeout time.Duration
}

// Load reads .env from the working directory if present, then the
// environment. Variables already set in the environment win over .env.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "./data/ledger.db"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", ""),
		JWTLeeway: getEnvDuration("JWT_LEEWAY", 30*time.Second),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "splitz.ledger"),

		BalanceFetchConcurrency: getEnvInt("BALANCE_FETCH_CONCURRENCY", calculator.DefaultFetchConcurrency),
		MissingGroupPolicy:      getEnv("MISSING_GROUP_POLICY", "skip"),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate validates the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if c.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 16 {
		errors = append(errors, "JWT_SECRET must be at least 16 characters")
	}
	if c.JWTLeeway < 0 || c.JWTLeeway > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid JWT leeway %v: must be between 0 and 5m", c.JWTLeeway))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if c.BalanceFetchConcurrency < 1 || c.BalanceFetchConcurrency > 64 {
		errors = append(errors, fmt.Sprintf("invalid balance fetch concurrency %d: must be between 1 and 64", c.BalanceFetchConcurrency))
	}
	if _, err := c.GroupPolicy(); err != nil {
		errors = append(errors, err.Error())
	}

	if c.ShutdownTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// GroupPolicy maps MISSING_GROUP_POLICY onto the calculator policy.
func (c *Config) GroupPolicy() (calculator.MissingGroupPolicy, error) {
	switch strings.ToLower(c.MissingGroupPolicy) {
	case "skip", "":
		return calculator.SkipMissingGroups, nil
	case "fail":
		return calculator.FailOnMissingGroup, nil
	default:
		return 0, fmt.Errorf("invalid missing group policy '%s': must be skip or fail", c.MissingGroupPolicy)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
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
