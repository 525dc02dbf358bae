// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config loads process-wide settings from the environment.

It is read exactly once at startup with 'caarlos0/env' and the resulting
[*Config] is handed to constructors. Nothing else in the module reads the
environment, so the signing secret and cookie flags are fixed for the lifetime
of the process and tests inject their own values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MinSecretLength is the shortest accepted HS256 signing secret, in bytes.
const MinSecretLength = 32

// # Configuration Schema

// Config holds all runtime configuration for the Ecclesia API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL   string `env:"DATABASE_URL,required"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Optional: rate limiting falls back to in-process buckets.
	RedisURL string `env:"REDIS_URL"`

	// Token signing
	JWTSecret string `env:"JWT_SECRET,required"`

	// CookieSecureOverride forces the auth cookie's Secure attribute when set.
	CookieSecureOverride *bool `env:"COOKIE_SECURE"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Proxies whose X-Real-IP / X-Forwarded-For headers are believed (CIDR or address)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Rate limiting (per client, per minute)
	RateLimitRequests int `env:"RATE_LIMIT_REQUESTS" envDefault:"300"`
	RateLimitBurst    int `env:"RATE_LIMIT_BURST"    envDefault:"60"`

	// SubmissionRateLimit caps anonymous form posts (prayer requests) per client per minute.
	SubmissionRateLimit int `env:"SUBMISSION_RATE_LIMIT" envDefault:"5"`

	// First administrator, created at startup when the email is not registered.
	AdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminName     string `env:"BOOTSTRAP_ADMIN_NAME" envDefault:"Administrator"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`

	// Observability
	MetricsEnabled bool    `env:"METRICS_ENABLED"  envDefault:"true"`
	OtelEnabled    bool    `env:"OTEL_ENABLED"     envDefault:"false"`
	OtelEndpoint   string  `env:"OTEL_ENDPOINT"`
	OtelInsecure   bool    `env:"OTEL_INSECURE"    envDefault:"true"`
	OtelSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"0.1"`
}

// # Configuration Loading

// Load parses environment variables into a validated [Config].
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate enforces cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", MinSecretLength)
	}

	if c.RateLimitRequests <= 0 || c.RateLimitBurst <= 0 || c.SubmissionRateLimit <= 0 {
		return errors.New("RATE_LIMIT_REQUESTS, RATE_LIMIT_BURST and SUBMISSION_RATE_LIMIT must be positive")
	}

	if c.AdminEmail != "" && c.AdminPassword == "" {
		return errors.New("BOOTSTRAP_ADMIN_PASSWORD is required when BOOTSTRAP_ADMIN_EMAIL is set")
	}

	if c.IsProduction() {
		if c.OtelEnabled && c.OtelInsecure {
			return errors.New("OTEL_INSECURE must be false in production")
		}
		if !c.CookieSecure() {
			return errors.New("COOKIE_SECURE cannot be disabled in production")
		}
	}

	return nil
}

// BootstrapAdmin reports whether a first administrator should be ensured.
func (c *Config) BootstrapAdmin() bool {
	return c.AdminEmail != ""
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CookieSecure reports whether the auth cookie must carry the Secure attribute.
func (c *Config) CookieSecure() bool {
	if c.CookieSecureOverride != nil {
		return *c.CookieSecureOverride
	}
	return c.IsProduction()
}
