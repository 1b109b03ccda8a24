package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validatePort(c.Server.Port); err != nil {
		return fmt.Errorf("server.port: %w", err)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %s)", c.Server.ShutdownTimeout)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.DSN == "" {
		if strings.TrimSpace(d.Host) == "" {
			return fmt.Errorf("host is required when dsn is empty")
		}
		if err := validatePort(d.Port); err != nil {
			return fmt.Errorf("port: %w", err)
		}
		if d.User == "" {
			return fmt.Errorf("user is required when dsn is empty")
		}
		if d.Name == "" {
			return fmt.Errorf("name is required when dsn is empty")
		}
	}

	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be within 0..max_conns (got %d, max %d)", d.MinConns, d.MaxConns)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.PerMinute < 0 {
		return fmt.Errorf("per_minute must be >= 0 (got %d)", r.PerMinute)
	}
	if r.Enabled() && r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 when limiting is enabled (got %s)", r.CleanupInterval)
	}
	return nil
}

func validatePort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("must be within 1..65535 (got %d)", p)
	}
	return nil
}
