package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 {
		return fmt.Errorf("min_conns must be >= 0 (got %d)", d.MinConns)
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !containsFold(validLogLevels, l.Level) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), l.Level)
	}
	if !containsFold(validLogFormats, l.Format) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), l.Format)
	}
	return nil
}

func (c *CacheConfig) validate() error {
	if c.TodaySMaxAge < 0 || c.TodayStaleWhileRevalidate < 0 {
		return fmt.Errorf("today durations must be >= 0")
	}
	if c.PreviewSMaxAge < 0 || c.PreviewStaleWhileRevalidate < 0 {
		return fmt.Errorf("preview durations must be >= 0")
	}
	return nil
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
