package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems accumulates every invalid setting so one failed start reports
// them all.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
	}
}

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		p.addf("server.read_timeout must be positive")
	}
	if s.WriteTimeout <= 0 {
		p.addf("server.write_timeout must be positive")
	}
	if s.RequestTimeout <= 0 {
		p.addf("server.request_timeout must be positive")
	}

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	db := c.Database
	if db.Path == "" {
		p.addf("database.path must not be empty")
	}
	if db.MaxOpenConns < 1 {
		p.addf("database.max_open_conns must be >= 1, got %d", db.MaxOpenConns)
	}
	if db.BusyTimeout < 0 {
		p.addf("database.busy_timeout must not be negative")
	}
	if db.CircuitBreaker.MaxFailures < 1 {
		p.addf("database.circuit_breaker.max_failures must be >= 1, got %d", db.CircuitBreaker.MaxFailures)
	}
	if db.CircuitBreaker.Timeout <= 0 {
		p.addf("database.circuit_breaker.timeout must be positive")
	}

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		if t.ServiceName == "" {
			p.addf("telemetry.service_name must not be empty when telemetry is enabled")
		}
		if t.Exporter == "otlp" && t.Endpoint == "" {
			p.addf("telemetry.endpoint must not be empty when exporter is otlp")
		}
	}

	return errors.Join(p...)
}
