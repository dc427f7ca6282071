package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate checks every section and returns all problems joined together.
func (c *Config) Validate() error {
	var v validator

	c.Server.validate(&v)
	c.Log.validate(&v)
	c.Store.validate(&v)
	if c.Store.Backend == BackendRemote {
		c.Client.validate(&v)
	}
	if c.Health.CheckTimeout < 0 {
		v.failf("health.check_timeout must not be negative, got %s", c.Health.CheckTimeout)
	}
	if c.Telemetry.Enabled {
		c.Telemetry.validate(&v)
	}

	return errors.Join(v.errs...)
}

// validator collects failures; each message starts with the config key.
type validator struct {
	errs []error
}

func (v *validator) failf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.failf(format, args...)
	}
}

func (v *validator) oneOf(key, got string, allowed ...string) {
	v.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (s *ServerConfig) validate(v *validator) {
	v.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	v.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	v.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
}

func (l *LogConfig) validate(v *validator) {
	v.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	v.oneOf("log.format", l.Format, "json", "text")
}

func (st *StoreConfig) validate(v *validator) {
	switch st.Backend {
	case BackendPostgres:
		v.check(st.Postgres.DSN != "", "store.postgres.dsn must not be empty when backend is postgres")
		v.check(st.Postgres.MaxConns >= 1, "store.postgres.max_conns must be >= 1, got %d", st.Postgres.MaxConns)
	case BackendMongo:
		v.check(st.Mongo.URI != "", "store.mongo.uri must not be empty when backend is mongo")
		v.check(st.Mongo.Database != "" && st.Mongo.Collection != "",
			"store.mongo.database and store.mongo.collection must not be empty")
	default:
		v.oneOf("store.backend", st.Backend, BackendMemory, BackendPostgres, BackendMongo, BackendRemote)
	}
}

// validate runs only for the remote backend, the one consumer of the client.
func (cl *ClientConfig) validate(v *validator) {
	v.check(cl.BaseURL != "", "client.base_url must not be empty")
	v.check(cl.Timeout > 0, "client.timeout must be positive")
	v.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	v.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	v.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rps := cl.RateLimit.RequestsPerSecond
	v.check(rps >= 0, "client.rate_limit.requests_per_second must be >= 0, got %g", rps)
	v.check(rps <= 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled")
}

func (t *TelemetryConfig) validate(v *validator) {
	v.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	v.check(t.Exporter != "otlp" || t.Endpoint != "",
		"telemetry.endpoint must not be empty when exporter is otlp")
}
