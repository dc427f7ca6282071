package ports

import "context"

// HealthChecker reports whether one dependency is usable. Every todo store
// implements it; the remote store answers with its client's circuit state.
type HealthChecker interface {
	// Name keys the check in readiness output, e.g. "postgres" or "todo-api".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honour
	// ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns each result by name;
	// a nil error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
