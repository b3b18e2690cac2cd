package ports

import "context"

// HealthChecker is a dependency the readiness probe consults, such as the
// SQLite store.
type HealthChecker interface {
	// Name keys the checker's result in the readiness response.
	Name() string
	// HealthCheck returns nil when the dependency can serve requests.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps every registered checker name to its result; nil means
	// healthy. Checkers sharing a name collapse to the last registered one.
	CheckAll(ctx context.Context) map[string]error
}
