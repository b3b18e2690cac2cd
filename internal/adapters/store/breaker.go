package store

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/config"
)

// newBreaker builds the circuit breaker guarding database calls. It trips
// after MaxFailures consecutive failures and probes again after Timeout.
func newBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        healthCheckName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// isSuccessful reports whether err says nothing about database health.
// Missing rows, constraint violations and caller cancellations are not
// failures.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, context.Canceled) ||
		isConstraintViolation(err)
}

// isConstraintViolation reports whether err is a SQLite constraint error
// (NOT NULL, CHECK, FOREIGN KEY, ...). Extended result codes keep the
// primary code in the low byte.
func isConstraintViolation(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// toUint32 clamps n into the uint32 range.
func toUint32(n int) uint32 {
	switch {
	case n < 0:
		return 0
	case n > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(n)
	}
}
