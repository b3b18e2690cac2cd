// Package store provides the SQLite-backed implementations of the project and
// action store ports.
//
// Every operation runs through the same pipeline:
//
//	Circuit Breaker → OTEL Span → SQL → Metrics
//
// Construction:
//
//	db, err := store.Open(ctx, cfg.Database, metrics, logger)
//	defer db.Close()
//	projects := store.NewProjectStore(db)
//	actions := store.NewActionStore(db)
//
// Deleting a project deletes its actions: the schema declares
// ON DELETE CASCADE and foreign keys are enabled on every connection.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/config"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/telemetry"
)

// The "sqlite" database/sql driver is registered by modernc.org/sqlite,
// imported in breaker.go for its error type.
const (
	driverName = "sqlite"
	dbSystem   = "sqlite"

	// MemoryPath selects a private in-memory database.
	MemoryPath = ":memory:"

	healthCheckName = "database"
)

// Store owns the database handle and the instrumentation shared by the
// entity stores.
type Store struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open opens the SQLite database described by cfg, applies pending
// migrations and returns a ready Store. If metrics is nil, metric recording
// is skipped. If logger is nil, logs are discarded.
func Open(ctx context.Context, cfg config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	logger = logging.OrDiscard(logger)

	if cfg.Path != MemoryPath {
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if cfg.Path == MemoryPath {
		// Each connection to :memory: is a separate database, so the pool
		// is pinned to one long-lived connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	version, err := migrate(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	logger.Info("database ready",
		slog.String("path", cfg.Path),
		slog.Int("schema_version", version),
	)

	return &Store{
		db:      db,
		breaker: newBreaker(cfg.CircuitBreaker, logger),
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name identifies the store in readiness reports. Together with HealthCheck
// it satisfies ports.HealthChecker.
func (s *Store) Name() string {
	return healthCheckName
}

// HealthCheck fails fast while the circuit breaker is open; otherwise it
// pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch s.breaker.State() {
	case gobreaker.StateOpen:
		return errors.New("circuit breaker open: database unavailable")
	case gobreaker.StateHalfOpen:
		return errors.New("circuit breaker half-open: database recovering")
	case gobreaker.StateClosed:
	}

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// run executes fn through the circuit breaker inside a client span and
// records operation metrics. domain.ErrNotFound is an expected outcome and
// is not counted as a failure.
func (s *Store) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	start := time.Now()

	ctx, span := telemetry.Tracer().Start(ctx, "db "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(dbSystem),
			telemetry.AttrDBOperation.String(op),
		),
	)
	defer span.End()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	})

	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.DebugContext(ctx, "store operation failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)
	}

	s.recordMetrics(ctx, op, start, err)
	return err
}

// recordMetrics records store operation duration and count metrics.
// Safe to call with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// dsn builds a modernc.org/sqlite connection string. Pragmas are applied to
// every new connection in the pool.
func dsn(cfg config.DatabaseConfig) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))

	if cfg.Path == MemoryPath {
		return "file::memory:?" + q.Encode()
	}

	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + cfg.Path + "?" + q.Encode()
}

// ensureDir creates the parent directory of a database file if missing.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating database directory %s: %w", dir, err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
