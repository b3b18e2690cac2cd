package store_test

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/store"
	"github.com/jsamuelsen11/project-actions-service/internal/domain"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/config"
)

func testConfig(path string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Path:         path,
		MaxOpenConns: 2,
		BusyTimeout:  time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

func openMemory(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(context.Background(), testConfig(store.MemoryPath), nil, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedProject(t *testing.T, ps *store.ProjectStore, name string) int64 {
	t.Helper()

	id, err := ps.Insert(context.Background(), &project.Project{Name: name, Description: name + " description"})
	if err != nil {
		t.Fatalf("Insert(project) error = %v", err)
	}
	return id
}

func TestOpen_FileDatabaseCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "projects.db")
	s, err := store.Open(context.Background(), testConfig(path), nil, nil)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", path, err)
	}

	ps := store.NewProjectStore(s)
	id := seedProject(t, ps, "Persisted")

	// Reopening runs migrations again and must keep existing rows.
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	reopened, err := store.Open(context.Background(), testConfig(path), nil, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := store.NewProjectStore(reopened).GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID after reopen error = %v", err)
	}
	if got.Name != "Persisted" {
		t.Errorf("Name = %q, want %q", got.Name, "Persisted")
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := openMemory(t)

	if s.Name() != "database" {
		t.Errorf("Name() = %q, want %q", s.Name(), "database")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestStore_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	s, err := store.Open(context.Background(), testConfig(store.MemoryPath), nil, nil)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	ps := store.NewProjectStore(s)

	if err := s.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}

	// MaxFailures is 2 in testConfig.
	for range 2 {
		if _, err := ps.List(context.Background()); err == nil {
			t.Fatal("List() on closed database = nil error, want error")
		}
	}

	_, err = ps.List(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("List() after trip error = %v, want ErrOpenState", err)
	}
	if err := s.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() with open breaker = nil, want error")
	}
}

func TestStore_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	s := openMemory(t)
	ps := store.NewProjectStore(s)

	for range 5 {
		if _, err := ps.GetByID(context.Background(), 404); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByID(404) error = %v, want ErrNotFound", err)
		}
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after not-found lookups", err)
	}
}

func TestStore_ConstraintViolationDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	s := openMemory(t)
	as := store.NewActionStore(s)

	for range 5 {
		_, err := as.Insert(context.Background(), &action.Action{ProjectID: 999, Description: "d", Notes: "n"})
		if err == nil {
			t.Fatal("Insert(action with unknown project) = nil error, want foreign key error")
		}
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after constraint violations", err)
	}
}
