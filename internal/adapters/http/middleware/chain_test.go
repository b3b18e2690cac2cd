package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/logging"
)

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("bare"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects", http.NoBody))

	if rec.Body.String() != "bare" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "bare")
	}
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+":before")
				next.ServeHTTP(w, r)
				order = append(order, name+":after")
			})
		}
	}

	handler := middleware.Chain(mw("outer"), mw("inner"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/actions", http.NoBody))

	want := []string{"outer:before", "inner:before", "handler", "inner:after", "outer:after"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestStack_FullPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Chain(middleware.Stack(logger, nil, 5*time.Second)...)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if middleware.RequestIDFromContext(ctx) == "" {
				t.Error("request ID not in context")
			}
			if middleware.CorrelationIDFromContext(ctx) == "" {
				t.Error("correlation ID not in context")
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Error("context has no deadline")
			}
			logging.FromContext(ctx).InfoContext(ctx, "listing projects")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", http.NoBody)
	req.Header.Set("X-Correlation-ID", "corr-pipeline")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "[]" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "[]")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "corr-pipeline" {
		t.Errorf("X-Correlation-ID = %q, want %q", got, "corr-pipeline")
	}

	logOutput := buf.String()
	for _, want := range []string{"request started", "listing projects", "correlation_id=corr-pipeline", "request completed"} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestStack_PanicBecomesJSON500(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Chain(middleware.Stack(testLogger(&buf), nil, 5*time.Second)...)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("store exploded")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/projects/1", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
	if !strings.Contains(buf.String(), "store exploded") {
		t.Error("panic value not logged")
	}
}

func TestStack_TimeoutBecomesJSON504(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(middleware.Stack(discardLogger(), nil, 20*time.Millisecond)...)(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/actions", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
}
