package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-actions-service/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{"json", "json", []string{`"level":"INFO"`, `"msg":"project created"`}},
		{"text", "text", []string{"level=INFO", `msg="project created"`}},
		{"unknown falls back to json", "xml", []string{`"level":"INFO"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("project created")

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want it to contain %q", out, want)
				}
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		emit      slog.Level
		wantEmpty bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{" debug ", slog.LevelDebug, false},
		{"info", slog.LevelDebug, true},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelWarn, true},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelDebug, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.emit.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Log(context.Background(), tt.emit, "listing actions")

			if got := buf.Len() == 0; got != tt.wantEmpty {
				t.Errorf("empty output = %v, want %v (output %q)", got, tt.wantEmpty, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("fetching project")
	logging.New("info", "json", &infoBuf).Info("fetching project")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want source location", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source location", infoBuf.String())
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()

	discard := logging.OrDiscard(nil)
	if discard == nil {
		t.Fatal("OrDiscard(nil) returned nil")
	}
	if discard.Enabled(context.Background(), slog.LevelError) {
		t.Error("OrDiscard(nil) logger is enabled, want it to drop records")
	}

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)
	if got := logging.OrDiscard(logger); got != logger {
		t.Error("OrDiscard returned a different logger for a non-nil input")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}

	var buf1, buf2 bytes.Buffer
	first := logging.New("info", "json", &buf1)
	second := logging.New("debug", "json", &buf2)

	ctx := logging.WithLogger(context.Background(), first)
	if got := logging.FromContext(ctx); got != first {
		t.Error("FromContext returned a different logger than the one stored")
	}

	ctx = logging.WithLogger(ctx, second)
	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext returned the first logger, want the overwriting one")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"set-cookie header", slog.String("set-cookie", "session=abc123"), "abc123"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"dsn field", slog.String("dsn", "file:projects.db?_auth_pass=s3cret"), "s3cret"},
		{"secret prefix", slog.String("secret_key", "k-998877"), "k-998877"},
		{"token prefix", slog.String("token_refresh", "rt-445566"), "rt-445566"},
		{"bearer value", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"inline api key", slog.String("note", "api_key=abcd-efgh"), "abcd-efgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("request", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_DoesNotRedactDomainFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("action created",
		slog.Int64("project_id", 42),
		slog.String("description", "Write release notes"),
		slog.String("path", "/projects/42/actions"),
	)

	out := buf.String()
	for _, want := range []string{`"project_id":42`, "Write release notes", "/projects/42/actions"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}
