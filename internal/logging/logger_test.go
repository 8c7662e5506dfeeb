package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelmatch/internal/config"
	"reelmatch/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"

	var out bytes.Buffer
	logger, closeFn, err := logging.NewFromConfig(&cfg, &out)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer closeFn()

	logging.NewComponentLogger(logger, "recommend").Info("engine ready", logging.Int("movies", 10))
	logger.Debug("hidden")

	line := out.String()
	if !strings.Contains(line, "INFO recommend: engine ready movies=10") {
		t.Fatalf("unexpected console output: %q", line)
	}
	if strings.Contains(line, "hidden") {
		t.Fatalf("debug record leaked at info level: %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var out bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &out})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller", logging.String("title", "Kal Ho Naa Ho"))

	if !strings.Contains(out.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", out.String())
	}
	if !strings.Contains(out.String(), `title="Kal Ho Naa Ho"`) {
		t.Fatalf("expected quoted title, got %q", out.String())
	}
}

func TestNewWritesJSONFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "reelmatch.log")
	var out bytes.Buffer
	logger, closeFn, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &out, File: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("title not found", logging.String(logging.FieldTitle, "Inception"))
	if err := closeFn(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{`"level":"warn"`, `"msg":"title not found"`, `"title":"Inception"`} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("log file missing %s: %s", want, content)
		}
	}
	if !strings.Contains(out.String(), "WARN title not found") {
		t.Fatalf("console output missing record: %q", out.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsCorrelationID(t *testing.T) {
	var out bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &out})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRequestID(context.Background(), "req-xyz")
	if id, ok := logging.RequestIDFromContext(ctx); !ok || id != "req-xyz" {
		t.Fatalf("RequestIDFromContext = %q, %v", id, ok)
	}
	logging.WithContext(ctx, logger).Info("contextual log")

	if !strings.Contains(out.String(), `"correlation_id":"req-xyz"`) {
		t.Fatalf("expected correlation id in output: %s", out.String())
	}

	if got := logging.WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected logger unchanged without context fields")
	}
}
