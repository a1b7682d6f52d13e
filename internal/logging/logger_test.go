package logging_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"moviegenre/internal/config"
	"moviegenre/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.With(logging.FieldComponent, "genre").Info("prediction complete", "genres", 2, "label", "Sci-Fi, Drama")

	line := readLog(t, logPath)
	for _, fragment := range []string{" INFO genre: prediction complete", "genres=2", `label="Sci-Fi, Drama"`} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %q in %q", fragment, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("expected component to be rendered as prefix, got %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithGroup("model").Debug("loaded", "genres", 4)

	line := readLog(t, logPath)
	if !strings.Contains(line, ".go:") {
		t.Fatalf("expected caller information for debug logs, got %q", line)
	}
	if !strings.Contains(line, "model.genres=4") {
		t.Fatalf("expected grouped key, got %q", line)
	}
}

func TestDefaultLevelSuppressesInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "quiet.log")
	logger, err := logging.New(logging.Options{OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") {
		t.Fatalf("expected info to be suppressed at default level, got %q", content)
	}
	if !strings.Contains(content, "WARN shown") {
		t.Fatalf("expected warning line, got %q", content)
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRequestID(context.Background(), "req-123")
	logging.WithContext(ctx, logger).Info("artifact loaded")

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &entry); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if entry["level"] != "info" || entry["msg"] != "artifact loaded" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
	if entry[logging.FieldRequestID] != "req-123" {
		t.Fatalf("expected request id, got %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", OutputPaths: []string{"stderr"}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "moviegenre.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("to file")

	if !strings.Contains(readLog(t, cfg.Logging.File), "to file") {
		t.Fatal("expected log file to receive the record")
	}
}

func TestRequestIDContext(t *testing.T) {
	if _, ok := logging.RequestIDFromContext(context.Background()); ok {
		t.Fatal("expected no request id on empty context")
	}
	ctx := logging.WithRequestID(context.Background(), "  ")
	if _, ok := logging.RequestIDFromContext(ctx); ok {
		t.Fatal("expected blank request id to be ignored")
	}
	ctx = logging.WithRequestID(context.Background(), "abc")
	if id, ok := logging.RequestIDFromContext(ctx); !ok || id != "abc" {
		t.Fatalf("unexpected request id %q", id)
	}
	if logging.WithContext(ctx, nil) == nil {
		t.Fatal("expected logger even without a base logger")
	}
	logging.NewNop().Info("discarded")
}
