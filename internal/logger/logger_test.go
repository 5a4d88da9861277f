package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLogDir(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{ConfigDir: dir}); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("expected log directory to exist: %v", err)
	}
	if Logger == nil {
		t.Fatal("expected global logger to be set")
	}
}

func TestLoggingWithoutInitDoesNotPanic(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message", "key", "value")
}
