package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/storage"
)

func TestInitCreatesStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitflow.json")
	ctx := &cli.Context{Store: storage.NewJSONStore(path)}

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected storage file to exist: %v", err)
	}

	// Second init without force fails
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected second init to fail")
	}
}

func TestInitForceReplacesStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitflow.json")
	ctx := &cli.Context{Store: storage.NewJSONStore(path)}

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
}
