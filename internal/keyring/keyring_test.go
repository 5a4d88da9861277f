package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestConnectionStringRoundTrip(t *testing.T) {
	keyring.MockInit()

	if err := SetConnectionString("postgres://user@localhost:5432/habitflow"); err != nil {
		t.Fatalf("failed to set connection string: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}
	if got != "postgres://user@localhost:5432/habitflow" {
		t.Errorf("unexpected connection string: %q", got)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("failed to delete connection string: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSetEmptyConnectionString(t *testing.T) {
	keyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("expected error for empty connection string")
	}
}
