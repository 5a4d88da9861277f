package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/habitflow/habitflow-cli/internal/storage"
	"github.com/habitflow/habitflow-cli/internal/tracker"
)

func newTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitflow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	tr := tracker.New(store, nil)
	if err := tr.Load(); err != nil {
		t.Fatalf("failed to load tracker: %v", err)
	}
	return tr
}

func TestDemoHash(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"abc", "96354"},
		{"hello", "99162322"},
	}
	for _, tc := range cases {
		if got := DemoHash(tc.in); got != tc.want {
			t.Errorf("DemoHash(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRegisterAndVerify(t *testing.T) {
	tr := newTestTracker(t)

	user, err := Register(tr, "Ada", "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.Password == "secret" {
		t.Error("expected stored passphrase to be hashed")
	}

	if _, err := Register(tr, "Bob", "bob@example.com", "other"); !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}

	if _, err := Verify(tr, "ada@example.com", "secret"); err != nil {
		t.Errorf("expected verify to succeed: %v", err)
	}
	if _, err := Verify(tr, "ada@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
	if _, err := Verify(tr, "someone@else.com", "secret"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for wrong email, got %v", err)
	}
}

func TestVerifyWithoutAccount(t *testing.T) {
	tr := newTestTracker(t)

	if _, err := Verify(tr, "ada@example.com", "secret"); !errors.Is(err, ErrNoUser) {
		t.Errorf("expected ErrNoUser, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	tr := newTestTracker(t)

	if err := Remove(tr); !errors.Is(err, ErrNoUser) {
		t.Errorf("expected ErrNoUser, got %v", err)
	}

	if _, err := Register(tr, "Ada", "ada@example.com", "secret"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if err := Remove(tr); err != nil {
		t.Fatalf("failed to remove account: %v", err)
	}
	if tr.User() != nil {
		t.Error("expected account to be gone")
	}
}
