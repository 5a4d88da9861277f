package notifier

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/habitflow/habitflow-cli/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func TestTrayConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	expectedDefault := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := TrayConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != expectedDefault {
		t.Errorf("expected %s, got %s", expectedDefault, dir)
	}

	// Custom lockfile dir in tray settings
	trayConfigDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/habitflow/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(trayConfigDir, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = TrayConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	tempDir := t.TempDir()
	lockfile := filepath.Join(tempDir, constants.NotifierLockfileName)

	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "habitflow-tray"}, nil
	}

	// Missing lockfile
	if _, _, err := findAndValidateTrayProcess(lockfile); err == nil {
		t.Error("expected error for missing lockfile")
	}

	// Malformed lockfile
	if err := os.WriteFile(lockfile, []byte("bad-content"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := findAndValidateTrayProcess(lockfile); err == nil {
		t.Error("expected error for malformed lockfile")
	}

	// Port out of range
	if err := os.WriteFile(lockfile, []byte("99999|1234|secret"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := findAndValidateTrayProcess(lockfile); err == nil {
		t.Error("expected error for out-of-range port")
	}

	// Valid lockfile
	if err := os.WriteFile(lockfile, []byte("8123|1234|topsecret"), 0600); err != nil {
		t.Fatal(err)
	}
	port, secret, err := findAndValidateTrayProcess(lockfile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != "8123" || secret != "topsecret" {
		t.Errorf("unexpected port/secret: %s/%s", port, secret)
	}

	// Wrong executable name
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "someother-app"}, nil
	}
	if _, _, err := findAndValidateTrayProcess(lockfile); err == nil {
		t.Error("expected error for wrong executable")
	}
}

func TestSendNotification(t *testing.T) {
	var gotSecret string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Habitflow-Secret")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	payload := WebhookPayload{Text: "Time for your habits", DurationMs: 5000}
	if err := sendNotification(u.Port(), "topsecret", payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSecret != "topsecret" {
		t.Errorf("expected secret header, got %q", gotSecret)
	}
}
