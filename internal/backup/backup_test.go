package backup

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestCreateAndList(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), "habitflow.json")
	m := NewManager(storagePath)

	payload := []byte(`{"habits": []}`)
	path, err := m.Create(payload)
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if filepath.Dir(path) != m.BackupDir() {
		t.Errorf("expected backup under %s, got %s", m.BackupDir(), path)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected one backup, got %d", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("expected listed path %s, got %s", path, backups[0].Path)
	}

	data, err := m.Read(path)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("backup content mismatch: %s", data)
	}
}

func TestListEmptyDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "habitflow.json"))

	backups, err := m.List()
	if err != nil {
		t.Fatalf("expected missing directory to list cleanly: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestSameMinuteBackupsGetDistinctNames(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "habitflow.json"))

	first, err := m.Create([]byte(`{"habits": []}`))
	if err != nil {
		t.Fatalf("failed to create first backup: %v", err)
	}
	second, err := m.Create([]byte(`{"habits": [1]}`))
	if err != nil {
		t.Fatalf("failed to create second backup: %v", err)
	}
	if first == second {
		t.Error("expected distinct backup paths within the same minute")
	}
}

func TestReadMissingBackup(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "habitflow.json"))

	if _, err := m.Read(filepath.Join(m.BackupDir(), "nope.json")); err == nil {
		t.Error("expected error reading a missing backup")
	}
}
