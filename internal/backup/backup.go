// Package backup writes timestamped export files next to the storage file
// and prunes old ones.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/habitflow/habitflow-cli/internal/constants"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a storage path.
type Manager struct {
	backupDir string
}

// NewManager creates a backup manager rooted next to the storage file.
func NewManager(storagePath string) *Manager {
	return &Manager{
		backupDir: filepath.Join(filepath.Dir(storagePath), constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create writes the export payload to a fresh timestamped backup file and
// rotates old backups.
func (m *Manager) Create(export []byte) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath, err := m.freshBackupPath()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(backupPath, export, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		// Rotation failure should not fail the backup itself
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return backupPath, nil
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) ||
			!strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Read returns the contents of a backup file for import.
func (m *Manager) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	return data, nil
}

func (m *Manager) freshBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	// Same-minute collision: add seconds, then a counter
	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, constants.BackupFileSuffix)
		path = filepath.Join(m.backupDir, name)
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}
