package backups

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/habitflow/habitflow-cli/internal/backup"
	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	export, err := ctx.Tracker.Export()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	mgr := backup.NewManager(ctx.Store.Path())
	backupPath, err := mgr.Create(export)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		fmt.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.BackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.Path())

	backupPath, err := locateBackup(mgr, c.BackupFile)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your current data with the backup.")
		fmt.Println("A backup of your current data will be created before restoring.")
		fmt.Printf("\nRestore from: %s\n", backupPath)
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	// Safety net before the destructive import
	if export, err := ctx.Tracker.Export(); err == nil {
		if _, err := mgr.Create(export); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to back up current data: %v\n", err)
		}
	}

	data, err := mgr.Read(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if err := ctx.Tracker.Import(data); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Restore completed successfully")
	return nil
}

// locateBackup resolves a backup reference against the working directory
// and then the backup directory.
func locateBackup(mgr *backup.Manager, ref string) (string, error) {
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", ref)
		}
		return ref, nil
	}

	if _, err := os.Stat(ref); err == nil {
		absPath, err := filepath.Abs(ref)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return absPath, nil
	}

	possiblePath := filepath.Join(mgr.BackupDir(), ref)
	if _, err := os.Stat(possiblePath); err == nil {
		return possiblePath, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.BackupDir())
}
