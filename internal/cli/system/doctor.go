package system

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow-cli/internal/backup"
	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/keyring"
	"github.com/habitflow/habitflow-cli/internal/notifier"
)

type DoctorCmd struct {
	Repair bool `help:"Recompute derived state when inconsistencies are found."`
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if _, err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		fmt.Println("\nDiagnostics found errors. Please address the issues above.")
		return fmt.Errorf("doctor found errors")
	}
	fmt.Printf("✓ Storage reachable: OK\n")

	// Check 2: derived state consistent with history
	problems := ctx.Tracker.VerifyIntegrity()
	if len(problems) > 0 {
		fmt.Printf("❌ Data integrity: FAIL\n")
		for _, p := range problems {
			fmt.Printf("   %s\n", p)
		}
		if cmd.Repair {
			if err := ctx.Tracker.Repair(); err != nil {
				fmt.Printf("   Repair failed: %v\n", err)
				hasError = true
			} else {
				fmt.Printf("✓ Derived state recomputed\n")
			}
		} else {
			fmt.Println("   Run 'habitflow doctor --repair' to recompute derived state.")
			hasError = true
		}
	} else {
		fmt.Printf("✓ Data integrity: OK\n")
	}

	// Check 3: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.List()
	if err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found. Create one with 'habitflow backup create'.\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d found)\n", len(backups))
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: keyring availability (warning only, needed for remote storage)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; remote storage credentials cannot be stored.\n")
	}

	// Check 6: tray helper reachable (warning only)
	if dir, err := notifier.TrayConfigDir(); err != nil {
		fmt.Printf("⚠ Tray helper: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Tray helper config: %s\n", dir)
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics found errors. Please address the issues above.")
		return fmt.Errorf("doctor found errors")
	}
	fmt.Println("All checks passed.")
	return nil
}

// checkClockTimezone sanity checks the system clock. Streak computation
// depends on the local date being right.
func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system clock reads %s, which looks wrong", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset %d seconds is outside the valid range", offset)
	}
	return nil
}
