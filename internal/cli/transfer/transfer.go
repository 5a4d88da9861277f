package transfer

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/habitflow/habitflow-cli/internal/cli"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Tracker.Export()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("✓ Exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import." type:"existingfile"`
	Yes  bool   `help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your current data with the imported file.")
		if !confirm("Continue? [y/N]: ") {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if err := ctx.Tracker.Import(data); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Println("✓ Import completed successfully")
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will erase all habits, completions, and journal entries.")
		if !confirm("Continue? [y/N]: ") {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	// Keep a recovery point before wiping
	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.Reset(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Println("✓ All data reset to defaults")
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
