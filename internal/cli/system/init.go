package system

import (
	"fmt"
	"os"

	"github.com/habitflow/habitflow-cli/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete existing data before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.Path()
		if _, err := os.Stat(path); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing data at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitflow storage at: %s\n", ctx.Store.Path())
	fmt.Println("Add your first habit with 'habitflow habit add'.")
	return nil
}
