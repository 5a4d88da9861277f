package system

import (
	"encoding/json"
	"fmt"

	"github.com/habitflow/habitflow-cli/internal/cli"
)

type DebugCmd struct {
	Path     *DebugPathCmd         `cmd:"" help:"Show storage path."`
	Document *DebugDumpDocumentCmd `cmd:"" help:"Dump the full document as JSON."`
	Habit    *DebugDumpHabitCmd    `cmd:"" help:"Dump habit data as JSON."`
	Settings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
	Stats    *DebugDumpStatsCmd    `cmd:"" help:"Dump derived stats as JSON."`
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *cli.Context) error {
	// Machine-readable for scripts and the tray helper
	return printJSON(map[string]string{"path": ctx.Store.Path()})
}

type DebugDumpDocumentCmd struct{}

func (cmd *DebugDumpDocumentCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Tracker.Export()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

type DebugDumpHabitCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.Habit(cmd.Name)
	if err != nil {
		habit, err = ctx.Tracker.HabitByName(cmd.Name)
		if err != nil {
			return fmt.Errorf("habit %q not found", cmd.Name)
		}
	}
	return printJSON(habit)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx.Tracker.Settings())
}

type DebugDumpStatsCmd struct{}

func (cmd *DebugDumpStatsCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx.Tracker.Stats())
}
