package cli

import (
	"fmt"
	"strings"

	"github.com/habitflow/habitflow-cli/internal/backup"
	"github.com/habitflow/habitflow-cli/internal/events"
	"github.com/habitflow/habitflow-cli/internal/logger"
	"github.com/habitflow/habitflow-cli/internal/storage"
	"github.com/habitflow/habitflow-cli/internal/tracker"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

type Context struct {
	Tracker *tracker.Tracker
	Store   storage.Provider
	Bus     *events.Bus
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	export, err := c.Tracker.Export()
	if err != nil {
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	mgr := backup.NewManager(c.Store.Path())
	if _, err := mgr.Create(export); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ReportAchievements runs the achievement check and prints any new unlocks.
// Failures are logged, not surfaced; unlocking is a side effect of the
// command that triggered it.
func (c *Context) ReportAchievements() {
	newly, err := c.Tracker.CheckAchievements()
	if err != nil {
		logger.Warn("Achievement check failed", "error", err)
		return
	}
	for _, id := range newly {
		fmt.Printf("🏆 Achievement unlocked: %s\n", FormatAchievement(id))
	}
}

// FormatAchievement turns an achievement id into a display name.
func FormatAchievement(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// ResolveDate turns a user-supplied date flag into a storage date key.
// Empty and "today" mean today; "yesterday" is also accepted.
func ResolveDate(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return utils.Today(), nil
	case "yesterday":
		return utils.AddDays(utils.Today(), -1)
	}
	if _, err := utils.ParseDate(s); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD, 'today', or 'yesterday')", s)
	}
	return s, nil
}

// ProgressBar renders a fixed-width ASCII completion bar.
func ProgressBar(percentage float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
