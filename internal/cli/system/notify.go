package system

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/notifier"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

// NotifyCmd sends the daily reminder through the tray helper. It is meant
// to be invoked from a scheduler (cron, launchd) around the configured
// reminder time.
type NotifyCmd struct {
	DryRun bool `help:"Print the reminder to stdout instead of sending it."`
	Force  bool `help:"Send regardless of the configured reminder time."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings := ctx.Tracker.Settings()

	if !settings.Notifications.Enabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	if !c.Force && !withinReminderWindow(settings.Notifications.Time, time.Now()) {
		if c.DryRun {
			fmt.Printf("Outside the reminder window (configured for %s).\n", settings.Notifications.Time)
		}
		return nil
	}

	pending := 0
	for _, habit := range ctx.Tracker.Habits() {
		if !ctx.Tracker.Completion(utils.Today(), habit.ID) {
			pending++
		}
	}
	if pending == 0 {
		if c.DryRun {
			fmt.Println("All habits are done for today. Nothing to send.")
		}
		return nil
	}

	text := fmt.Sprintf("You have %d habit(s) left today. Keep your streak going!", pending)
	if c.DryRun {
		fmt.Printf("Would send: %s\n", text)
		return nil
	}

	return notifier.New().Notify(text)
}

// withinReminderWindow reports whether now falls inside the 15 minute
// window starting at the configured reminder time.
func withinReminderWindow(reminderTime string, now time.Time) bool {
	t, err := utils.ParseTime(reminderTime)
	if err != nil {
		return false
	}
	reminderMinutes := t.Hour()*60 + t.Minute()
	nowMinutes := now.Hour()*60 + now.Minute()
	return nowMinutes >= reminderMinutes && nowMinutes < reminderMinutes+15
}
