package settings

import (
	"fmt"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme                *string `help:"UI theme (dark or light)."`
	AccentColor          *string `help:"Accent color."`
	NotificationsEnabled *bool   `help:"Enable or disable the daily reminder."`
	NotificationTime     *string `help:"Daily reminder time (HH:MM)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Tracker.Settings()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:                 %s\n", settings.Theme)
		fmt.Printf("  Accent Color:          %s\n", settings.AccentColor)
		fmt.Printf("  Level:                 %d (%d/%d XP)\n", settings.Level, settings.XP, constants.XPPerLevel)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.Notifications.Enabled)
		fmt.Printf("  Reminder Time:         %s\n", settings.Notifications.Time)
		return nil
	}

	if c.Theme != nil && *c.Theme != "dark" && *c.Theme != "light" {
		return fmt.Errorf("unknown theme %q (expected dark or light)", *c.Theme)
	}
	if c.NotificationTime != nil {
		if err := validation.ValidateNotificationTime(*c.NotificationTime); err != nil {
			return err
		}
	}

	update := models.SettingsUpdate{
		Theme:                c.Theme,
		AccentColor:          c.AccentColor,
		NotificationsEnabled: c.NotificationsEnabled,
		NotificationTime:     c.NotificationTime,
	}
	if !update.HasChanges() {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Tracker.UpdateSettings(update); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
