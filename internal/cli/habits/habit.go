package habits

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/tracker"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Mark   HabitMarkCmd   `cmd:"" help:"Toggle a habit's completion for a day."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status."`
	Log    HabitLogCmd    `cmd:"" help:"Show habit history (ASCII grid)."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's fields."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Search HabitSearchCmd `cmd:"" help:"Search habits by name or description."`
}

// resolveHabit accepts either a habit id or a name.
func resolveHabit(ctx *cli.Context, ref string) (models.Habit, error) {
	if habit, err := ctx.Tracker.Habit(ref); err == nil {
		return habit, nil
	}
	habit, err := ctx.Tracker.HabitByName(ref)
	if err != nil {
		if errors.Is(err, tracker.ErrHabitNotFound) {
			return models.Habit{}, fmt.Errorf("habit %q not found", ref)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description."`
	Icon        string `help:"Display icon." default:"✨"`
	Color       string `help:"Display color." default:"purple"`
	Frequency   string `help:"daily, weekly, or monthly." default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Tracker.HabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := ctx.Tracker.AddHabit(tracker.HabitInput{
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Frequency:   models.Frequency(c.Frequency),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s\n", habit.Icon, habit.Name)
	ctx.ReportAchievements()
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add'.")
		return nil
	}

	for _, habit := range habits {
		printHabitLine(ctx, habit)
	}
	return nil
}

func printHabitLine(ctx *cli.Context, habit models.Habit) {
	status := "[ ]"
	if ctx.Tracker.Completion(utils.Today(), habit.ID) {
		status = "[x]"
	}
	streak := ""
	if habit.Streak > 0 {
		streak = fmt.Sprintf("  🔥 %d", habit.Streak)
	}
	fmt.Printf("%s %s %s%s\n", status, habit.Icon, habit.Name, streak)
}

type HabitMarkCmd struct {
	Name string `arg:"" help:"Habit name or id."`
	Date string `help:"Date (YYYY-MM-DD, 'today', or 'yesterday')." default:""`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	day, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	// Toggle
	completed := !ctx.Tracker.Completion(day, habit.ID)
	if err := ctx.Tracker.SetCompletion(day, habit.ID, completed); err != nil {
		return err
	}

	if completed {
		fmt.Printf("Marked %q done for %s\n", habit.Name, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", habit.Name, day)
	}

	if updated, err := ctx.Tracker.Habit(habit.ID); err == nil && updated.Streak > 1 {
		fmt.Printf("🔥 %d day streak\n", updated.Streak)
	}
	ctx.ReportAchievements()
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add'.")
		return nil
	}

	today := utils.Today()
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	for _, habit := range habits {
		printHabitLine(ctx, habit)
		if ctx.Tracker.Completion(today, habit.ID) {
			done++
		}
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	habits := ctx.Tracker.Habits()
	if c.Habit != "" {
		habit, err := resolveHabit(ctx, c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	days := utils.LastNDays(time.Now(), c.Days)

	const nameWidth = 20
	fmt.Printf("Habit log (last %d days):\n\n", c.Days)
	fmt.Printf("%-*s", nameWidth, "Habit")
	for _, day := range days {
		fmt.Printf(" %5s", day[5:])
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*len(days)))

	for _, habit := range habits {
		name := habit.Name
		if len(name) > nameWidth-1 {
			name = name[:nameWidth-1]
		}
		fmt.Printf("%-*s", nameWidth, name)
		for _, day := range days {
			mark := "  ·  "
			if ctx.Tracker.Completion(day, habit.ID) {
				mark = "  x  "
			}
			fmt.Printf(" %s", mark)
		}
		fmt.Println()
	}
	return nil
}

type HabitEditCmd struct {
	Name string `arg:"" help:"Habit name or id."`

	NewName     *string `help:"New name."`
	Description *string `help:"New description."`
	Icon        *string `help:"New icon."`
	Color       *string `help:"New color."`
	Frequency   *string `help:"New frequency (daily, weekly, monthly)."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	update := models.HabitUpdate{
		Name:        c.NewName,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
	}
	if c.Frequency != nil {
		freq := models.Frequency(*c.Frequency)
		switch freq {
		case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		default:
			return fmt.Errorf("unknown frequency %q (expected daily, weekly, or monthly)", *c.Frequency)
		}
		update.Frequency = &freq
	}

	updated, err := ctx.Tracker.UpdateHabit(habit.ID, update)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", updated.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its history\n", habit.Name)
	return nil
}

type HabitSearchCmd struct {
	Query string `arg:"" help:"Search text."`
}

func (c *HabitSearchCmd) Run(ctx *cli.Context) error {
	matches := ctx.Tracker.SearchHabits(c.Query)
	if len(matches) == 0 {
		fmt.Println("No matching habits.")
		return nil
	}

	for _, habit := range matches {
		line := habit.Name
		if habit.Description != "" {
			line += " - " + habit.Description
		}
		fmt.Printf("%s %s\n", habit.Icon, line)
	}
	return nil
}
