package stats

import (
	"fmt"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/constants"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	stats := ctx.Tracker.Stats()
	settings := ctx.Tracker.Settings()

	fmt.Println("Your progress:")
	fmt.Printf("  Habits:            %d\n", stats.TotalHabits)
	fmt.Printf("  Total completions: %d\n", stats.TotalCompletions)
	fmt.Printf("  Longest streak:    %d days\n", stats.LongestStreak)
	fmt.Printf("  Level:             %d (%d/%d XP)\n", settings.Level, settings.XP, constants.XPPerLevel)
	fmt.Println()

	fmt.Println("Last 7 days:")
	for _, entry := range ctx.Tracker.WeeklyData() {
		fmt.Printf("  %s %s  %s %d/%d (%.0f%%)\n",
			entry.DayName, entry.Date[5:], cli.ProgressBar(entry.Percentage, 10),
			entry.Completed, entry.Total, entry.Percentage)
	}
	return nil
}

// achievementDescriptions give each id its display line.
var achievementDescriptions = map[string]string{
	constants.AchievementFirstHabit:     "Getting Started: create your first habit",
	constants.AchievementSevenDayStreak: "One Week Strong: hold a 7 day streak",
	constants.AchievementMonthStreak:    "Monthly Master: hold a 30 day streak",
	constants.AchievementHundredDone:    "Century Club: complete habits 100 times",
	constants.AchievementPerfectWeek:    "Perfect Week: complete every habit for 7 days",
}

// achievementOrder keeps the listing stable.
var achievementOrder = []string{
	constants.AchievementFirstHabit,
	constants.AchievementSevenDayStreak,
	constants.AchievementMonthStreak,
	constants.AchievementHundredDone,
	constants.AchievementPerfectWeek,
}

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
	unlocked := make(map[string]bool)
	for _, id := range ctx.Tracker.Achievements() {
		unlocked[id] = true
	}

	fmt.Printf("Achievements (%d/%d):\n\n", len(unlocked), len(achievementOrder))
	for _, id := range achievementOrder {
		mark := "🔒"
		if unlocked[id] {
			mark = "🏆"
		}
		fmt.Printf("%s %s\n", mark, achievementDescriptions[id])
	}
	return nil
}
