package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Mood classifies the tone of a journal note
type Mood string

const (
	AppName            = "habitflow"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitflow/habitflow.json"
	Version            = "v1.0.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ExportVersion tags export files for round-trip compatibility
	ExportVersion = "1.0.0"

	// StreakWindowDays bounds the backward scan when recomputing a streak
	StreakWindowDays = 365

	// WeeklyWindowDays is the size of the rolling weekly aggregation window
	WeeklyWindowDays = 7

	// XPPerLevel is the number of completions per level
	XPPerLevel = 100

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-backup-"
	BackupFileSuffix = ".json"

	// Notify constants
	NotifierLockfileName   = "habitflow-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.habitflow.tray"

	// Mood constants
	MoodPositive Mood = "positive"
	MoodNegative Mood = "negative"
	MoodNeutral  Mood = "neutral"
)

// Session States
const (
	StateToday SessionState = iota
	StateStats
	StateJournal
	StateAddHabit
	StateConfirmDelete
)

// Achievement ids, unlocked once each
const (
	AchievementFirstHabit     = "first_habit"
	AchievementSevenDayStreak = "7_day_streak"
	AchievementMonthStreak    = "30_day_streak"
	AchievementHundredDone    = "100_completions"
	AchievementPerfectWeek    = "perfect_week"
)

// Default Settings Values
const (
	DefaultTheme                = "dark"
	DefaultAccentColor          = "blue"
	DefaultNotificationsEnabled = true
	DefaultNotificationTime     = "09:00"
	DefaultLevel                = 1
)
