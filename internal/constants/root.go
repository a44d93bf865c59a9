package constants

// SessionState represents the current state of the TUI application
type SessionState int

// HabitType represents the completion type of a habit
type HabitType string

const (
	AppName           = "habitctl"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/habitctl/habitctl.db"

	// DefaultAPIBaseURL is used until the settings store says otherwise.
	// HABITCTL_API_URL overrides both.
	DefaultAPIBaseURL = "http://localhost:8000/api/v1"
	APIEnvVar         = "HABITCTL_API_URL"

	// Keyring keys for the stored session credentials
	KeyringTokenKey        = "token"
	KeyringRefreshTokenKey = "refresh_token"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format for habit reminders (HH:MM)
	TimeFormat = "15:04"

	// Habit type constants
	HabitTypeBoolean  HabitType = "boolean"
	HabitTypeCount    HabitType = "count"
	HabitTypeDuration HabitType = "duration"

	// Settings defaults
	DefaultTheme         = "light"
	DefaultAnalyticsDays = 30

	// Session States
	StateLogin SessionState = iota
	StateHabits
	StateToday
	StateStats
	StateAddHabit
	StateConfirmDelete
)
