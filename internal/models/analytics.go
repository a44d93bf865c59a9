package models

// DashboardStats is a server-computed aggregate snapshot across all of the
// user's habits. It is replaced wholesale on every fetch, never edited.
type DashboardStats struct {
	TotalHabits      int `json:"total_habits"`
	ActiveHabits     int `json:"active_habits"`
	TodayCompleted   int `json:"today_completed"`
	TodayTotal       int `json:"today_total"`
	CurrentStreak    int `json:"current_streak"`
	TotalCompletions int `json:"total_completions"`
}

// HabitAnalytics is a per-habit summary over a trailing window of days.
type HabitAnalytics struct {
	HabitID        int      `json:"habit_id"`
	HabitName      string   `json:"habit_name"`
	TotalDays      int      `json:"total_days"`
	CompletedDays  int      `json:"completed_days"`
	CompletionRate float64  `json:"completion_rate"`
	CurrentStreak  int      `json:"current_streak"`
	LongestStreak  int      `json:"longest_streak"`
	AverageValue   *float64 `json:"average_value,omitempty"`
}
