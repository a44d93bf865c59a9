package models

import "habitctl/internal/constants"

// Habit is a server-owned habit record. Streaks and completion totals are
// computed server-side and treated as read-only here.
type Habit struct {
	ID               int                 `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description,omitempty"`
	HabitType        constants.HabitType `json:"habit_type"`
	Frequency        string              `json:"frequency"`
	TargetValue      float64             `json:"target_value"`
	Unit             string              `json:"unit,omitempty"`
	Icon             string              `json:"icon"`
	Color            string              `json:"color"`
	IsActive         bool                `json:"is_active"`
	CurrentStreak    int                 `json:"current_streak"`
	LongestStreak    int                 `json:"longest_streak"`
	TotalCompletions int                 `json:"total_completions"`
	CreatedAt        string              `json:"created_at,omitempty"` // RFC3339 timestamp
	UpdatedAt        string              `json:"updated_at,omitempty"` // RFC3339 timestamp
	OwnerID          int                 `json:"owner_id,omitempty"`
}

// HabitData is the habit creation payload.
type HabitData struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	HabitType   constants.HabitType `json:"habit_type"`
	Frequency   string              `json:"frequency,omitempty"`
	TargetValue float64             `json:"target_value,omitempty"`
	Unit        string              `json:"unit,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Color       string              `json:"color,omitempty"`
}

// HabitUpdate is a partial habit update. Nil fields are omitted from the
// request body so the server keeps their current values.
type HabitUpdate struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	HabitType   *constants.HabitType `json:"habit_type,omitempty"`
	Frequency   *string              `json:"frequency,omitempty"`
	TargetValue *float64             `json:"target_value,omitempty"`
	Unit        *string              `json:"unit,omitempty"`
	Icon        *string              `json:"icon,omitempty"`
	Color       *string              `json:"color,omitempty"`
	IsActive    *bool                `json:"is_active,omitempty"`
}
