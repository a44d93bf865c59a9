package models

// Entry is one day's recorded outcome for a habit. HabitID is a foreign
// reference; the server enforces that it points at a real habit.
type Entry struct {
	ID        int      `json:"id"`
	HabitID   int      `json:"habit_id"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Completed bool     `json:"completed"`
	Value     *float64 `json:"value,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"` // RFC3339 timestamp
	UpdatedAt string   `json:"updated_at,omitempty"` // RFC3339 timestamp
}

// EntryData is the entry creation payload.
type EntryData struct {
	HabitID   int      `json:"habit_id"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Completed bool     `json:"completed"`
	Value     *float64 `json:"value,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// EntryUpdate is a partial entry update.
type EntryUpdate struct {
	Completed *bool    `json:"completed,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}
