package cli

import (
	"context"
	"fmt"
	"strings"

	"habitctl/internal/models"
	"habitctl/internal/storage"
	"habitctl/internal/store"
)

// Context carries the wired stores to every command.
type Context struct {
	Session  *store.Session
	Habits   *store.Habits
	Settings *storage.Store
}

// RequireAuth restores the stored session if present. Commands that need
// an authenticated session call this first.
func (c *Context) RequireAuth(ctx context.Context) error {
	if c.Session.Authenticated() {
		return nil
	}
	if result := c.Session.Restore(ctx); !result.Success {
		return fmt.Errorf("not logged in (run 'habitctl login')")
	}
	return nil
}

// FormatHabit renders a one-line habit summary for list output.
func FormatHabit(habit models.Habit) string {
	var b strings.Builder
	if habit.Icon != "" {
		fmt.Fprintf(&b, "%s ", habit.Icon)
	}
	fmt.Fprintf(&b, "%-20s [%d]", habit.Name, habit.ID)
	fmt.Fprintf(&b, " %s", habit.HabitType)
	if habit.Unit != "" {
		fmt.Fprintf(&b, " (%.0f %s)", habit.TargetValue, habit.Unit)
	}
	if habit.CurrentStreak > 0 {
		fmt.Fprintf(&b, "  streak %d", habit.CurrentStreak)
	}
	if !habit.IsActive {
		b.WriteString("  [INACTIVE]")
	}
	return b.String()
}

// FormatCompletionRate renders a percentage with one decimal place.
func FormatCompletionRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
