package cli

import (
	"context"
	"fmt"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	if result := ctx.Habits.FetchDashboardStats(context.Background()); !result.Success {
		return fmt.Errorf("failed to fetch dashboard stats: %s", result.Error)
	}

	stats := ctx.Habits.Stats()
	fmt.Println("Dashboard")
	fmt.Printf("  Today:             %d/%d completed\n", stats.TodayCompleted, stats.TodayTotal)
	fmt.Printf("  Current streak:    %d days\n", stats.CurrentStreak)
	fmt.Printf("  Habits:            %d active / %d total\n", stats.ActiveHabits, stats.TotalHabits)
	fmt.Printf("  Total completions: %d\n", stats.TotalCompletions)
	return nil
}

type AnalyticsCmd struct {
	Days int `help:"Trailing window in days (default from settings)." default:"0"`
}

func (c *AnalyticsCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	days := c.Days
	if days <= 0 {
		if settings, err := ctx.Settings.GetSettings(); err == nil && settings.AnalyticsDays > 0 {
			days = settings.AnalyticsDays
		} else {
			days = 30
		}
	}

	result := ctx.Habits.HabitAnalytics(context.Background(), days)
	if !result.Success {
		return fmt.Errorf("failed to fetch analytics: %s", result.Error)
	}

	if len(result.Analytics) == 0 {
		fmt.Println("No habits to analyze.")
		return nil
	}

	fmt.Printf("Last %d days\n", days)
	for _, a := range result.Analytics {
		line := fmt.Sprintf("  %-20s %s (%d/%d days), streak %d (best %d)",
			a.HabitName, FormatCompletionRate(a.CompletionRate), a.CompletedDays, a.TotalDays,
			a.CurrentStreak, a.LongestStreak)
		if a.AverageValue != nil {
			line += fmt.Sprintf(", avg %.1f", *a.AverageValue)
		}
		fmt.Println(line)
	}
	return nil
}
