package cli

import (
	"context"
	"fmt"

	"habitctl/internal/logger"
	"habitctl/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme         *string `help:"UI theme: light or dark."`
	APIURL        *string `help:"Habit service base URL."`
	AnalyticsDays *int    `help:"Default analytics window in days."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Settings.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:          %s\n", settings.Theme)
		fmt.Printf("  API URL:        %s\n", settings.APIBaseURL)
		fmt.Printf("  Analytics Days: %d\n", settings.AnalyticsDays)
		return nil
	}

	updated := false
	if c.Theme != nil {
		if *c.Theme != "light" && *c.Theme != "dark" {
			return fmt.Errorf("invalid theme %q (expected light or dark)", *c.Theme)
		}
		settings.Theme = *c.Theme
		updated = true
	}
	if c.APIURL != nil {
		settings.APIBaseURL = *c.APIURL
		updated = true
	}
	if c.AnalyticsDays != nil {
		if *c.AnalyticsDays <= 0 {
			return fmt.Errorf("analytics days must be positive")
		}
		settings.AnalyticsDays = *c.AnalyticsDays
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Settings.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	// Theme is also a server-side profile preference; mirror it when a
	// session is available.
	if c.Theme != nil && ctx.RequireAuth(context.Background()) == nil {
		result := ctx.Session.UpdateProfile(context.Background(), models.UserUpdate{Theme: c.Theme})
		if !result.Success {
			logger.Warn("Failed to sync theme to profile", "error", result.Error)
		}
	}

	fmt.Println("Settings updated successfully.")
	return nil
}
