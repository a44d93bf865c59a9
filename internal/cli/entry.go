package cli

import (
	"context"
	"fmt"
	"time"

	"habitctl/internal/constants"
	"habitctl/internal/models"
	"habitctl/internal/validation"
)

type EntryCmd struct {
	Log  EntryLogCmd  `cmd:"" help:"Record an entry for a habit."`
	List EntryListCmd `cmd:"" help:"List entries for a day."`
	Edit EntryEditCmd `cmd:"" help:"Edit an existing entry."`
}

type EntryLogCmd struct {
	HabitID int      `arg:"" help:"Habit id."`
	Date    string   `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Done    bool     `help:"Mark the entry completed." default:"true" negatable:""`
	Value   *float64 `help:"Recorded value for count/duration habits."`
	Notes   string   `help:"Optional note."`
}

func (c *EntryLogCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = time.Now().Format(constants.DateFormat)
	} else if err := validation.Date(day); err != nil {
		return err
	}

	result := ctx.Habits.CreateEntry(context.Background(), models.EntryData{
		HabitID:   c.HabitID,
		Date:      day,
		Completed: c.Done,
		Value:     c.Value,
		Notes:     c.Notes,
	})
	if !result.Success {
		return fmt.Errorf("failed to record entry: %s", result.Error)
	}

	fmt.Printf("Recorded entry for habit [%d] on %s\n", c.HabitID, day)
	return nil
}

type EntryListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *EntryListCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = time.Now().Format(constants.DateFormat)
	} else if err := validation.Date(day); err != nil {
		return err
	}

	result := ctx.Habits.FetchEntriesForDate(context.Background(), day)
	if !result.Success {
		return fmt.Errorf("failed to fetch entries: %s", result.Error)
	}

	if len(result.Entries) == 0 {
		fmt.Printf("No entries for %s.\n", day)
		return nil
	}

	for _, entry := range result.Entries {
		mark := " "
		if entry.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] habit %d (entry %d)", mark, entry.HabitID, entry.ID)
		if entry.Value != nil {
			line += fmt.Sprintf("  value %.1f", *entry.Value)
		}
		if entry.Notes != "" {
			line += "  " + entry.Notes
		}
		fmt.Println(line)
	}
	return nil
}

type EntryEditCmd struct {
	ID    int      `arg:"" help:"Entry id."`
	Done  *bool    `help:"Completed flag."`
	Value *float64 `help:"Recorded value."`
	Notes *string  `help:"Note text."`
}

func (c *EntryEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	update := models.EntryUpdate{Completed: c.Done, Value: c.Value, Notes: c.Notes}
	if update == (models.EntryUpdate{}) {
		return fmt.Errorf("no changes specified")
	}

	result := ctx.Habits.UpdateEntry(context.Background(), c.ID, update)
	if !result.Success {
		return fmt.Errorf("failed to update entry: %s", result.Error)
	}

	fmt.Printf("Updated entry [%d]\n", c.ID)
	return nil
}
