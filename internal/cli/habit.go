package cli

import (
	"context"
	"fmt"

	"habitctl/internal/constants"
	"habitctl/internal/models"
	"habitctl/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Create a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name        string  `arg:"" help:"Habit name."`
	Description string  `help:"Optional description."`
	Type        string  `help:"Habit type: boolean, count, or duration." default:"boolean"`
	Target      float64 `help:"Target value per day." default:"1"`
	Unit        string  `help:"Unit for count/duration habits (e.g. pages, minutes)."`
	Icon        string  `help:"Icon shown in listings."`
	Color       string  `help:"Hex color (#RRGGBB)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	data := models.HabitData{
		Name:        c.Name,
		Description: c.Description,
		HabitType:   constants.HabitType(c.Type),
		TargetValue: c.Target,
		Unit:        c.Unit,
		Icon:        c.Icon,
		Color:       c.Color,
	}
	if err := validation.HabitData(data); err != nil {
		return err
	}

	result := ctx.Habits.CreateHabit(context.Background(), data)
	if !result.Success {
		return fmt.Errorf("failed to create habit: %s", result.Error)
	}

	fmt.Printf("Created habit %q [%d]\n", result.Habit.Name, result.Habit.ID)
	return nil
}

type HabitListCmd struct {
	Inactive bool `help:"Include inactive habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	if result := ctx.Habits.FetchHabits(context.Background()); !result.Success {
		return fmt.Errorf("failed to fetch habits: %s", result.Error)
	}

	habits := ctx.Habits.HabitList()
	shown := 0
	for _, habit := range habits {
		if !habit.IsActive && !c.Inactive {
			continue
		}
		fmt.Println(FormatHabit(habit))
		shown++
	}
	if shown == 0 {
		fmt.Println("No habits found.")
	}
	return nil
}

type HabitEditCmd struct {
	ID          int      `arg:"" help:"Habit id."`
	Name        *string  `help:"New name."`
	Description *string  `help:"New description."`
	Target      *float64 `help:"New target value."`
	Unit        *string  `help:"New unit."`
	Icon        *string  `help:"New icon."`
	Color       *string  `help:"New hex color (#RRGGBB)."`
	Active      *bool    `help:"Activate or deactivate the habit."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	if c.Color != nil {
		if err := validation.Color(*c.Color); err != nil {
			return err
		}
	}

	update := models.HabitUpdate{
		Name:        c.Name,
		Description: c.Description,
		TargetValue: c.Target,
		Unit:        c.Unit,
		Icon:        c.Icon,
		Color:       c.Color,
		IsActive:    c.Active,
	}
	if update == (models.HabitUpdate{}) {
		return fmt.Errorf("no changes specified")
	}

	result := ctx.Habits.UpdateHabit(context.Background(), c.ID, update)
	if !result.Success {
		return fmt.Errorf("failed to update habit: %s", result.Error)
	}

	fmt.Printf("Updated habit %q [%d]\n", result.Habit.Name, result.Habit.ID)
	return nil
}

type HabitDeleteCmd struct {
	ID int `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	result := ctx.Habits.DeleteHabit(context.Background(), c.ID)
	if !result.Success {
		return fmt.Errorf("failed to delete habit: %s", result.Error)
	}

	fmt.Printf("Deleted habit [%d]\n", c.ID)
	return nil
}
