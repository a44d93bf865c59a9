package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"habitctl/internal/models"
)

type LoginCmd struct {
	Email    string `help:"Account email address." short:"e"`
	Password string `help:"Account password (prompted when omitted)." short:"p"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	email, password := c.Email, c.Password

	if email == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	result := ctx.Session.Login(context.Background(), email, password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Error)
	}

	state := ctx.Session.State()
	fmt.Printf("Logged in as %s\n", state.User.Email)
	return nil
}

type RegisterCmd struct {
	Email    string `help:"Account email address." short:"e"`
	FullName string `help:"Display name."`
	Username string `help:"Optional username."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	data := models.RegisterData{
		Email:    c.Email,
		FullName: c.FullName,
		Username: c.Username,
	}

	fields := []huh.Field{}
	if data.Email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(&data.Email))
	}
	if data.FullName == "" {
		fields = append(fields, huh.NewInput().Title("Full name").Value(&data.FullName))
	}
	fields = append(fields,
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&data.Password),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&data.ConfirmPassword),
	)
	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	result := ctx.Session.Register(context.Background(), data)
	if !result.Success {
		return fmt.Errorf("registration failed: %s", result.Error)
	}

	state := ctx.Session.State()
	fmt.Printf("Account created. Logged in as %s\n", state.User.Email)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	ctx.Session.Logout()
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	if err := ctx.RequireAuth(context.Background()); err != nil {
		return err
	}

	user := ctx.Session.State().User
	fmt.Printf("%s", user.Email)
	if user.FullName != "" {
		fmt.Printf(" (%s)", user.FullName)
	}
	fmt.Println()
	fmt.Printf("  timezone: %s\n", user.Timezone)
	fmt.Printf("  theme:    %s\n", user.Theme)
	return nil
}
