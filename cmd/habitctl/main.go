package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"habitctl/internal/api"
	"habitctl/internal/cli"
	"habitctl/internal/cli/system"
	"habitctl/internal/constants"
	"habitctl/internal/errors"
	"habitctl/internal/keyring"
	"habitctl/internal/logger"
	"habitctl/internal/storage"
	"habitctl/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Settings database path." type:"string" default:"~/.config/habitctl/habitctl.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Login     cli.LoginCmd      `cmd:"" help:"Sign in to the habit service."`
	Register  cli.RegisterCmd   `cmd:"" help:"Create an account and sign in."`
	Logout    cli.LogoutCmd     `cmd:"" help:"Sign out and clear stored tokens."`
	Whoami    cli.WhoamiCmd     `cmd:"" help:"Show the signed-in user."`
	Habit     cli.HabitCmd      `cmd:"" help:"Manage habits."`
	Entry     cli.EntryCmd      `cmd:"" help:"Record and inspect daily entries."`
	Stats     cli.StatsCmd      `cmd:"" help:"Show the dashboard summary."`
	Analytics cli.AnalyticsCmd  `cmd:"" help:"Show per-habit analytics."`
	Settings  cli.SettingsCmd   `cmd:"" help:"Manage local settings."`
	Doctor    system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui       system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal client for the habit tracking service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		errors.Fatal(err)
	}

	settings := storage.NewStore(configPath)
	if err := settings.Init(); err != nil {
		errors.Fatal(err)
	}
	defer settings.Close()

	baseURL := constants.DefaultAPIBaseURL
	if s, err := settings.GetSettings(); err == nil && s.APIBaseURL != "" {
		baseURL = s.APIBaseURL
	}
	if env := os.Getenv(constants.APIEnvVar); env != "" {
		baseURL = env
	}

	creds := keyring.Credentials(keyring.System())
	if !keyring.IsAvailable() {
		// Tokens won't survive the process, but every command still works
		logger.Warn("OS keyring unavailable, session will not persist")
		creds = keyring.Memory()
	}

	session := store.NewSession(api.New(baseURL), creds)
	habits := store.NewHabits(session)

	appCtx := &cli.Context{
		Session:  session,
		Habits:   habits,
		Settings: settings,
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
