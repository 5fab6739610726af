package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"babylog/internal/cli"
	"babylog/internal/constants"
	"babylog/internal/errors"
	"babylog/internal/keyring"
	"babylog/internal/logger"
	"babylog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for a JSON snapshot file) or PostgreSQL connection string. Credentials must NOT be embedded in a connection string; use the OS keyring or BABYLOG_DB_CONNECTION instead." default:"~/.config/babylog/babylog.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd `cmd:"" help:"Initialize storage."`
	Tui    cli.TuiCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Diaper struct {
		Add    cli.DiaperAddCmd    `cmd:"" help:"Log a nappy change."`
		Delete cli.DiaperDeleteCmd `cmd:"" help:"Delete nappy changes by key."`
		List   cli.DiaperListCmd   `cmd:"" help:"List nappy changes."`
	} `cmd:"" help:"Track nappy changes."`
	Sleep struct {
		Add    cli.SleepAddCmd    `cmd:"" help:"Log a new sleep."`
		Wake   cli.SleepWakeCmd   `cmd:"" help:"Log a wake up (closing the sleep unless --temporary)."`
		Delete cli.SleepDeleteCmd `cmd:"" help:"Delete a sleep by id."`
		List   cli.SleepListCmd   `cmd:"" help:"List sleeps."`
	} `cmd:"" help:"Track sleeps."`
	Feed struct {
		Add    cli.FeedAddCmd    `cmd:"" help:"Log a feed."`
		Delete cli.FeedDeleteCmd `cmd:"" help:"Delete feeds by key."`
		List   cli.FeedListCmd   `cmd:"" help:"List feeds."`
	} `cmd:"" help:"Track feeds."`
	Stats  cli.StatsCmd `cmd:"" help:"Show summary charts."`
	Export struct {
		Create cli.ExportCreateCmd `cmd:"" help:"Write a full JSON snapshot of every table." default:"1"`
		List   cli.ExportListCmd   `cmd:"" help:"List snapshots."`
	} `cmd:"" help:"Export full-table snapshots."`
	ConfigCmd struct {
		SetConnection   cli.SetConnectionCmd   `cmd:"" help:"Store a connection string in the OS keyring."`
		ClearConnection cli.ClearConnectionCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" name:"config" help:"Manage configuration."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Baby activity tracker: nappies, sleeps and feeds"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := resolveConfig(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	var provider storage.Provider
	switch {
	case strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://"):
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, "Error: connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Store the credentialed string with 'babylog config set-connection' or")
			fmt.Fprintln(os.Stderr, "       export BABYLOG_DB_CONNECTION instead.")
			os.Exit(1)
		}
		provider = storage.NewPostgresStore(config)
	case strings.HasSuffix(config, ".json"):
		provider = storage.NewJSONStore(config)
	default:
		provider = storage.NewSQLiteStore(config)
	}

	appCtx := &cli.Context{Store: storage.NewSession(provider)}

	// Every command except init expects an already-initialized store.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := appCtx.Store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer appCtx.Store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// resolveConfig decides where the data lives: the --config flag when changed
// from its default, else the environment, else the keyring, else the default
// local path. Tilde expansion applies to file paths.
func resolveConfig(flag string) string {
	if flag != "" && flag != constants.DefaultConfigPath {
		return expandHome(flag)
	}
	if env := os.Getenv("BABYLOG_DB_CONNECTION"); env != "" {
		return env
	}
	if connStr, err := keyring.GetConnectionString(); err == nil {
		return connStr
	}
	return expandHome(constants.DefaultConfigPath)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// configDir is where logs and snapshots live: next to a file-backed store,
// or under the default config directory for remote stores.
func configDir(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(config)
}
