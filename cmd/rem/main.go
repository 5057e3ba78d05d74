package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/rem/internal/app"
	"github.com/sandeepkv93/rem/internal/commands"
	"github.com/sandeepkv93/rem/internal/storage"
)

const databaseFile = "db.sqlite"

func main() {
	ctx := context.Background()

	flags := &commands.Flags{}
	var repo *storage.SQLiteRepository

	root := &cli.Command{
		Name:  "rem",
		Usage: "Track tasks, work bits and recurring reminders",
		Description: `rem is a personal task tracker. Tasks carry optional start and due times,
completions are terminal, and timestamped work bits record progress against a
task. Reminders generate recurring tasks: every invocation first backfills any
occurrences that came due since the last run.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("REM_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("REM_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			lvl, err := zerolog.ParseLevel(flags.LogLevel)
			if err != nil {
				return ctx, fmt.Errorf("parse log level: %w", err)
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().
				Timestamp().
				Logger().
				Level(lvl)

			if err := os.MkdirAll(flags.DataDir, 0o755); err != nil {
				return ctx, fmt.Errorf("create data directory: %w", err)
			}

			repo, err = storage.OpenSQLite(filepath.Join(flags.DataDir, databaseFile))
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}
			if err := storage.MigrateUp(repo.DB()); err != nil {
				return ctx, fmt.Errorf("ensure schema: %w", err)
			}

			flags.App = app.New(repo, time.Now(), log.Logger)

			// A failed catch-up leaves gaps a later run will backfill; the
			// requested command still runs.
			if err := flags.App.CatchUp(ctx); err != nil {
				log.Warn().Err(err).Msg("reminder catch-up failed")
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if repo != nil {
				return repo.Close()
			}
			return nil
		},
	}

	root = commands.NewTasksCmd(flags).Register(root)
	root = commands.NewTaskCmd(flags).Register(root)
	root = commands.NewRecordCmd(flags).Register(root)
	root = commands.NewDeleteTaskCmd(flags).Register(root)
	root = commands.NewCompleteCmd(flags).Register(root)
	root = commands.NewReminderCmd(flags).Register(root)
	root = commands.NewRemindersCmd(flags).Register(root)
	root = commands.NewStopCmd(flags).Register(root)

	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
