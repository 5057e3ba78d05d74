package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/rem/internal/views"
)

type RemindersCmd struct {
	flags *Flags

	all     bool
	verbose bool
}

func NewRemindersCmd(flags *Flags) *RemindersCmd {
	return &RemindersCmd{flags: flags}
}

func (cmd *RemindersCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:  "reminders",
		Usage: "Display reminders",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "show all reminders, including inactive ones",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "show all information on the reminders",
				Destination: &cmd.verbose,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *RemindersCmd) run(ctx context.Context, c *cli.Command) error {
	reminders, err := cmd.flags.App.ListReminders(ctx)
	if err != nil {
		return err
	}

	r := newRenderer()
	opts := views.Options{All: cmd.all, Verbose: cmd.verbose, Now: cmd.flags.App.Now}
	out := c.Root().Writer
	for _, rem := range reminders {
		fmt.Fprint(out, r.Reminder(rem, opts))
	}
	return nil
}
