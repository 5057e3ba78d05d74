package commands

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/rem/internal/model"
)

type ReminderCmd struct {
	flags *Flags

	description string
	until       string
}

func NewReminderCmd(flags *Flags) *ReminderCmd {
	return &ReminderCmd{flags: flags}
}

func (cmd *ReminderCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "reminder",
		Usage:     "Add a generator for recurring tasks",
		ArgsUsage: "<title> <first_due> <period>",
		Description: `Creates a reminder whose occurrences materialize into tasks on every run.
The first occurrence is due at <first_due>; each following one is due one
<period> later. A period is given as "1w", "3d" or "1w 2d".`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional description copied to generated tasks",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "until",
				Aliases:     []string{"u"},
				Usage:       "last occurrence is before this datetime",
				Destination: &cmd.until,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *ReminderCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 3 {
		return errors.New("reminder requires a title, a first due datetime and a period")
	}

	firstDue, err := model.ParseDateTime(c.Args().Get(1))
	if err != nil {
		return err
	}
	period, err := model.ParsePeriod(c.Args().Get(2))
	if err != nil {
		return err
	}

	var until *time.Time
	if cmd.until != "" {
		t, err := model.ParseDateTime(cmd.until)
		if err != nil {
			return err
		}
		until = &t
	}

	_, err = cmd.flags.App.AddReminder(ctx, c.Args().First(), cmd.description, firstDue, period, until)
	return err
}
