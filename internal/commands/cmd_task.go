package commands

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/rem/internal/model"
)

type TaskCmd struct {
	flags *Flags

	due   string
	start string
}

func NewTaskCmd(flags *Flags) *TaskCmd {
	return &TaskCmd{flags: flags}
}

func (cmd *TaskCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "task",
		Usage:     "Create a task",
		ArgsUsage: "<title> [description]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "due",
				Aliases:     []string{"d"},
				Usage:       "optional due date/time as DD.MM.YYYY [HH:MM]",
				Destination: &cmd.due,
			},
			&cli.StringFlag{
				Name:        "start",
				Aliases:     []string{"s"},
				Usage:       "optional scheduled start as DD.MM.YYYY [HH:MM]",
				Destination: &cmd.start,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *TaskCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return errors.New("task requires a title")
	}
	title := c.Args().First()
	description := c.Args().Get(1)

	var due, start *time.Time
	if cmd.due != "" {
		t, err := model.ParseDateTime(cmd.due)
		if err != nil {
			return err
		}
		due = &t
	}
	if cmd.start != "" {
		t, err := model.ParseDateTime(cmd.start)
		if err != nil {
			return err
		}
		start = &t
	}

	_, err := cmd.flags.App.AddTask(ctx, title, description, start, due)
	return err
}
