package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sandeepkv93/rem/internal/views"
)

type TasksCmd struct {
	flags *Flags

	all     bool
	verbose bool
}

func NewTasksCmd(flags *Flags) *TasksCmd {
	return &TasksCmd{flags: flags}
}

func (cmd *TasksCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:  "tasks",
		Usage: "Display tasks",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "show all tasks, including completed ones",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "show all information on the tasks",
				Destination: &cmd.verbose,
			},
		},
		Action: cmd.run,
	})
	return root
}

func (cmd *TasksCmd) run(ctx context.Context, c *cli.Command) error {
	tasks, err := cmd.flags.App.ListTasks(ctx)
	if err != nil {
		return err
	}

	r := newRenderer()
	opts := views.Options{All: cmd.all, Verbose: cmd.verbose, Now: cmd.flags.App.Now}
	out := c.Root().Writer
	for _, t := range tasks {
		fmt.Fprint(out, r.Task(t, opts))
	}
	return nil
}
