package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

type DeleteTaskCmd struct {
	flags *Flags
}

func NewDeleteTaskCmd(flags *Flags) *DeleteTaskCmd {
	return &DeleteTaskCmd{flags: flags}
}

func (cmd *DeleteTaskCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "delete-task",
		Usage:     "Delete a task",
		ArgsUsage: "<id>",
		Action:    cmd.run,
	})
	return root
}

func (cmd *DeleteTaskCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return errors.New("delete-task requires a task id")
	}
	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}
	return cmd.flags.App.DeleteTask(ctx, id)
}
