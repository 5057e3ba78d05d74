package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

type CompleteCmd struct {
	flags *Flags
}

func NewCompleteCmd(flags *Flags) *CompleteCmd {
	return &CompleteCmd{flags: flags}
}

func (cmd *CompleteCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "complete",
		Usage:     "Mark a task as completed",
		ArgsUsage: "<id>",
		Action:    cmd.run,
	})
	return root
}

func (cmd *CompleteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return errors.New("complete requires a task id")
	}
	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}
	_, err = cmd.flags.App.CompleteTask(ctx, id)
	return err
}
