package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

type StopCmd struct {
	flags *Flags
}

func NewStopCmd(flags *Flags) *StopCmd {
	return &StopCmd{flags: flags}
}

func (cmd *StopCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "stop",
		Usage:     "Stop a reminder from generating new tasks",
		ArgsUsage: "<id>",
		Action:    cmd.run,
	})
	return root
}

func (cmd *StopCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return errors.New("stop requires a reminder id")
	}
	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}
	_, err = cmd.flags.App.StopReminder(ctx, id)
	return err
}
