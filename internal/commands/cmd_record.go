package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

type RecordCmd struct {
	flags *Flags
}

func NewRecordCmd(flags *Flags) *RecordCmd {
	return &RecordCmd{flags: flags}
}

func (cmd *RecordCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "record",
		Usage:     "Record a bit of work for a task",
		ArgsUsage: "<task_id> [description]",
		Action:    cmd.run,
	})
	return root
}

func (cmd *RecordCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return errors.New("record requires a task id")
	}
	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}
	_, err = cmd.flags.App.RecordWork(ctx, id, c.Args().Get(1))
	return err
}
