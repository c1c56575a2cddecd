package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wcharczuk/go-everyuuid"
)

func uuidCommand() *cli.Command {
	return &cli.Command{
		Name:      "uuid",
		Usage:     "Print the identifier for each index",
		ArgsUsage: "<index> [index...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("everyuuid; uuid; at least one index is required")
			}
			for _, arg := range cmd.Args().Slice() {
				index, err := everyuuid.ParseIndex(arg)
				if err != nil {
					return err
				}
				id, err := everyuuid.IndexToIdentifier(index)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Root().Writer, id)
			}
			return nil
		},
	}
}

func indexCommand() *cli.Command {
	return &cli.Command{
		Name:      "index",
		Usage:     "Print the index for each identifier",
		ArgsUsage: "<identifier> [identifier...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("everyuuid; index; at least one identifier is required")
			}
			for _, arg := range cmd.Args().Slice() {
				index, err := everyuuid.IdentifierToIndex(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Root().Writer, index.String())
			}
			return nil
		},
	}
}
