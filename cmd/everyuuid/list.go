package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wcharczuk/go-everyuuid"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print a window of consecutive indexes and their identifiers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "start",
				Value: "0",
				Usage: "The first index of the window",
			},
			&cli.IntFlag{
				Name:  "count",
				Value: 20,
				Usage: "The number of rows to print",
			},
			&cli.BoolFlag{
				Name:  "highlight",
				Usage: "Mark the start row",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := int(cmd.Int("count"))
			if count <= 0 {
				return fmt.Errorf("everyuuid; list; count must be positive")
			}
			cursor, err := everyuuid.NewCursor(everyuuid.Index{})
			if err != nil {
				return err
			}
			if err = cursor.Jump(cmd.String("start")); err != nil {
				return err
			}
			loggerFor(cmd).Debug("listing window", "start", cursor.Position().String(), "count", count)
			for _, row := range cursor.Window(count) {
				prefix := "  "
				if cmd.Bool("highlight") && row.Highlighted {
					prefix = "> "
				}
				fmt.Fprintln(cmd.Root().Writer, prefix+row.String())
			}
			return nil
		},
	}
}
