package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wcharczuk/go-everyuuid"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert indexes to identifiers and identifiers to indexes, one per line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "The file to read lines from (if unset, stdin is read)",
			},
			&cli.BoolFlag{
				Name:    "follow",
				Aliases: []string{"f"},
				Usage:   "Keep reading lines as they're appended to the file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := loggerFor(cmd)
			wr := cmd.Root().Writer
			path := cmd.String("path")

			var failed int
			handle := func(input, output string, err error) error {
				if err != nil {
					failed++
					logger.Error("cannot convert line", "input", input, "err", err)
					return nil
				}
				fmt.Fprintln(wr, output)
				return nil
			}

			if cmd.Bool("follow") {
				if path == "" {
					return fmt.Errorf("everyuuid; convert; --follow requires --path")
				}
				logger.Debug("following file", "path", path)
				return everyuuid.Follow(ctx, path, func(line string) error {
					if line == "" {
						return nil
					}
					output, err := everyuuid.Convert(line)
					return handle(line, output, err)
				})
			}

			input := cmd.Root().Reader
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("everyuuid; convert; cannot open file: %w", err)
				}
				defer func() { _ = f.Close() }()
				input = f
			}
			if err := everyuuid.ConvertLines(input, handle); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("everyuuid; convert; %d lines could not be converted", failed)
			}
			return nil
		},
	}
}
