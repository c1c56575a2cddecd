package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		newLogger(os.Stderr, false).Error("everyuuid failed", slog.Any("err", err))
		cancel()
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "everyuuid",
		Usage: "Map indexes in [0, 2^122) to version 4 identifiers and back",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug output to stderr",
			},
		},
		Commands: []*cli.Command{
			uuidCommand(),
			indexCommand(),
			listCommand(),
			convertCommand(),
			probeCommand(),
		},
	}
}

func newLogger(wr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(wr, &slog.HandlerOptions{Level: level}))
}

func loggerFor(cmd *cli.Command) *slog.Logger {
	return newLogger(cmd.Root().ErrWriter, cmd.Bool("verbose"))
}
