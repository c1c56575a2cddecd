package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wcharczuk/go-everyuuid"
)

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Generate random identifiers on every core and count exact duplicates",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "A json or yaml file of probe options; flags override its values",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "The number of generating goroutines (if unset, GOMAXPROCS)",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: everyuuid.DefaultReportInterval,
				Usage: "The interval between reports",
			},
			&cli.UintFlag{
				Name:  "limit",
				Usage: "Stop after generating this many identifiers (if unset, run until interrupted)",
			},
			&cli.BoolFlag{
				Name:  "fast",
				Usage: "Use the pooled ChaCha8 generator instead of crypto/rand",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := loggerFor(cmd)

			var opts everyuuid.ProbeOptions
			if configPath := cmd.String("config"); configPath != "" {
				fileOpts, found, err := everyuuid.MaybeReadProbeOptions(configPath)
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("everyuuid; probe; config file not found: %s", configPath)
				}
				opts = fileOpts
			}
			if cmd.IsSet("workers") {
				opts.Workers = int(cmd.Int("workers"))
			}
			if cmd.IsSet("interval") || opts.ReportInterval == 0 {
				opts.ReportInterval = cmd.Duration("interval")
			}
			if cmd.IsSet("limit") {
				opts.Limit = uint64(cmd.Uint("limit"))
			}
			if cmd.IsSet("fast") {
				opts.Fast = cmd.Bool("fast")
			}
			wr := cmd.Root().Writer
			opts.OnReport = func(report everyuuid.ProbeReport) {
				fmt.Fprintln(wr, report.String())
			}

			logger.Debug("starting probe",
				"workers", opts.WorkersOrDefault(),
				"interval", opts.ReportIntervalOrDefault(),
				"limit", opts.Limit,
				"fast", opts.Fast,
			)
			return everyuuid.NewProbe(opts).Run(ctx)
		},
	}
}
