package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/BranchIntl/tweener"
	"github.com/BranchIntl/tweener/config"
)

func main() {
	app := &cli.App{
		Name:  "tweener",
		Usage: "frame-interpolation worker daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config file",
			},
			&cli.StringFlag{
				Name:  "queue",
				Usage: "queue type: memory, redis or rabbitmq",
			},
			&cli.StringFlag{
				Name:  "queue-uri",
				Usage: "queue connection URI",
			},
			&cli.IntFlag{
				Name:  "pairs",
				Usage: "number of input frame pairs (sizes the output buffer)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "number of parallel workers",
			},
			&cli.IntFlag{
				Name:  "device",
				Usage: "accelerator device index",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal("Error: ", err)
	}
}

func run(c *cli.Context) error {
	cfg := config.Defaults()

	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if c.IsSet("queue") {
		cfg.Queue.Type = c.String("queue")
	}
	if c.IsSet("queue-uri") {
		cfg.Queue.URI = c.String("queue-uri")
	}
	if c.IsSet("pairs") {
		cfg.Pairs = c.Int("pairs")
	}
	if c.IsSet("concurrency") {
		cfg.Concurrency = c.Int("concurrency")
	}
	if c.IsSet("device") {
		cfg.Device = c.Int("device")
	}

	engine, _, err := tweener.NewEngine(cfg, tweener.DefaultTable())
	if err != nil {
		return fmt.Errorf("assemble engine: %w", err)
	}

	return engine.Run(context.Background())
}
