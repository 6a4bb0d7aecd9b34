package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"checkers/internal/bootstrap"
	"checkers/internal/console"
	"checkers/internal/session"
	"checkers/internal/view"
)

func main() {
	app := &cli.App{
		Name:  "checkers",
		Usage: "play American checkers in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a config file (yaml)",
			},
			&cli.StringFlag{
				Name:  "view",
				Usage: "board view: 1 / chess or 2 / notation",
			},
			&cli.StringFlag{
				Name:  "position",
				Usage: "start position, e.g. \"8/8/8/8/3b4/2r5/8/8 r\"",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "where to write the game log",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "plain ASCII board",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := bootstrap.Setup(c.String("config"))
	if err != nil {
		return fmt.Errorf("setup configuration: %w", err)
	}
	if c.IsSet("view") {
		cfg.View = c.String("view")
	}
	if c.IsSet("position") {
		cfg.StartPosition = c.String("position")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.Bool("no-color") {
		cfg.Color = false
	}

	logger, err := bootstrap.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	viewID, err := view.ParseID(cfg.View)
	if err != nil {
		return err
	}
	pos, err := cfg.Position()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, err := console.NewGame(console.Config{
		View:            viewID,
		Color:           cfg.Color,
		StartPosition:   pos,
		RepetitionLimit: cfg.RepetitionLimit,
	}, session.NewManager(), os.Stdin, os.Stdout, logger)
	if err != nil {
		return err
	}

	logger.Infow("checkers started", "view", cfg.View, "start_position", cfg.StartPosition)
	return game.Run(ctx)
}
