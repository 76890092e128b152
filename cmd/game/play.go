package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"color-game/internal/config"
	"color-game/internal/game"
	"color-game/internal/graphics"
	"color-game/internal/logger"
	"color-game/internal/round"
)

func runGame(cmd *cobra.Command, args []string) error {
	log, err := logger.New(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flagShowFPS {
		cfg.Window.ShowFPS = true
	}

	pal, err := cfg.ColorPalette()
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	gen, err := round.NewGenerator(pal, cfg.Game.Seed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	win := graphics.Open(graphics.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
		ShowFPS:   cfg.Window.ShowFPS,
		Font:      cfg.Font,
		Logger:    log,
	})
	defer win.Close()

	log.Debug("starting game", "rounds", cfg.Game.MaxRounds, "colors", len(pal), "seed", cfg.Game.Seed)

	g := game.New(win, win, gen, game.Options{
		MaxRounds:           cfg.Game.MaxRounds,
		FeedbackPause:       cfg.Game.FeedbackPause,
		GameOverPause:       cfg.Game.GameOverPause,
		InterruptiblePauses: cfg.Game.InterruptiblePauses,
		Logger:              log,
	})
	g.Run(ctx)
	return nil
}
