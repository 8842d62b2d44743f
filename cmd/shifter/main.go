//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"shape-shifter/internal/app"
	"shape-shifter/internal/audio"
	"shape-shifter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	var opts []app.EngineOption
	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("[audio] countdown cues disabled: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, app.WithCountdownCue(player.Countdown))
		}
	}

	game, err := app.New(context.Background(), cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("shape-shifter")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
