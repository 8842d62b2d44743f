package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shape-shifter/internal/app"
	"shape-shifter/internal/audio"
	"shape-shifter/internal/config"
	"shape-shifter/internal/term"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[term] create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[term] init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.Run(ctx, screen, cfg, opts...)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
