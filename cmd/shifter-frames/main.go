// Command shifter-frames plays a script headlessly on a simulated 60 Hz clock
// and writes frames as PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"shape-shifter/internal/app"
	"shape-shifter/internal/config"
	"shape-shifter/internal/core"
	"shape-shifter/internal/render"
)

type options struct {
	frames int
	every  int
	out    string
}

func main() {
	fs := flag.CommandLine
	var o options
	fs.IntVar(&o.frames, "frames", 600, "number of frames to simulate")
	fs.IntVar(&o.every, "every", 10, "write every n-th frame")
	fs.StringVar(&o.out, "out", "frames", "output directory")
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	n, err := run(context.Background(), cfg, o)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[frames] wrote %d frames to %s", n, o.out)
}

// run simulates the configured script and returns how many frames it wrote.
func run(ctx context.Context, cfg *config.Config, o options) (int, error) {
	if o.frames <= 0 {
		return 0, fmt.Errorf("frames must be positive, got %d", o.frames)
	}
	if o.every <= 0 {
		o.every = 1
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	canvas := render.NewCanvas(cfg.Area(), cfg.BackgroundColor())
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	engine, err := app.NewEngine(ctx, canvas, cfg, app.WithClock(func() time.Time { return clock }))
	if err != nil {
		return 0, err
	}
	defer engine.Close()

	step := core.NewFixedStep(cfg.TPS).Step()
	written := 0
	for i := 0; i < o.frames; i++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		clock = start.Add(time.Duration(i) * step)
		engine.Frame(clock)
		if i%o.every != 0 {
			continue
		}
		canvas.Clear()
		engine.Draw()
		if err := writeFrame(canvas, filepath.Join(o.out, fmt.Sprintf("frame-%05d.png", i))); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writeFrame(c *render.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
