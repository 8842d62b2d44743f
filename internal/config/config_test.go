package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shape-shifter/internal/core"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shifter.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Gap != 14 || cfg.MaxShapeSize != 30 || cfg.Fallback != "What?" {
		t.Fatalf("unexpected shape defaults: %+v", cfg)
	}
	if cfg.ShuffleInterval != 4*time.Second || cfg.ActionInterval != 2*time.Second {
		t.Fatalf("unexpected intervals: %v %v", cfg.ShuffleInterval, cfg.ActionInterval)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
width: 400
script: "Hi|#circle 5"
gap: 10
color: "#ff8000"
action_interval: 500ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != Default().Height {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Script != "Hi|#circle 5" || cfg.Gap != 10 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.ActionInterval != 500*time.Millisecond {
		t.Fatalf("action interval = %v", cfg.ActionInterval)
	}
	if got := cfg.DotColor(); got != (core.Color{R: 255, G: 128, B: 0, A: 1}) {
		t.Fatalf("dot color = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "width: [1, 2")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if _, err := Load(writeFile(t, `color: "chartreuse"`)); err == nil {
		t.Fatal("expected error for bad colour")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{Color: "#fff", Background: "#000", ImageScale: 3}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	def := Default()
	if cfg.Width != def.Width || cfg.TPS != def.TPS || cfg.Gap != def.Gap {
		t.Fatalf("numbers not defaulted: %+v", cfg)
	}
	if cfg.ImageScale != def.ImageScale {
		t.Fatalf("image scale = %v", cfg.ImageScale)
	}
	if cfg.ShuffleInterval != def.ShuffleInterval {
		t.Fatalf("shuffle interval = %v", cfg.ShuffleInterval)
	}
}

func TestParseFlagsOnly(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-width", "320", "-interval", "1s"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 320 || cfg.ActionInterval != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "width: 400\nheight: 300\n")
	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-height", "200"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 400 {
		t.Fatalf("width from file = %d", cfg.Width)
	}
	if cfg.Height != 200 {
		t.Fatalf("height from flag = %d", cfg.Height)
	}
}

func TestParseKeepsCallerFlagsWithFile(t *testing.T) {
	path := writeFile(t, "width: 400\n")
	fs := newFlagSet()
	frames := fs.Int("frames", 600, "frames to simulate")
	cfg, err := Parse(fs, []string{"-config", path, "-frames", "10", "-gap", "7"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *frames != 10 {
		t.Fatalf("frames = %d, want 10", *frames)
	}
	if cfg.Width != 400 || cfg.Gap != 7 {
		t.Fatalf("unexpected config: width=%d gap=%d", cfg.Width, cfg.Gap)
	}
}

func TestParseColor(t *testing.T) {
	if _, err := ParseColor("ff0000"); err == nil {
		t.Fatal("expected error without leading #")
	}
	c, err := ParseColor("#0f0")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (core.Color{G: 255, A: 1}) {
		t.Fatalf("color = %+v", c)
	}
}

func TestShapeOptions(t *testing.T) {
	cfg := Default()
	cfg.Gap = 7
	opts := cfg.ShapeOptions()
	if opts.Gap != 7 || opts.MaxShapeSize != cfg.MaxShapeSize || opts.Fallback != cfg.Fallback {
		t.Fatalf("options = %+v", opts)
	}
	if a := cfg.Area(); a.W != cfg.Width || a.H != cfg.Height {
		t.Fatalf("area = %+v", a)
	}
}
