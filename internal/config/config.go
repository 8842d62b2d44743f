// Package config holds the runtime parameters shared by every shape-shifter
// front end. Values come from defaults, an optional YAML file and command-line
// flags, in that order of precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"shape-shifter/internal/core"
	"shape-shifter/internal/script"
	"shape-shifter/internal/shape"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultScript is played on start-up.
const DefaultScript = "Shape|Shifter|Type|to start|#rectangle|#countdown 3||"

// Config represents the parameters for a shape-shifter run.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Seed   int64  `yaml:"seed"`
	Script string `yaml:"script"`

	Gap          int     `yaml:"gap"`
	MaxShapeSize int     `yaml:"max_shape_size"`
	FontSize     float64 `yaml:"font_size"`
	Fallback     string  `yaml:"fallback"`
	ImageScale   float64 `yaml:"image_scale"`

	Color      string `yaml:"color"`
	Background string `yaml:"background"`

	ActionInterval    time.Duration `yaml:"action_interval"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
	ShuffleInterval   time.Duration `yaml:"shuffle_interval"`

	// Sound plays a cue on every countdown digit.
	Sound bool `yaml:"sound"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Width:             960,
		Height:            640,
		TPS:               60,
		Seed:              0,
		Script:            DefaultScript,
		Gap:               shape.DefaultGap,
		MaxShapeSize:      shape.DefaultMaxShapeSize,
		FontSize:          shape.DefaultFontSize,
		Fallback:          shape.DefaultFallback,
		ImageScale:        shape.DefaultImageScale,
		Color:             "#ffffff",
		Background:        "#000000",
		ActionInterval:    script.DefaultActionInterval,
		CountdownInterval: script.DefaultCountdownInterval,
		ShuffleInterval:   4 * time.Second,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate replaces out-of-range numbers with defaults and rejects colours
// that cannot be parsed.
func (c *Config) Validate() error {
	def := Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Gap <= 0 {
		c.Gap = def.Gap
	}
	if c.MaxShapeSize <= 0 {
		c.MaxShapeSize = def.MaxShapeSize
	}
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if c.Fallback == "" {
		c.Fallback = def.Fallback
	}
	if c.ImageScale <= 0 || c.ImageScale > 1 {
		c.ImageScale = def.ImageScale
	}
	if c.ActionInterval <= 0 {
		c.ActionInterval = def.ActionInterval
	}
	if c.CountdownInterval <= 0 {
		c.CountdownInterval = def.CountdownInterval
	}
	if c.ShuffleInterval <= 0 {
		c.ShuffleInterval = def.ShuffleInterval
	}
	if _, err := ParseColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "drawing area width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "drawing area height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Script, "script", c.Script, "script played on start-up")
	fs.IntVar(&c.Gap, "gap", c.Gap, "grid pitch in pixels")
	fs.IntVar(&c.MaxShapeSize, "max-shape", c.MaxShapeSize, "largest circle or rectangle in grid units")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "largest font size")
	fs.StringVar(&c.Fallback, "fallback", c.Fallback, "text shown when a shape cannot be drawn")
	fs.Float64Var(&c.ImageScale, "image-scale", c.ImageScale, "fraction of the area an image covers")
	fs.StringVar(&c.Color, "color", c.Color, "dot colour as #rrggbb")
	fs.StringVar(&c.Background, "background", c.Background, "background colour as #rrggbb")
	fs.DurationVar(&c.ActionInterval, "interval", c.ActionInterval, "delay between script steps")
	fs.DurationVar(&c.CountdownInterval, "countdown-interval", c.CountdownInterval, "delay between countdown digits")
	fs.DurationVar(&c.ShuffleInterval, "shuffle", c.ShuffleInterval, "idle drift interval")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play countdown cues")
}

// Parse binds fs, parses args and, when -config names a file, layers the
// file under any flags that were set explicitly. Flags the caller registered
// on fs itself are left to the caller.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()
	cfg.Bind(fs)
	path := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	file, err := Load(*path)
	if err != nil {
		return nil, err
	}
	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	file.Bind(overlay)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr != nil || overlay.Lookup(f.Name) == nil {
			return
		}
		setErr = overlay.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return nil, fmt.Errorf("apply flags over %s: %w", *path, setErr)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}

// ParseColor converts "#rrggbb" or "#rgb" into an opaque core.Color.
func ParseColor(s string) (core.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, err
	}
	r, g, b := c.RGB255()
	return core.Color{R: r, G: g, B: b, A: 1}, nil
}

// DotColor returns the parsed dot colour, white when invalid.
func (c *Config) DotColor() core.Color {
	col, err := ParseColor(c.Color)
	if err != nil {
		return core.White
	}
	return col
}

// BackgroundColor returns the parsed background colour, black when invalid.
func (c *Config) BackgroundColor() core.Color {
	col, err := ParseColor(c.Background)
	if err != nil {
		return core.Color{A: 1}
	}
	return col
}

// ShapeOptions returns the rasterizer options described by c.
func (c *Config) ShapeOptions() shape.Options {
	return shape.Options{
		Gap:          c.Gap,
		MaxShapeSize: c.MaxShapeSize,
		FontSize:     c.FontSize,
		Fallback:     c.Fallback,
		ImageScale:   c.ImageScale,
	}
}

// DirectorOptions returns the script timing described by c.
func (c *Config) DirectorOptions() script.Options {
	return script.Options{
		ActionInterval:    c.ActionInterval,
		CountdownInterval: c.CountdownInterval,
	}
}

// Area returns the configured drawing area.
func (c *Config) Area() core.Area { return core.Area{W: c.Width, H: c.Height} }
