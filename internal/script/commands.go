package script

import (
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"time"

	"shape-shifter/internal/shape"
)

// Command runs a "#name value" step.
type Command func(d *Director, value string)

const defaultCountdown = 10

var commands = map[string]Command{}

// Register adds a command under the provided name.
func Register(name string, c Command) {
	if name == "" || c == nil {
		return
	}
	commands[name] = c
}

// Commands lists registered command names in order.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookup(name string) (Command, bool) {
	c, ok := commands[name]
	return c, ok
}

func logf(format string, args ...any) {
	log.Printf("[director] "+format, args...)
}

// countdown shows value..1 quickly, then clears the shape or resumes the
// remaining steps.
func countdown(d *Director, value string) {
	n, err := strconv.Atoi(firstWord(value))
	if err != nil || n <= 0 {
		n = defaultCountdown
	}
	d.startTimed(func(i int) {
		if i > 0 {
			d.show(shape.Text(strconv.Itoa(i)), true)
			if d.opts.OnCountdown != nil {
				d.opts.OnCountdown(i)
			}
			return
		}
		if len(d.steps) == 0 {
			d.show(shape.Text(""), false)
			return
		}
		d.perform(d.steps)
	}, d.opts.CountdownInterval, n, true)
}

func rectangle(d *Director, value string) {
	w, h := shape.ParseRectangle(firstWord(value), d.rast.Options().MaxShapeSize)
	d.show(shape.Rectangle(w, h), false)
}

func circle(d *Director, value string) {
	d.show(shape.Circle(shape.ParseCircle(firstWord(value), d.rast.Options().MaxShapeSize)), false)
}

// clock shows the time once, or keeps it current when it is the last step.
func clock(d *Director, _ string) {
	if len(d.steps) > 0 {
		d.show(shape.Text(formatClock(d.opts.Clock())), false)
		return
	}
	d.startTimed(func(int) {
		t := formatClock(d.opts.Clock())
		if t == d.shownClock {
			return
		}
		d.shownClock = t
		d.show(shape.Text(t), false)
	}, d.opts.ClockInterval, 0, false)
}

func icon(d *Director, value string) {
	if value == "" {
		d.show(shape.Text(d.rast.Options().Fallback), false)
		return
	}
	d.load(value)
}

// firstWord returns the argument numeric commands read; trailing words are
// ignored. #icon takes the whole value so paths may contain spaces.
func firstWord(value string) string {
	if f := strings.Fields(value); len(f) > 0 {
		return f[0]
	}
	return ""
}

func formatClock(t time.Time) string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

func init() {
	Register("countdown", countdown)
	Register("rectangle", rectangle)
	Register("circle", circle)
	Register("time", clock)
	Register("icon", icon)
}
