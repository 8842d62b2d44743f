package term

import (
	"context"
	"testing"
	"time"

	"shape-shifter/internal/config"

	"github.com/gdamore/tcell/v2"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newDriver(t *testing.T, script string) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	s := newScreen(t, 100, 40)
	cfg := config.Default()
	cfg.Script = script
	cfg.Seed = 3
	d, err := NewDriver(context.Background(), s, cfg)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	d.now = func() time.Time { return t0 }
	t.Cleanup(func() { d.Close() })
	return d, s
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestTypingBuildsLine(t *testing.T) {
	d, _ := newDriver(t, "")
	for _, r := range "Hix" {
		d.HandleEvent(key(tcell.KeyRune, r))
	}
	d.HandleEvent(key(tcell.KeyBackspace2, 0))
	if got := d.Line(); got != "Hi" {
		t.Fatalf("line = %q", got)
	}
	d.HandleEvent(key(tcell.KeyCtrlU, 0))
	if d.Line() != "" {
		t.Fatalf("line after ctrl-u = %q", d.Line())
	}
}

func TestEnterSubmitsLine(t *testing.T) {
	d, _ := newDriver(t, "")
	d.Frame(t0)
	for _, r := range "#circle 4" {
		d.HandleEvent(key(tcell.KeyRune, r))
	}
	if quit := d.HandleEvent(key(tcell.KeyEnter, 0)); quit {
		t.Fatal("enter should not quit")
	}
	if d.Line() != "" {
		t.Fatalf("line not cleared: %q", d.Line())
	}
	if d.Engine().Pool().Len() == 0 {
		t.Fatal("submitted circle should create dots")
	}
}

func TestQuitKeys(t *testing.T) {
	d, _ := newDriver(t, "")
	if !d.HandleEvent(key(tcell.KeyEscape, 0)) {
		t.Fatal("escape should quit")
	}
	if !d.HandleEvent(key(tcell.KeyCtrlC, 0)) {
		t.Fatal("ctrl-c should quit")
	}
}

func TestDrawShowsPromptAndDots(t *testing.T) {
	d, s := newDriver(t, "#rectangle 4x2")
	d.HandleEvent(key(tcell.KeyRune, 'a'))
	for i := 0; i < 90; i++ {
		d.Frame(t0.Add(time.Duration(i) * time.Second / 60))
	}
	d.Draw()

	cells, w, h := s.GetContents()
	prompt := ""
	for x := 0; x < 4; x++ {
		prompt += string(cells[(h-1)*w+x].Runes)
	}
	if prompt != "> a_" {
		t.Fatalf("prompt = %q", prompt)
	}
	lit := 0
	for _, c := range cells[:(h-1)*w] {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("expected dots on screen")
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	s := newScreen(t, 60, 20)
	cfg := config.Default()
	cfg.Script = "Hi"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- Run(ctx, s, cfg) }()

	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-ctx.Done():
		t.Fatal("Run did not return after escape")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newScreen(t, 60, 20)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- Run(ctx, s, config.Default()) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
