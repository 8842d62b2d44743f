package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s, err := Tone(rate, 440, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	if got := drain(t, s); got != rate.N(50*time.Millisecond) {
		t.Fatalf("samples = %d, want %d", got, rate.N(50*time.Millisecond))
	}
}

func TestToneRejectsNyquist(t *testing.T) {
	if _, err := Tone(beep.SampleRate(1000), 600, time.Millisecond); err == nil {
		t.Fatal("expected error above the Nyquist frequency")
	}
}

func TestFinalCountdownCueIsLonger(t *testing.T) {
	rate := beep.SampleRate(8000)
	tick, err := Countdown(rate, 3)
	if err != nil {
		t.Fatalf("Countdown(3): %v", err)
	}
	final, err := Countdown(rate, 1)
	if err != nil {
		t.Fatalf("Countdown(1): %v", err)
	}
	if drain(t, final) <= drain(t, tick) {
		t.Fatal("final cue should outlast a regular tick")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Countdown(3)
	p.Close()
}
