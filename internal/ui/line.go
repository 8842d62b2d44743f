// Package ui holds the window front end's command prompt and overlays.
package ui

import "slices"

const maxHistory = 50

// LineEditor is a single-line input buffer with submission history.
type LineEditor struct {
	line    []rune
	history []string
	// cursor indexes history while browsing; len(history) means the live line.
	cursor int
	draft  string
}

// NewLineEditor returns an empty editor.
func NewLineEditor() *LineEditor { return &LineEditor{} }

// String returns the current line.
func (e *LineEditor) String() string { return string(e.line) }

// Insert appends typed runes, dropping control characters.
func (e *LineEditor) Insert(rs ...rune) {
	for _, r := range rs {
		if r < 0x20 || r == 0x7f {
			continue
		}
		e.line = append(e.line, r)
	}
}

// Backspace removes the last rune.
func (e *LineEditor) Backspace() {
	if len(e.line) > 0 {
		e.line = e.line[:len(e.line)-1]
	}
}

// Clear empties the line.
func (e *LineEditor) Clear() { e.line = e.line[:0] }

// Submit returns the line, records it in history and clears it.
func (e *LineEditor) Submit() string {
	s := string(e.line)
	if s != "" && (len(e.history) == 0 || e.history[len(e.history)-1] != s) {
		e.history = append(e.history, s)
		if len(e.history) > maxHistory {
			e.history = slices.Delete(e.history, 0, len(e.history)-maxHistory)
		}
	}
	e.cursor = len(e.history)
	e.draft = ""
	e.Clear()
	return s
}

// Previous recalls the previous history entry.
func (e *LineEditor) Previous() {
	if e.cursor == 0 || len(e.history) == 0 {
		return
	}
	if e.cursor >= len(e.history) {
		e.cursor = len(e.history)
		e.draft = string(e.line)
	}
	e.cursor--
	e.line = []rune(e.history[e.cursor])
}

// Next moves forward through history, ending at the line being drafted.
func (e *LineEditor) Next() {
	if e.cursor >= len(e.history) {
		return
	}
	e.cursor++
	if e.cursor == len(e.history) {
		e.line = []rune(e.draft)
		return
	}
	e.line = []rune(e.history[e.cursor])
}
