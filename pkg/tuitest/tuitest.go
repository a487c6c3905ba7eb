// Package tuitest has helpers for drawing tview primitives on a simulation
// screen and feeding them key events.
package tuitest

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewSimScreen creates an initialised simulation screen of the given size.
func NewSimScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, combc, _, _ := screen.GetContent(x, y)
		str := string(append([]rune{mainc}, combc...))
		if mainc == 0 {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// Draw renders p over the whole screen and returns the screen lines.
func Draw(screen tcell.Screen, p tview.Primitive) []string {
	width, height := screen.Size()
	screen.Clear()
	p.SetRect(0, 0, width, height)
	p.Draw(screen)
	lines := make([]string, height)
	for y := range lines {
		lines[y] = ReadLine(screen, y, width)
	}
	return lines
}

// Key builds a key event without modifiers.
func Key(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

// Rune builds a printable key event.
func Rune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// Press sends event to the input handler of p.
func Press(p tview.Primitive, event *tcell.EventKey) {
	handler := p.InputHandler()
	if handler == nil {
		return
	}
	handler(event, func(tview.Primitive) {})
}
