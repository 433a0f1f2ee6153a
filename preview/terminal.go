// Package preview renders streamed frames in the terminal, for working on a
// show without the LED hardware.
package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-g-everett/ledtween/stream"
)

// Terminal is a stream.Sink that draws each pixel as one background-coloured
// cell, wrapping at the screen width.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal opens the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}

	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a Terminal drawing on an initialised screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	t := new(Terminal)
	t.screen = screen
	return t
}

// Send draws a frame. Pixels that don't fit on the screen are dropped.
func (t *Terminal) Send(f *stream.Frame) error {
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return nil
	}

	t.screen.Clear()
	for i, p := range f.Pixels {
		x, y := i%width, i/width
		if y >= height {
			break
		}
		r, g, b := p.Clamped().RGB255()
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		t.screen.SetContent(x, y, ' ', nil, style)
	}
	t.screen.Show()
	return nil
}

// Watch calls quit when Escape, Ctrl-C or q is pressed. It returns once the
// screen is closed.
func (t *Terminal) Watch(quit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}
