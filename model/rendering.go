package model

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Renderer draws a board and a one-line status below it
type Renderer interface {
	Display(b *Board, status string) error
	Close()
}

// TerminalRenderer draws the board on a tcell screen, two columns per cell
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminalRenderer takes ownership of screen and initializes it
func NewTerminalRenderer(screen tcell.Screen, live, dead tcell.Color) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] failed to initialize screen")
	}
	style := tcell.StyleDefault.Foreground(live).Background(dead)
	screen.SetStyle(style)
	screen.HideCursor()
	screen.Clear()
	return &TerminalRenderer{screen: screen, style: style}, nil
}

// Display renders the grid and the status line, then flushes the screen
func (r *TerminalRenderer) Display(b *Board, status string) error {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			c := cellDead
			if b.cells[b.index(row, col)] {
				c = cellLive
			}
			r.screen.SetContent(col*2, row, c, nil, r.style)
			r.screen.SetContent(col*2+1, row, c, nil, r.style)
		}
	}
	r.drawStatus(b.height, status)
	r.screen.Show()
	return nil
}

func (r *TerminalRenderer) drawStatus(y int, status string) {
	width, _ := r.screen.Size()
	x := 0
	for _, c := range status {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, c, nil, r.style)
		x++
	}
	// Clear the rest of a previous, longer status
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.style)
	}
}

// PollEvent waits for the next terminal event. It returns nil once the renderer is closed.
func (r *TerminalRenderer) PollEvent() tcell.Event {
	return r.screen.PollEvent()
}

// Sync redraws the whole screen, used after a terminal resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

// Close restores the terminal
func (r *TerminalRenderer) Close() {
	r.screen.Fini()
}

// TextRenderer writes each frame as plain text, for headless runs and pipes
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Display writes the status line followed by the board
func (r *TextRenderer) Display(b *Board, status string) error {
	if _, err := fmt.Fprintf(r.w, "%s\n%s\n", status, b); err != nil {
		return errors.Wrap(err, "[TextRenderer.Display] failed to write frame")
	}
	return nil
}

func (r *TextRenderer) Close() {}
