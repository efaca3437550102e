package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulationRenderer(t *testing.T, width, height int) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := NewTerminalRenderer(screen, tcell.ColorAqua, tcell.ColorBlack)
	if err != nil {
		t.Fatalf("NewTerminalRenderer: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(r.Close)
	return r, screen
}

func TestTerminalRendererDisplay(t *testing.T) {
	r, screen := newSimulationRenderer(t, 20, 5)
	b := mustBoard(t, 3, 2)
	mustSet(t, b, [2]int{0, 1}, [2]int{1, 2})

	if err := r.Display(b, "gen 0"); err != nil {
		t.Fatalf("Display: %v", err)
	}

	for row, cells := range b.Snapshot() {
		for col, alive := range cells {
			want := cellDead
			if alive {
				want = cellLive
			}
			for _, x := range []int{col * 2, col*2 + 1} {
				got, _, style, _ := screen.GetContent(x, row)
				if got != want {
					t.Errorf("screen (%d, %d) = %q, want %q", x, row, got, want)
				}
				if fg, bg, _ := style.Decompose(); fg != tcell.ColorAqua || bg != tcell.ColorBlack {
					t.Errorf("screen (%d, %d) colours = %v on %v", x, row, fg, bg)
				}
			}
		}
	}

	var status strings.Builder
	for x := 0; x < len("gen 0"); x++ {
		c, _, _, _ := screen.GetContent(x, b.Height())
		status.WriteRune(c)
	}
	if status.String() != "gen 0" {
		t.Errorf("status line = %q, want %q", status.String(), "gen 0")
	}
}

func TestTerminalRendererShorterStatus(t *testing.T) {
	r, screen := newSimulationRenderer(t, 20, 5)
	b := mustBoard(t, 2, 2)
	if err := r.Display(b, "a long status"); err != nil {
		t.Fatal(err)
	}
	if err := r.Display(b, "short"); err != nil {
		t.Fatal(err)
	}
	if c, _, _, _ := screen.GetContent(len("short")+1, b.Height()); c != ' ' {
		t.Errorf("stale status rune %q left behind", c)
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	b := mustBoard(t, 2, 1)
	mustSet(t, b, [2]int{0, 0})
	if err := NewTextRenderer(&buf).Display(b, "status"); err != nil {
		t.Fatal(err)
	}
	if want := "status\n██░░\n\n"; buf.String() != want {
		t.Errorf("frame = %q, want %q", buf.String(), want)
	}
}
