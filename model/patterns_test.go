package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestAddPatternOutOfRange(t *testing.T) {
	b := mustBoard(t, 5, 5)
	tests := []struct {
		name string
		add  func() error
	}{
		{"glider past the right edge", func() error { return b.AddGlider(0, 3) }},
		{"glider past the bottom edge", func() error { return b.AddGlider(3, 0) }},
		{"blinker at negative column", func() error { return b.AddBlinker(1, -1) }},
		{"block past the corner", func() error { return b.AddBlock(4, 4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error = %v, want ErrOutOfRange", err)
			}
		})
	}
	if n := b.CountLivingCells(); n != 0 {
		t.Errorf("rejected patterns left %d living cells", n)
	}
}

func TestAddPatterns(t *testing.T) {
	b := mustBoard(t, 10, 10)
	if err := b.AddGlider(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.AddBlock(7, 7); err != nil {
		t.Fatal(err)
	}
	if err := b.AddBlinker(5, 0); err != nil {
		t.Fatal(err)
	}
	if n := b.CountLivingCells(); n != 5+4+3 {
		t.Errorf("CountLivingCells() = %d, want 12", n)
	}
}

func TestSeedNoise(t *testing.T) {
	a := mustBoard(t, 40, 30)
	b := mustBoard(t, 40, 30)
	a.SeedNoise(99)
	b.SeedNoise(99)
	if a.String() != b.String() {
		t.Error("same noise seed produced different boards")
	}
	if n := a.CountLivingCells(); n == 0 || n == 40*30 {
		t.Errorf("noise board has %d living cells of %d", n, 40*30)
	}
}
