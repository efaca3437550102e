package model

import (
	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.15
)

var (
	gliderPattern = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	blinkerPattern = [][]bool{
		{true, true, true},
	}
	blockPattern = [][]bool{
		{true, true},
		{true, true},
	}
)

// AddGlider places a glider heading down and to the right with its top-left corner at (row, col)
func (b *Board) AddGlider(row, col int) error {
	return errors.Wrap(b.addPattern(row, col, gliderPattern), "[AddGlider]")
}

// AddBlinker places a horizontal blinker oscillator starting at (row, col)
func (b *Board) AddBlinker(row, col int) error {
	return errors.Wrap(b.addPattern(row, col, blinkerPattern), "[AddBlinker]")
}

// AddBlock places a 2x2 block still life with its top-left corner at (row, col)
func (b *Board) AddBlock(row, col int) error {
	return errors.Wrap(b.addPattern(row, col, blockPattern), "[AddBlock]")
}

func (b *Board) addPattern(row, col int, pattern [][]bool) error {
	if !b.inBounds(row, col) || !b.inBounds(row+len(pattern)-1, col+len(pattern[0])-1) {
		return errors.Wrapf(ErrOutOfRange, "%dx%d pattern at (%d, %d)", len(pattern[0]), len(pattern), row, col)
	}
	for dr, cells := range pattern {
		for dc, alive := range cells {
			if err := b.Set(row+dr, col+dc, alive); err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedNoise replaces the board with a coherent-noise pattern: a cell is live
// where the 2D Perlin noise sampled at its coordinates is positive.
// Identical seeds produce identical boards.
func (b *Board) SeedNoise(seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			b.cells[b.index(row, col)] = p.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale) > 0
		}
	}
}
