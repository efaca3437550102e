package model

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	cellLive = '█'
	cellDead = '░'
)

var (
	// ErrOutOfRange is returned by Get and Set for coordinates outside the board
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidSize is returned when a board is created with a non-positive dimension
	ErrInvalidSize = errors.New("board dimensions must be positive")
)

// Board is a finite Game of Life board whose edges wrap toroidally.
//
// The board owns two equally sized buffers: cells holds the current
// generation and scratch stages the next one. Both are addressed by
// row*width + col. A Board is not safe for concurrent use.
type Board struct {
	width       int
	height      int
	cells       []bool
	scratch     []bool
	generations int
}

// NewBoard creates a size x size board, randomly populated when randomize is set
func NewBoard(size int, randomize bool) (*Board, error) {
	b, err := NewRectBoard(size, size)
	if err != nil {
		return nil, err
	}
	if randomize {
		b.Randomize(time.Now().UnixNano())
	}
	return b, nil
}

// NewRectBoard creates an all-dead board with the given dimensions
func NewRectBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewRectBoard] %dx%d", width, height)
	}
	return &Board{
		width:   width,
		height:  height,
		cells:   make([]bool, width*height),
		scratch: make([]bool, width*height),
	}, nil
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return b.width
}

// Generations returns the number of completed advances
func (b *Board) Generations() int {
	return b.generations
}

// Randomize sets every cell live with probability 1/2 using a source seeded with seed
func (b *Board) Randomize(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range b.cells {
		b.cells[i] = rng.Intn(2) == 0
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

// Get returns the state of a cell
func (b *Board) Get(row, col int) (bool, error) {
	if !b.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfRange, "[Get] (%d, %d) on %dx%d board", row, col, b.width, b.height)
	}
	return b.cells[b.index(row, col)], nil
}

// Set sets a cell to alive (true) or dead (false)
func (b *Board) Set(row, col int, alive bool) error {
	if !b.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d, %d) on %dx%d board", row, col, b.width, b.height)
	}
	b.cells[b.index(row, col)] = alive
	return nil
}

// Toggle flips a cell. Coordinates outside the board are ignored.
func (b *Board) Toggle(row, col int) {
	if b.inBounds(row, col) {
		i := b.index(row, col)
		b.cells[i] = !b.cells[i]
	}
}

// Snapshot returns a copy of the current generation, one slice per row
func (b *Board) Snapshot() [][]bool {
	rows := make([][]bool, b.height)
	for row := 0; row < b.height; row++ {
		rows[row] = make([]bool, b.width)
		copy(rows[row], b.cells[b.index(row, 0):b.index(row+1, 0)])
	}
	return rows
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// String draws the current generation with two glyphs per cell so cells come out square
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((2*b.width + 1) * b.height * 3)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			c := cellDead
			if b.cells[b.index(row, col)] {
				c = cellLive
			}
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// countNeighbors counts living neighbors, wrapping around the edges of the board
func (b *Board) countNeighbors(row, col int) int {
	count := 0
	for di := -1; di <= 1; di++ {
		r := (row + di + b.height) % b.height
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue // Skip the cell itself
			}
			c := (col + dj + b.width) % b.width
			if b.cells[b.index(r, c)] {
				count++
			}
		}
	}
	return count
}

/*
Advance computes the next generation and reports whether any cell changed.

The next generation is staged entirely in the scratch buffer before the
buffers are swapped, so every neighbor count sees the current generation.
The generation counter is incremented even when nothing changed.

A false result means a still life or an extinct board. Oscillators with a
period of 2 or more always report true, so a caller stopping on false
alone will run forever on them.
*/
func (b *Board) Advance() bool {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			i := b.index(row, col)
			b.scratch[i] = rules.ApplyConwayRules(b.countNeighbors(row, col), b.cells[i])
		}
	}

	changed := false
	for i := range b.cells {
		if b.cells[i] != b.scratch[i] {
			changed = true
			break
		}
	}

	b.cells, b.scratch = b.scratch, b.cells
	b.generations++
	return changed
}
