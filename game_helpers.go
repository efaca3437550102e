package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Why a game ended
const (
	stopStable         = "stable"
	stopMaxGenerations = "generation limit"
	stopQuit           = "quit"
)

var errQuit = errors.New("player quit")

type game struct {
	config     utils.Config
	board      *model.Board
	renderer   model.Renderer
	stats      *utils.Stats
	logger     log.Logger
	stopReason string
}

func newGame(config utils.Config, board *model.Board, renderer model.Renderer, logger log.Logger) *game {
	return &game{
		config:     config,
		board:      board,
		renderer:   renderer,
		stats:      utils.NewStats(),
		logger:     logger,
		stopReason: stopQuit,
	}
}

// newBoard builds the initial board for the configured pattern
func newBoard(config utils.Config, seed int64) (*model.Board, error) {
	board, err := model.NewBoard(config.Size, false)
	if err != nil {
		return nil, err
	}

	var (
		size   = config.Size
		middle = size / 2
	)
	switch config.Pattern {
	case utils.PatternRandom:
		board.Randomize(seed)
	case utils.PatternNoise:
		board.SeedNoise(seed)
	case utils.PatternGlider:
		err = board.AddGlider(0, 0)
	case utils.PatternBlinker:
		err = board.AddBlinker(middle, middle-1)
	case utils.PatternBlock:
		err = board.AddBlock(middle-1, middle-1)
	case utils.PatternBlank:
	default:
		err = errors.Errorf("[newBoard] unknown pattern %q", config.Pattern)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[newBoard] %s does not fit a %dx%d board", config.Pattern, size, size)
	}
	return board, nil
}

// statusLine describes the board for the line under it
func statusLine(board *model.Board, stats *utils.Stats) string {
	return fmt.Sprintf("Game of Life: %dx%d; Number of generations: %d | Living: %d | %.1f gen/sec",
		board.Width(), board.Height(), board.Generations(), stats.Population, stats.GenerationsPerSecond)
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

/*
simulate renders the board, waits for the step delay and advances it
until a generation changes nothing or the generation limit is reached.

The board only stops by itself on still lifes and extinction. Oscillators
keep reporting changes, so without a generation limit they run until the
player quits.
*/
func (g *game) simulate(ctx context.Context) error {
	lastFrame := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.stats.Update(g.board.Generations(), g.board.CountLivingCells(), time.Since(lastFrame))
		lastFrame = time.Now()
		if err := g.renderer.Display(g.board, statusLine(g.board, g.stats)); err != nil {
			return err
		}
		if err := sleep(ctx, g.config.StepDelay.Duration); err != nil {
			return err
		}

		if g.config.MaxGenerations > 0 && g.board.Generations() >= g.config.MaxGenerations {
			g.stopReason = stopMaxGenerations
			return nil
		}

		changed := g.board.Advance()
		level.Debug(g.logger).Log("msg", "advanced", "generation", g.board.Generations(), "changed", changed)
		if !changed {
			g.stopReason = stopStable
			return nil
		}
	}
}

// play simulates the board, shows the final frame and waits for a key when asked to
func (g *game) play(ctx context.Context, keys <-chan struct{}) error {
	if err := g.simulate(ctx); err != nil {
		return err
	}

	status := fmt.Sprintf("Game of Life: %s after %d generations", g.stopReason, g.board.Generations())
	wait := g.config.WaitForKey && keys != nil
	if wait {
		status += ", press any key"
	}
	if err := g.renderer.Display(g.board, status); err != nil {
		return err
	}
	if !wait {
		return nil
	}

	select {
	case <-keys:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pumpEvents reads terminal events until the screen is closed or the player quits.
// Other key presses are handed to whoever is waiting on keys.
func pumpEvents(screen *model.TerminalRenderer, keys chan<- struct{}) error {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return errQuit
			}
			select {
			case keys <- struct{}{}:
			default:
			}
		}
	}
}

// runGame plays the game to the end. With a screen, terminal events are read
// alongside the simulation and the screen is closed when the game ends.
// Quitting and interrupts are not errors.
func runGame(ctx context.Context, g *game, screen *model.TerminalRenderer) error {
	var err error
	if screen == nil {
		err = g.play(ctx, nil)
		g.renderer.Close()
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		keys := make(chan struct{})
		eg.Go(func() error {
			return pumpEvents(screen, keys)
		})
		eg.Go(func() error {
			// Closing the screen ends the event pump
			defer screen.Close()
			return g.play(egCtx, keys)
		})
		err = eg.Wait()
	}

	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		level.Info(g.logger).Log("msg", "stopped early", "generation", g.board.Generations())
		return nil
	}
	return err
}
