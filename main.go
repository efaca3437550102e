package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "Conway's Game of Life on a board whose edges wrap around"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: defaultConfigFile, Usage: "JSON configuration file, skipped when missing"},
		cli.IntFlag{Name: "size", Usage: "board side length in cells"},
		cli.DurationFlag{Name: "delay", Usage: "pause between generations"},
		cli.Int64Flag{Name: "seed", Usage: "seed for the random and noise patterns, 0 uses the clock"},
		cli.StringFlag{Name: "pattern", Usage: "initial pattern: random, noise, glider, blinker, block or blank"},
		cli.IntFlag{Name: "max-generations", Usage: "stop after this many generations, 0 runs until the board stops changing"},
		cli.BoolFlag{Name: "headless", Usage: "print frames as plain text instead of drawing on the terminal"},
		cli.BoolFlag{Name: "no-wait", Usage: "exit without waiting for a key once the board stops changing"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
	}
	app.Action = run
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) {
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// applyFlags overrides config values with the flags given on the command line
func applyFlags(c *cli.Context, config *utils.Config) {
	if c.IsSet("size") {
		config.Size = c.Int("size")
	}
	if c.IsSet("delay") {
		config.StepDelay.Duration = c.Duration("delay")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("max-generations") {
		config.MaxGenerations = c.Int("max-generations")
	}
	if c.Bool("headless") {
		config.Headless = true
	}
	if c.Bool("no-wait") {
		config.WaitForKey = false
	}
	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}
}

func run(c *cli.Context) error {
	config, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, &config)
	if err = config.Validate(); err != nil {
		return err
	}

	logger, err := utils.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		return err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, err := newBoard(config, seed)
	if err != nil {
		return err
	}
	level.Info(logger).Log(
		"msg", "starting game",
		"size", config.Size,
		"pattern", config.Pattern,
		"seed", seed,
		"living", board.CountLivingCells(),
	)

	var (
		renderer model.Renderer
		screen   *model.TerminalRenderer
	)
	if config.Headless {
		renderer = model.NewTextRenderer(os.Stdout)
	} else {
		if screen, err = newScreen(config); err != nil {
			return err
		}
		renderer = screen
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := newGame(config, board, renderer, logger)
	err = runGame(ctx, g, screen)
	logFinalStats(logger, g)
	return err
}

// newScreen opens the terminal with the configured colours
func newScreen(config utils.Config) (*model.TerminalRenderer, error) {
	live, err := utils.ParseColor(config.LiveColor)
	if err != nil {
		return nil, err
	}
	dead, err := utils.ParseColor(config.DeadColor)
	if err != nil {
		return nil, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[newScreen] failed to create screen")
	}
	return model.NewTerminalRenderer(screen, live, dead)
}

func logFinalStats(logger log.Logger, g *game) {
	level.Info(logger).Log(
		"msg", "game over",
		"reason", g.stopReason,
		"generations", g.board.Generations(),
		"living", g.board.CountLivingCells(),
		"avg_population", fmt.Sprintf("%.1f", g.stats.AveragePopulation),
		"runtime", g.stats.Runtime().Round(time.Millisecond),
	)
	fmt.Printf("Final stats: %d generations in %.1f seconds (%s)\n",
		g.board.Generations(), g.stats.Runtime().Seconds(), g.stopReason)
}
