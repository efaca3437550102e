package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Seed patterns accepted by Config.Pattern
const (
	PatternRandom  = "random"
	PatternNoise   = "noise"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternBlank   = "blank"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Duration is a time.Duration that reads and writes as a string such as "50ms"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "[Duration.UnmarshalJSON] duration must be a string")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] failed to parse %q", s)
	}
	d.Duration = parsed
	return nil
}

// Config holds the configuration for the game
type Config struct {
	Size           int      `json:"size"`
	StepDelay      Duration `json:"step_delay"`
	Pattern        string   `json:"pattern"`
	Seed           int64    `json:"seed"` // 0 derives the seed from the clock
	MaxGenerations int      `json:"max_generations"`
	Headless       bool     `json:"headless"`
	WaitForKey     bool     `json:"wait_for_key"`
	LiveColor      string   `json:"live_color"`
	DeadColor      string   `json:"dead_color"`
	LogLevel       string   `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           45,
		StepDelay:      Duration{50 * time.Millisecond},
		Pattern:        PatternRandom,
		MaxGenerations: 0, // run until the board stops changing
		WaitForKey:     true,
		LiveColor:      "aqua",
		DeadColor:      "black",
		LogLevel:       LevelInfo,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", c.Size)
	case c.StepDelay.Duration < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] step_delay must not be negative, got %s", c.StepDelay)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}

	switch c.Pattern {
	case PatternRandom, PatternNoise, PatternGlider, PatternBlinker, PatternBlock, PatternBlank:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	for _, name := range []string{c.LiveColor, c.DeadColor} {
		if _, err := ParseColor(name); err != nil {
			return errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}
	return nil
}

// ParseColor resolves a colour name or #rrggbb value
func ParseColor(name string) (tcell.Color, error) {
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault && name != "default" {
		return color, errors.Errorf("[ParseColor] unknown colour %q", name)
	}
	return color, nil
}
