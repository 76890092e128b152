package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"color-game/internal/palette"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything the game reads at startup. Zero config file means Default().
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Game    GameConfig    `yaml:"game"`
	Font    string        `yaml:"font,omitempty"`
	Palette []ColorConfig `yaml:"palette,omitempty"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	ShowFPS   bool   `yaml:"show_fps"`
}

// GameConfig controls round count, pause lengths and randomness.
// InterruptiblePauses lets a quit end the feedback and game-over holds early.
type GameConfig struct {
	MaxRounds           int           `yaml:"max_rounds"`
	FeedbackPause       time.Duration `yaml:"feedback_pause"`
	GameOverPause       time.Duration `yaml:"game_over_pause"`
	InterruptiblePauses bool          `yaml:"interruptible_pauses"`
	Seed                int64         `yaml:"seed"`
}

// ColorConfig is one palette entry as written in YAML.
type ColorConfig struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// Default returns the stock 1280x800, 10-round configuration with the built-in palette.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "Color Guessing Game",
			TargetFPS: 60,
		},
		Game: GameConfig{
			MaxRounds:           10,
			FeedbackPause:       1500 * time.Millisecond,
			GameOverPause:       3 * time.Second,
			InterruptiblePauses: true,
		},
	}
}

// Load returns Default() when path is empty; otherwise it overlays the YAML file at path onto
// the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and that the palette, if set, parses and is usable.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Game.MaxRounds < 1:
		return fmt.Errorf("%w: max_rounds %d", ErrInvalid, c.Game.MaxRounds)
	case c.Game.FeedbackPause < 0 || c.Game.GameOverPause < 0:
		return fmt.Errorf("%w: negative pause", ErrInvalid)
	}
	if _, err := c.ColorPalette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ColorPalette returns the configured palette, or the built-in one when none is set.
func (c Config) ColorPalette() (palette.Palette, error) {
	if len(c.Palette) == 0 {
		return palette.Default(), nil
	}
	p := make(palette.Palette, 0, len(c.Palette))
	for _, entry := range c.Palette {
		rgb, err := palette.ParseHex(entry.Hex)
		if err != nil {
			return nil, err
		}
		p = append(p, palette.ColorOption{Name: strings.TrimSpace(entry.Name), RGB: rgb})
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
