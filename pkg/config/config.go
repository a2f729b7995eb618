// Package config loads tetriterm settings from defaults, an optional YAML
// file and TETRITERM_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/qnkhuat/tetriterm/pkg/game"
	"github.com/qnkhuat/tetriterm/pkg/gui"
)

const EnvPrefix = "TETRITERM_"

var ErrInvalid = errors.New("config: invalid")

// Settings are the values that can also come from the environment.
type Settings struct {
	Game  game.Config `yaml:"game" envPrefix:"GAME_"`
	Seed  int64       `yaml:"seed" env:"SEED"`
	Theme string      `yaml:"theme" env:"THEME"`
	Log   string      `yaml:"log" env:"LOG"`
}

type Config struct {
	Settings `yaml:",inline"`
	Themes   []gui.ThemeHex `yaml:"themes"`
}

func Default() Config {
	return Config{
		Settings: Settings{
			Game:  game.DefaultConfig(),
			Theme: gui.ThemeBasic.Name,
			Log:   "./tetriterm.log",
		},
	}
}

// Load reads path (when not empty) over the defaults, then applies the
// environment. A missing file is an error only when required is true.
func Load(path string, required bool) (Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &c); err != nil {
				return c, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	if err := env.ParseWithOptions(&c.Settings, env.Options{Prefix: EnvPrefix}); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	g := c.Game

	switch {
	case g.Rows < 4:
		return fmt.Errorf("%w: rows must be at least 4, got %d", ErrInvalid, g.Rows)
	case g.Cols < 6:
		return fmt.Errorf("%w: cols must be at least 6, got %d", ErrInvalid, g.Cols)
	case g.StartSpeed <= 0:
		return fmt.Errorf("%w: start speed must be positive, got %s", ErrInvalid, g.StartSpeed)
	case g.MinSpeed <= 0:
		return fmt.Errorf("%w: min speed must be positive, got %s", ErrInvalid, g.MinSpeed)
	case g.SpeedFactor <= 0 || g.SpeedFactor > 1:
		return fmt.Errorf("%w: speed factor must be in (0, 1], got %g", ErrInvalid, g.SpeedFactor)
	case g.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalid, g.LinesPerLevel)
	}

	return nil
}

// ResolveTheme returns the configured theme, looking in the file's themes
// before the built in ones.
func (c Config) ResolveTheme() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}
