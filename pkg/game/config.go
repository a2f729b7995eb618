package game

import (
	"time"

	"github.com/qnkhuat/tetriterm/pkg/mino"
)

const (
	DefaultStartSpeed    = 1000 * time.Millisecond
	DefaultSpeedFactor   = 0.8
	DefaultLinesPerLevel = 10
	DefaultMinSpeed      = time.Millisecond

	CommandQueueSize = 10
	EventQueueSize   = 10
)

// Config holds the rules of a game.
type Config struct {
	Rows          int           `yaml:"rows" env:"ROWS"`
	Cols          int           `yaml:"cols" env:"COLS"`
	StartSpeed    time.Duration `yaml:"start_speed" env:"START_SPEED"`
	SpeedFactor   float64       `yaml:"speed_factor" env:"SPEED_FACTOR"`
	LinesPerLevel int           `yaml:"lines_per_level" env:"LINES_PER_LEVEL"`
	MinSpeed      time.Duration `yaml:"min_speed" env:"MIN_SPEED"`
}

func DefaultConfig() Config {
	return Config{
		Rows:          mino.DefaultRows,
		Cols:          mino.DefaultCols,
		StartSpeed:    DefaultStartSpeed,
		SpeedFactor:   DefaultSpeedFactor,
		LinesPerLevel: DefaultLinesPerLevel,
		MinSpeed:      DefaultMinSpeed,
	}
}
