package game

import (
	"time"

	"github.com/qnkhuat/tetriterm/pkg/mino"
)

// Snapshot is a copy of the engine state for renderers. It shares no memory
// with the engine.
type Snapshot struct {
	Board     [][]bool
	Cells     []mino.Location
	Shape     mino.Shape
	HasPiece  bool
	Score     int
	HighScore int
	Speed     time.Duration
	State     State
}

func (s Snapshot) Rows() int { return len(s.Board) }

func (s Snapshot) Cols() int {
	if len(s.Board) == 0 {
		return 0
	}
	return len(s.Board[0])
}

// Locked reports whether loc is a locked board cell.
func (s Snapshot) Locked(loc mino.Location) bool {
	if loc.Y < 0 || loc.Y >= s.Rows() || loc.X < 0 || loc.X >= s.Cols() {
		return false
	}
	return s.Board[loc.Y][loc.X]
}

// Active reports whether the falling piece covers loc.
func (s Snapshot) Active(loc mino.Location) bool {
	if !s.HasPiece {
		return false
	}

	for _, c := range s.Cells {
		if c == loc {
			return true
		}
	}
	return false
}
