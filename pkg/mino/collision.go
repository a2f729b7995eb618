package mino

// Collision is the classification of a candidate cell set.
type Collision int

const (
	// CollisionNone means every cell is free.
	CollisionNone Collision = iota
	// CollisionWall means a cell is left or right of the board.
	CollisionWall
	// CollisionFloor means the candidate must land: a cell is below the bottom,
	// or it overlaps the stack while moving down.
	CollisionFloor
	// CollisionBlocked means a sideways or rotating candidate overlaps the stack.
	CollisionBlocked
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionWall:
		return "Wall"
	case CollisionFloor:
		return "Floor"
	case CollisionBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

func OutOfHorizontalBounds(cells []Location, cols int) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= cols {
			return true
		}
	}

	return false
}

func BelowBottom(cells []Location, rows int) bool {
	for _, c := range cells {
		if c.Y >= rows {
			return true
		}
	}

	return false
}

// OverlapsLocked reports whether any in-bounds cell is already locked.
func OverlapsLocked(cells []Location, b *Board) bool {
	for _, c := range cells {
		if b.IsOccupied(c) {
			return true
		}
	}

	return false
}

// Classify checks cells against the board. Bounds are checked before overlap,
// and an overlap only counts as a landing when the move is downwards (dy == 1).
func Classify(cells []Location, b *Board, dy int) Collision {
	if OutOfHorizontalBounds(cells, b.Cols()) {
		return CollisionWall
	}

	overlaps := OverlapsLocked(cells, b)
	if BelowBottom(cells, b.Rows()) || (dy == 1 && overlaps) {
		return CollisionFloor
	}

	if overlaps {
		return CollisionBlocked
	}

	return CollisionNone
}
