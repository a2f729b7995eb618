package mino

import "fmt"

// Piece is the falling piece. Values are never modified in place; moves build
// a new Piece with Moved.
type Piece struct {
	Shape    Shape
	Anchor   Location
	Rotation int
}

func NewPiece(s Shape, anchor Location, rotation int) Piece {
	if !s.Valid() {
		panic(fmt.Sprintf("mino: unknown shape %d", int(s)))
	}

	return Piece{Shape: s, Anchor: anchor, Rotation: rotation}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s r%d", p.Shape, p.Anchor, p.Rotation)
}

// OccupiedCells returns the absolute cells of the piece rotated by
// rotationOffset.
func (p Piece) OccupiedCells(rotationOffset int) []Location {
	return p.OffsetCells(0, 0, rotationOffset)
}

// OffsetCells returns the cells the piece would occupy after moving the anchor
// by (dx, dy) and rotating by drot, without moving it.
func (p Piece) OffsetCells(dx int, dy int, drot int) []Location {
	config := p.Shape.Configuration(p.Rotation + drot)
	anchor := p.Anchor.Add(dx, dy)

	cells := make([]Location, len(config))
	for i, offset := range config {
		cells[i] = anchor.Add(offset.X, offset.Y)
	}

	return cells
}

// Moved returns the piece translated by (dx, dy) and rotated by drot.
func (p Piece) Moved(dx int, dy int, drot int) Piece {
	return Piece{Shape: p.Shape, Anchor: p.Anchor.Add(dx, dy), Rotation: p.Rotation + drot}
}

// Contains reports whether the piece currently covers loc.
func (p Piece) Contains(loc Location) bool {
	for _, c := range p.OccupiedCells(0) {
		if c == loc {
			return true
		}
	}

	return false
}
