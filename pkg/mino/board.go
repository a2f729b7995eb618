package mino

import (
	"sort"
	"strings"
)

const (
	DefaultRows = 20
	DefaultCols = 10
)

// Board is the grid of locked cells. Row 0 is the top.
type Board struct {
	rows  int
	cols  int
	cells [][]bool
}

func NewBoard(rows int, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.Reset()

	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Reset clears every cell.
func (b *Board) Reset() {
	b.cells = make([][]bool, b.rows)
	for y := range b.cells {
		b.cells[y] = make([]bool, b.cols)
	}
}

func (b *Board) InBounds(loc Location) bool {
	return loc.X >= 0 && loc.X < b.cols && loc.Y >= 0 && loc.Y < b.rows
}

func (b *Board) IsOccupied(loc Location) bool {
	if !b.InBounds(loc) {
		return false
	}

	return b.cells[loc.Y][loc.X]
}

// Lock marks the cells as occupied. Cells outside the board are dropped.
func (b *Board) Lock(cells []Location) {
	for _, c := range cells {
		if !b.InBounds(c) {
			continue
		}

		b.cells[c.Y][c.X] = true
	}
}

func (b *Board) RowFilled(y int) bool {
	for x := 0; x < b.cols; x++ {
		if !b.cells[y][x] {
			return false
		}
	}

	return true
}

// CompletedRows returns the indexes of filled rows, bottom first.
func (b *Board) CompletedRows() []int {
	var rows []int
	for y := b.rows - 1; y >= 0; y-- {
		if b.RowFilled(y) {
			rows = append(rows, y)
		}
	}

	return rows
}

// Collapse removes the given rows and adds as many empty rows at the top.
// Rows are removed from the bottom up so earlier removals do not shift the
// indexes still to be removed.
func (b *Board) Collapse(rows []int) {
	if len(rows) == 0 {
		return
	}

	sorted := make([]int, len(rows))
	copy(sorted, rows)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	removed := 0
	last := -1
	for _, y := range sorted {
		if y < 0 || y >= b.rows || y == last {
			continue
		}
		last = y

		b.cells = append(b.cells[:y], b.cells[y+1:]...)
		removed++
	}

	fresh := make([][]bool, removed, b.rows)
	for i := range fresh {
		fresh[i] = make([]bool, b.cols)
	}
	b.cells = append(fresh, b.cells...)
}

// Cells returns a copy of the grid indexed [y][x].
func (b *Board) Cells() [][]bool {
	out := make([][]bool, b.rows)
	for y := range b.cells {
		out[y] = make([]bool, b.cols)
		copy(out[y], b.cells[y])
	}

	return out
}

func (b *Board) Render() string {
	var s strings.Builder

	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			if b.cells[y][x] {
				s.WriteRune('█')
			} else {
				s.WriteRune('.')
			}
		}

		if y < b.rows-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}
