package mino

import (
	"strconv"
	"strings"
)

// Location is a cell coordinate. X grows to the right, Y grows downwards.
type Location struct {
	X, Y int
}

func (l Location) Add(dx, dy int) Location { return Location{l.X + dx, l.Y + dy} }

func (l Location) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(l.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(l.Y))
	b.WriteRune(')')

	return b.String()
}
