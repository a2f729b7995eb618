package gui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetriterm/pkg/game"
	"github.com/qnkhuat/tetriterm/pkg/mino"
)

// Each board cell is two columns wide so it looks square in a terminal
const cellWidth = 2

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawCell fills one board cell with its background color
func drawCell(s tcell.Screen, x, y int, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for i := 0; i < cellWidth; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// CellColor returns the color of the board cell at loc. The falling piece
// is drawn over the locked cells.
func CellColor(snap game.Snapshot, loc mino.Location, t Theme) tcell.Color {
	switch {
	case snap.Active(loc):
		return t.ShapeColor(snap.Shape)
	case snap.Locked(loc):
		return t.Locked
	default:
		return t.Empty
	}
}

// BoardSize returns the width and height DrawBoard needs, frame included
func BoardSize(snap game.Snapshot) (int, int) {
	return snap.Cols()*cellWidth + 2, snap.Rows() + 2
}

// drawFrame draws a box of size w*h with its top left corner at x, y
func drawFrame(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		drawRune(s, i, y, style, '─')
		drawRune(s, i, y+h-1, style, '─')
	}
	for j := y + 1; j < y+h-1; j++ {
		drawRune(s, x, j, style, '│')
		drawRune(s, x+w-1, j, style, '│')
	}
	drawRune(s, x, y, style, '┌')
	drawRune(s, x+w-1, y, style, '┐')
	drawRune(s, x, y+h-1, style, '└')
	drawRune(s, x+w-1, y+h-1, style, '┘')
}

// DrawBoard draws the framed board with its top left corner at x, y.
// Cells of the falling piece above the first row are not drawn.
func DrawBoard(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	w, h := BoardSize(snap)
	drawFrame(s, x, y, w, h, tcell.StyleDefault.Foreground(t.Border))

	for row := 0; row < snap.Rows(); row++ {
		for col := 0; col < snap.Cols(); col++ {
			bg := CellColor(snap, mino.Location{X: col, Y: row}, t)
			drawCell(s, x+1+col*cellWidth, y+1+row, bg)
		}
	}
}

// StatusText describes the game state for the player
func StatusText(state game.State) string {
	switch state {
	case game.StatePlaying:
		return "Playing"
	case game.StatePaused:
		return "Paused"
	default:
		return "Press n to start"
	}
}

// statLines returns the label/value pairs shown next to the board
func statLines(snap game.Snapshot, name string) [][2]string {
	return [][2]string{
		{"Player", name},
		{"Score", fmt.Sprint(snap.Score)},
		{"High", fmt.Sprint(snap.HighScore)},
		{"Speed", snap.Speed.Round(time.Millisecond).String()},
		{"", StatusText(snap.State)},
	}
}

// DrawStats draws the player name, scores and speed at x, y
func DrawStats(s tcell.Screen, x, y int, snap game.Snapshot, name string, t Theme) {
	labelStyle := tcell.StyleDefault.Foreground(t.Label)
	textStyle := tcell.StyleDefault.Foreground(t.Text)

	for i, l := range statLines(snap, name) {
		drawText(s, x, y+i, labelStyle, fmt.Sprintf("%-7s", l[0]))
		drawText(s, x+7, y+i, textStyle, l[1])
	}
}
