package gui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetriterm/pkg/event"
	"github.com/qnkhuat/tetriterm/pkg/game"
	"github.com/qnkhuat/tetriterm/pkg/mino"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want event.GameAction
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), event.ActionRotate, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), event.ActionSoftDrop, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), event.ActionMoveLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), event.ActionMoveRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), event.ActionRotate, true},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), event.ActionSoftDrop, true},
		{tcell.NewEventKey(tcell.KeyRune, 'H', tcell.ModNone), event.ActionMoveLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), event.ActionMoveRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), event.ActionNewGame, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), event.ActionUnknown, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), event.ActionUnknown, false},
	}

	for _, tt := range tests {
		got, ok := ActionFor(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Name())
		assert.Equal(t, tt.want, got, tt.ev.Name())
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
}

func TestImportThemes(t *testing.T) {
	theme, err := ImportThemes("basic", nil)
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic, theme)

	theme, err = ImportThemes("mono", nil)
	require.NoError(t, err)
	assert.Equal(t, ThemeMono, theme)

	custom := ThemeMono.Hex()
	custom.Name = "basic"
	custom.Line = "#ff0000"
	theme, err = ImportThemes("basic", []ThemeHex{custom})
	require.NoError(t, err)
	assert.Equal(t, int32(0xff0000), theme.Line.Hex())

	_, err = ImportThemes("missing", []ThemeHex{custom})
	assert.ErrorIs(t, err, ErrNoTheme)
}

func TestThemeHex(t *testing.T) {
	hex := ThemeBasic.Hex()
	assert.Equal(t, "basic", hex.Name)
	assert.Equal(t, "#0", hex.Text)
	assert.Equal(t, hex, hex.Theme().Hex())
	assert.Equal(t, tcell.ColorDefault, hex.Theme().Text)
}

func TestShapeColor(t *testing.T) {
	assert.Equal(t, ThemeBasic.Line, ThemeBasic.ShapeColor(mino.ShapeLine))
	assert.Equal(t, ThemeBasic.Square, ThemeBasic.ShapeColor(mino.ShapeSquare))
	assert.Equal(t, ThemeBasic.Locked, ThemeBasic.ShapeColor(mino.Shape(42)))
}

func testSnapshot() game.Snapshot {
	b := mino.NewBoard(mino.DefaultRows, mino.DefaultCols)
	b.Lock([]mino.Location{{X: 0, Y: 19}})
	p := mino.NewPiece(mino.ShapeLine, mino.Location{X: 5, Y: 1}, 0)

	return game.Snapshot{
		Board:     b.Cells(),
		Cells:     p.OccupiedCells(0),
		Shape:     mino.ShapeLine,
		HasPiece:  true,
		Score:     3,
		HighScore: 12,
		Speed:     800 * time.Millisecond,
		State:     game.StatePlaying,
	}
}

func background(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestCellColor(t *testing.T) {
	snap := testSnapshot()

	assert.Equal(t, ThemeBasic.Line, CellColor(snap, mino.Location{X: 5, Y: 1}, ThemeBasic))
	assert.Equal(t, ThemeBasic.Locked, CellColor(snap, mino.Location{X: 0, Y: 19}, ThemeBasic))
	assert.Equal(t, ThemeBasic.Empty, CellColor(snap, mino.Location{X: 0, Y: 0}, ThemeBasic))

	snap.HasPiece = false
	assert.Equal(t, ThemeBasic.Empty, CellColor(snap, mino.Location{X: 5, Y: 1}, ThemeBasic))
}

func TestDrawBoard(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	snap := testSnapshot()
	w, h := BoardSize(snap)
	assert.Equal(t, 22, w)
	assert.Equal(t, 22, h)

	DrawBoard(s, 0, 0, snap, ThemeBasic)

	r, _, _, _ := s.GetContent(0, 0)
	assert.Equal(t, '┌', r)
	r, _, _, _ = s.GetContent(w-1, h-1)
	assert.Equal(t, '┘', r)

	// Cell (x, y) starts at column 1+2x of row 1+y
	assert.Equal(t, ThemeBasic.Empty, background(s, 1, 1))
	assert.Equal(t, ThemeBasic.Line, background(s, 11, 2))
	assert.Equal(t, ThemeBasic.Line, background(s, 12, 2))
	assert.Equal(t, ThemeBasic.Line, background(s, 15, 2))
	assert.Equal(t, ThemeBasic.Locked, background(s, 1, 20))
	assert.Equal(t, ThemeBasic.Empty, background(s, 3, 20))
}

func TestDrawStats(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	DrawStats(s, 0, 0, testSnapshot(), "alice", ThemeBasic)

	line := func(y int) string {
		var out []rune
		for x := 0; x < 20; x++ {
			r, _, _, _ := s.GetContent(x, y)
			out = append(out, r)
		}
		return string(out)
	}

	assert.Contains(t, line(0), "alice")
	assert.Contains(t, line(1), "3")
	assert.Contains(t, line(2), "12")
	assert.Contains(t, line(3), "800ms")
	assert.Contains(t, line(4), "Playing")
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Playing", StatusText(game.StatePlaying))
	assert.Equal(t, "Press n to start", StatusText(game.StateNoGame))
}
