package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetriterm/pkg/mino"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string
	Empty    tcell.Color
	Locked   tcell.Color
	Square   tcell.Color
	Triangle tcell.Color
	RightL   tcell.Color
	LeftL    tcell.Color
	LeftZ    tcell.Color
	RightZ   tcell.Color
	Line     tcell.Color
	Border   tcell.Color
	Label    tcell.Color
	Text     tcell.Color
}

// ThemeHex is the serialized form of a Theme, as found in config files
type ThemeHex struct {
	Name     string `json:"name" yaml:"name"`
	Empty    string `json:"empty" yaml:"empty"`
	Locked   string `json:"locked" yaml:"locked"`
	Square   string `json:"square" yaml:"square"`
	Triangle string `json:"triangle" yaml:"triangle"`
	RightL   string `json:"rightL" yaml:"rightL"`
	LeftL    string `json:"leftL" yaml:"leftL"`
	LeftZ    string `json:"leftZ" yaml:"leftZ"`
	RightZ   string `json:"rightZ" yaml:"rightZ"`
	Line     string `json:"line" yaml:"line"`
	Border   string `json:"border" yaml:"border"`
	Label    string `json:"label" yaml:"label"`
	Text     string `json:"text" yaml:"text"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:     t.Name,
		Empty:    fmtHex(t.Empty.Hex()),
		Locked:   fmtHex(t.Locked.Hex()),
		Square:   fmtHex(t.Square.Hex()),
		Triangle: fmtHex(t.Triangle.Hex()),
		RightL:   fmtHex(t.RightL.Hex()),
		LeftL:    fmtHex(t.LeftL.Hex()),
		LeftZ:    fmtHex(t.LeftZ.Hex()),
		RightZ:   fmtHex(t.RightZ.Hex()),
		Line:     fmtHex(t.Line.Hex()),
		Border:   fmtHex(t.Border.Hex()),
		Label:    fmtHex(t.Label.Hex()),
		Text:     fmtHex(t.Text.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		Name:     t.Name,
		Empty:    tcell.GetColor(t.Empty),
		Locked:   tcell.GetColor(t.Locked),
		Square:   tcell.GetColor(t.Square),
		Triangle: tcell.GetColor(t.Triangle),
		RightL:   tcell.GetColor(t.RightL),
		LeftL:    tcell.GetColor(t.LeftL),
		LeftZ:    tcell.GetColor(t.LeftZ),
		RightZ:   tcell.GetColor(t.RightZ),
		Line:     tcell.GetColor(t.Line),
		Border:   tcell.GetColor(t.Border),
		Label:    tcell.GetColor(t.Label),
		Text:     tcell.GetColor(t.Text),
	}
}

// ShapeColor returns the color used to paint the falling piece of shape s
func (t Theme) ShapeColor(s mino.Shape) tcell.Color {
	switch s {
	case mino.ShapeSquare:
		return t.Square
	case mino.ShapeTriangle:
		return t.Triangle
	case mino.ShapeRightL:
		return t.RightL
	case mino.ShapeLeftL:
		return t.LeftL
	case mino.ShapeLeftZ:
		return t.LeftZ
	case mino.ShapeRightZ:
		return t.RightZ
	case mino.ShapeLine:
		return t.Line
	default:
		return t.Locked
	}
}

// Themes lists the built in themes
var Themes = []Theme{ThemeBasic, ThemeMono}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:     "basic",
	Empty:    tcell.Color235,
	Locked:   tcell.Color247,
	Square:   tcell.Color226,
	Triangle: tcell.Color129,
	RightL:   tcell.Color208,
	LeftL:    tcell.Color27,
	LeftZ:    tcell.Color160,
	RightZ:   tcell.Color40,
	Line:     tcell.Color45,
	Border:   tcell.Color240,
	Label:    tcell.Color247,
	Text:     tcell.ColorDefault,
}

// ThemeMono paints every piece the same, for terminals with few colors
var ThemeMono = Theme{
	Name:     "mono",
	Empty:    tcell.ColorBlack,
	Locked:   tcell.ColorSilver,
	Square:   tcell.ColorWhite,
	Triangle: tcell.ColorWhite,
	RightL:   tcell.ColorWhite,
	LeftL:    tcell.ColorWhite,
	LeftZ:    tcell.ColorWhite,
	RightZ:   tcell.ColorWhite,
	Line:     tcell.ColorWhite,
	Border:   tcell.ColorSilver,
	Label:    tcell.ColorSilver,
	Text:     tcell.ColorDefault,
}
