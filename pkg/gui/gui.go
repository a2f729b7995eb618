// Package gui draws tetriterm boards on a tcell screen and maps key presses
// to game actions.
package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetriterm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{r: 'n', a: event.ActionNewGame},
	{r: 'N', a: event.ActionNewGame},
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	if b.k != 0 && b.k != ev.Key() {
		return false
	}
	if b.r != 0 && (ev.Key() != tcell.KeyRune || b.r != ev.Rune()) {
		return false
	}
	return b.m == 0 || b.m == ev.Modifiers()
}

// ActionFor returns the game action bound to ev
func ActionFor(ev *tcell.EventKey) (event.GameAction, bool) {
	for _, bind := range keybindings {
		if bind.matches(ev) {
			return bind.a, true
		}
	}
	return event.ActionUnknown, false
}

// IsQuit reports whether ev asks to leave the game
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
