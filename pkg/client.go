package pkg

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetriterm/pkg/event"
	"github.com/qnkhuat/tetriterm/pkg/game"
	"github.com/qnkhuat/tetriterm/pkg/gui"
)

const (
	LogTimeFormat = "3:04:05"
	statsWidth    = 24
	messageRows   = 4
	confirmPage   = "confirm"
	gamePage      = "game"
)

// GameEngine is the part of game.Engine the client drives
type GameEngine interface {
	Run(ctx context.Context)
	Submit(a event.GameAction) bool
	Updates() <-chan game.Snapshot
	Events() <-chan interface{}
}

type Client struct {
	App      *tview.Application
	Board    *tview.Box
	Stats    *tview.Box
	Messages *tview.TextView
	Layout   *tview.Grid
	Pages    *tview.Pages
	Engine   GameEngine
	Theme    gui.Theme
	Name     string

	// Only touched from the tview event loop
	last              game.Snapshot
	wroteFirstMessage bool
}

// NewClient builds the screen for a board of rows*cols cells
func NewClient(e GameEngine, theme gui.Theme, name string, rows, cols int) *Client {
	cl := &Client{
		App:    tview.NewApplication(),
		Engine: e,
		Theme:  theme,
		Name:   name,
	}

	cl.Board = tview.NewBox()
	cl.Board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		gui.DrawBoard(screen, x, y, cl.last, cl.Theme)
		return x, y, width, height
	})

	cl.Stats = tview.NewBox()
	cl.Stats.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		gui.DrawStats(screen, x+2, y+1, cl.last, cl.Name, cl.Theme)
		return x, y, width, height
	})

	cl.Messages = tview.NewTextView().
		SetScrollable(true).
		SetWrap(true)
	cl.Messages.SetTextColor(theme.Text)

	boardWidth, boardHeight := cols*2+2, rows+2
	cl.Layout = tview.NewGrid().
		SetRows(-1, boardHeight, messageRows, -1).
		SetColumns(-1, boardWidth, statsWidth, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(cl.Stats, 1, 2, 1, 1, 0, 0, false).
		AddItem(cl.Messages, 2, 1, 1, 2, 0, 0, false).
		AddItem(tview.NewBox(), 3, 0, 1, 4, 0, 0, false)

	cl.Pages = tview.NewPages().
		AddPage(gamePage, cl.Layout, true, true)

	cl.App.SetInputCapture(cl.handleKey)
	cl.App.SetRoot(cl.Pages, true)

	return cl
}

func (cl *Client) confirming() bool {
	return cl.Pages.HasPage(confirmPage)
}

func (cl *Client) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	// The modal handles its own keys
	if cl.confirming() {
		return ev
	}

	if gui.IsQuit(ev) {
		cl.App.Stop()
		return nil
	}

	a, ok := gui.ActionFor(ev)
	if !ok {
		return ev
	}

	if a == event.ActionNewGame {
		cl.requestNewGame()
		return nil
	}

	// Moves only make sense while a piece is falling
	if cl.last.State == game.StatePlaying && cl.last.HasPiece {
		cl.Engine.Submit(a)
	}
	return nil
}

// requestNewGame starts a game right away when none is running, and asks
// first otherwise.
func (cl *Client) requestNewGame() {
	if cl.last.State != game.StatePlaying {
		cl.Engine.Submit(event.ActionNewGame)
		return
	}

	modal := tview.NewModal().
		SetText(string(ActionNewGamePrompt)).
		AddButtons([]string{ActionNewGameAccept, ActionNewGameReject}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			cl.confirmNewGame(buttonLabel == ActionNewGameAccept)
		})
	cl.Pages.AddPage(confirmPage, modal, false, true)
}

func (cl *Client) confirmNewGame(ok bool) {
	cl.Pages.RemovePage(confirmPage)
	if ok {
		cl.Engine.Submit(event.ActionNewGame)
	}
}

func (cl *Client) render(snap game.Snapshot) {
	cl.last = snap
}

// logMessage appends a timestamped line to the message pane
func (cl *Client) logMessage(message string) {
	var prefix string
	if cl.wroteFirstMessage {
		prefix = "\n"
	}
	cl.wroteFirstMessage = true

	fmt.Fprint(cl.Messages, prefix+time.Now().Format(LogTimeFormat)+" "+message)
	cl.Messages.ScrollToEnd()
}

// describe turns an engine event into a line for the message pane
func describe(ev interface{}) (string, bool) {
	switch e := ev.(type) {
	case *event.NewGameEvent:
		return e.Message, true
	case *event.GameOverEvent:
		msg := fmt.Sprintf("%s Score %d, best %d", e.Message, e.Score, e.HighScore)
		if e.Score > 0 && e.Score >= e.HighScore {
			msg += ". New high score!"
		}
		return msg, true
	case *event.LinesClearedEvent:
		if e.Lines == 1 {
			return "Cleared 1 line", true
		}
		return fmt.Sprintf("Cleared %d lines", e.Lines), true
	default:
		return "", false
	}
}

func (cl *Client) HandleUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-cl.Engine.Updates():
			if !ok {
				return
			}
			cl.App.QueueUpdateDraw(func() {
				cl.render(snap)
			})
		}
	}
}

func (cl *Client) HandleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-cl.Engine.Events():
			if !ok {
				return
			}
			msg, known := describe(ev)
			if !known {
				log.Printf("Unknown event %T", ev)
				continue
			}
			cl.App.QueueUpdateDraw(func() {
				cl.logMessage(msg)
			})
		}
	}
}

// Run drives the engine and the screen until the player quits or ctx ends
func (cl *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go cl.Engine.Run(ctx)
	go cl.HandleUpdates(ctx)
	go cl.HandleEvents(ctx)
	go func() {
		<-ctx.Done()
		cl.App.Stop()
	}()

	cl.logMessage(string(ActionWelcome))
	log.Printf("Client started for %s", cl.Name)
	return cl.App.Run()
}
