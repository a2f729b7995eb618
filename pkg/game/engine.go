package game

import (
	"context"
	"log"
	"time"

	"github.com/qnkhuat/tetriterm/pkg/event"
	"github.com/qnkhuat/tetriterm/pkg/mino"
)

type MoveResult int

const (
	MoveIgnored MoveResult = iota
	MoveRejected
	MoveMoved
	MoveLanded
)

func (r MoveResult) String() string {
	switch r {
	case MoveIgnored:
		return "Ignored"
	case MoveRejected:
		return "Rejected"
	case MoveMoved:
		return "Moved"
	case MoveLanded:
		return "Landed"
	default:
		return "Unknown"
	}
}

// Engine runs a single game. Its methods are not safe for concurrent use:
// either call them from one goroutine, or start Run and talk to the engine
// through Submit, Updates and Events only.
type Engine struct {
	Config Config

	Board     *mino.Board
	Piece     *mino.Piece // nil when no piece is falling
	State     State
	Score     int
	HighScore int
	Speed     time.Duration

	rand    *mino.Randomizer
	gravity gravity

	in      chan event.GameAction
	ticks   chan uint64
	updates chan Snapshot
	events  chan interface{}
	done    chan struct{}
}

type Option func(*Engine)

// WithAfterFunc replaces the timer factory used for gravity.
func WithAfterFunc(f AfterFunc) Option {
	return func(e *Engine) {
		e.gravity.afterFunc = f
	}
}

func WithRandomizer(r *mino.Randomizer) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

func NewEngine(c Config, opts ...Option) *Engine {
	e := &Engine{
		Config:  c,
		Board:   mino.NewBoard(c.Rows, c.Cols),
		State:   StateNoGame,
		Speed:   c.StartSpeed,
		gravity: gravity{afterFunc: realAfterFunc},
		in:      make(chan event.GameAction, CommandQueueSize),
		ticks:   make(chan uint64, 1),
		updates: make(chan Snapshot, 1),
		events:  make(chan interface{}, EventQueueSize),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.rand == nil {
		e.rand = mino.NewRandomizer(0)
	}

	return e
}

// SpawnPoint is the anchor of every new piece.
func (e *Engine) SpawnPoint() mino.Location {
	return mino.Location{X: e.Config.Cols / 2, Y: 1}
}

// NewGame discards the current game, if any, and starts a fresh one.
func (e *Engine) NewGame() {
	e.gravity.cancel()

	if e.Score > e.HighScore {
		e.HighScore = e.Score
	}

	e.Board.Reset()
	e.Score = 0
	e.Speed = e.Config.StartSpeed
	e.Piece = nil
	e.State = StatePlaying

	log.Printf("New game %dx%d, gravity %s", e.Config.Cols, e.Config.Rows, e.Speed)
	e.emit(&event.NewGameEvent{Event: event.Event{Message: "New game"}})

	e.SpawnPiece(e.rand.Piece(e.SpawnPoint()), true)
}

// SpawnPiece installs p as the falling piece. A piece that overlaps the stack
// ends the game. When resetTimer is false the gravity timer keeps running
// untouched.
func (e *Engine) SpawnPiece(p mino.Piece, resetTimer bool) {
	if mino.OverlapsLocked(p.OccupiedCells(0), e.Board) {
		e.gameOver()
		return
	}

	e.Piece = &p

	if resetTimer {
		e.gravity.arm(e.Speed, e.fire)
	}
}

func (e *Engine) gameOver() {
	e.State = StateNoGame
	if e.Score > e.HighScore {
		e.HighScore = e.Score
	}
	e.gravity.cancel()
	e.Piece = nil

	log.Printf("Game over, score %d, high score %d", e.Score, e.HighScore)
	e.emit(&event.GameOverEvent{Event: event.Event{Message: "Game over"}, Score: e.Score, HighScore: e.HighScore})
}

// ApplyMove moves the falling piece by (dx, dy) and rotates it by drot.
//
// Moves into a wall, and sideways or rotating moves into the stack, are
// rejected without side effects. A move below the bottom, or a downward move
// into the stack, locks the piece where it is and spawns the next one.
func (e *Engine) ApplyMove(dx int, dy int, drot int) MoveResult {
	if e.Piece == nil {
		return MoveIgnored
	}

	p := *e.Piece

	switch mino.Classify(p.OffsetCells(dx, dy, drot), e.Board, dy) {
	case mino.CollisionWall, mino.CollisionBlocked:
		return MoveRejected
	case mino.CollisionFloor:
		e.LockAndClear(p.OccupiedCells(0))
		e.SpawnPiece(e.rand.Piece(e.SpawnPoint()), true)
		return MoveLanded
	}

	e.SpawnPiece(p.Moved(dx, dy, drot), dy == 1)
	return MoveMoved
}

// LockAndClear locks cells into the board, clears completed rows and scores
// them. It returns the number of rows cleared.
func (e *Engine) LockAndClear(cells []mino.Location) int {
	e.Board.Lock(cells)

	rows := e.Board.CompletedRows()
	if len(rows) == 0 {
		return 0
	}

	prev := e.Score
	e.Score += len(rows)
	e.Speed = Speed(e.Speed, prev, e.Score, e.Config.LinesPerLevel, e.Config.SpeedFactor, e.Config.MinSpeed)
	e.Board.Collapse(rows)

	log.Printf("Cleared %d lines, score %d, gravity %s", len(rows), e.Score, e.Speed)
	e.emit(&event.LinesClearedEvent{Event: event.Event{Message: "Lines cleared"}, Lines: len(rows), Score: e.Score})

	return len(rows)
}

// Handle applies a player action. Moves are ignored unless a piece is
// falling in a running game.
func (e *Engine) Handle(a event.GameAction) MoveResult {
	if a == event.ActionNewGame {
		e.NewGame()
		return MoveIgnored
	}

	if e.State != StatePlaying || e.Piece == nil {
		return MoveIgnored
	}

	switch a {
	case event.ActionRotate:
		return e.ApplyMove(0, 0, 1)
	case event.ActionSoftDrop:
		return e.ApplyMove(0, 1, 0)
	case event.ActionMoveLeft:
		return e.ApplyMove(-1, 0, 0)
	case event.ActionMoveRight:
		return e.ApplyMove(1, 0, 0)
	default:
		log.Printf("Unknown action %d", a)
		return MoveIgnored
	}
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:     e.Board.Cells(),
		Score:     e.Score,
		HighScore: e.HighScore,
		Speed:     e.Speed,
		State:     e.State,
	}

	if e.Piece != nil {
		s.HasPiece = true
		s.Shape = e.Piece.Shape
		s.Cells = e.Piece.OccupiedCells(0)
	}

	return s
}

// TimerLive reports whether a gravity tick is scheduled.
func (e *Engine) TimerLive() bool {
	return e.gravity.live()
}

func (e *Engine) fire(generation uint64) {
	select {
	case e.ticks <- generation:
	case <-e.done:
	}
}

func (e *Engine) emit(ev interface{}) {
	select {
	case e.events <- ev:
	default:
		log.Printf("Dropped event %T", ev)
	}
}

func (e *Engine) publish() {
	s := e.Snapshot()

	select {
	case e.updates <- s:
		return
	default:
	}

	select {
	case <-e.updates:
	default:
	}

	select {
	case e.updates <- s:
	default:
	}
}

// Run serializes submitted actions and gravity ticks until ctx is done. It
// publishes a snapshot after every step. Run must be called at most once.
func (e *Engine) Run(ctx context.Context) {
	defer close(e.done)

	e.publish()

	for {
		select {
		case <-ctx.Done():
			e.gravity.cancel()
			return
		case a := <-e.in:
			e.Handle(a)
		case gen := <-e.ticks:
			if !e.gravity.current(gen) {
				continue
			}

			e.ApplyMove(0, 1, 0)
		}

		e.publish()
	}
}

// Submit queues a player action for Run. It returns false once Run has
// stopped.
func (e *Engine) Submit(a event.GameAction) bool {
	select {
	case <-e.done:
		return false
	default:
	}

	select {
	case e.in <- a:
		return true
	case <-e.done:
		return false
	}
}

// Updates delivers the latest snapshot published by Run.
func (e *Engine) Updates() <-chan Snapshot {
	return e.updates
}

// Events delivers *event.NewGameEvent, *event.GameOverEvent and
// *event.LinesClearedEvent values.
func (e *Engine) Events() <-chan interface{} {
	return e.events
}
