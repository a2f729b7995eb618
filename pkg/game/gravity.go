package game

import "time"

// Timer is a scheduled gravity tick that can be cancelled.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// gravity owns the single live timer of a game. Each arm gets a new
// generation; a fire whose generation is no longer current is stale.
type gravity struct {
	afterFunc  AfterFunc
	timer      Timer
	generation uint64
}

func (g *gravity) cancel() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}

	g.generation++
}

func (g *gravity) arm(d time.Duration, fire func(generation uint64)) {
	g.cancel()

	gen := g.generation
	g.timer = g.afterFunc(d, func() { fire(gen) })
}

func (g *gravity) live() bool {
	return g.timer != nil
}

func (g *gravity) current(generation uint64) bool {
	return g.timer != nil && generation == g.generation
}
