package mino

import (
	"math/rand"
	"sync"
	"time"
)

// Randomizer picks shapes uniformly at random. A zero seed seeds from the clock.
type Randomizer struct {
	Shapes []Shape

	r *rand.Rand
	*sync.Mutex
}

func NewRandomizer(seed int64) *Randomizer {
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	return &Randomizer{Shapes: AllShapes, r: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}
}

// Take returns the next random shape.
func (r *Randomizer) Take() Shape {
	r.Lock()
	defer r.Unlock()

	return r.Shapes[r.r.Intn(len(r.Shapes))]
}

// Piece creates a piece of a random shape at start with rotation 0.
func (r *Randomizer) Piece(start Location) Piece {
	return NewPiece(r.Take(), start, 0)
}
