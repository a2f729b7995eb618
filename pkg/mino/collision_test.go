package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionPredicates(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	b.Lock([]Location{{5, 10}})

	assert.True(t, OutOfHorizontalBounds([]Location{{-1, 0}}, b.Cols()))
	assert.True(t, OutOfHorizontalBounds([]Location{{10, 0}}, b.Cols()))
	assert.False(t, OutOfHorizontalBounds([]Location{{0, 0}, {9, 0}}, b.Cols()))

	assert.True(t, BelowBottom([]Location{{0, 20}}, b.Rows()))
	assert.False(t, BelowBottom([]Location{{0, 19}, {0, -3}}, b.Rows()))

	assert.True(t, OverlapsLocked([]Location{{5, 10}}, b))
	assert.False(t, OverlapsLocked([]Location{{5, 11}, {-1, 10}}, b))
}

func TestClassify(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	b.Lock([]Location{{5, 10}})

	tests := []struct {
		name  string
		cells []Location
		dy    int
		want  Collision
	}{
		{"free", []Location{{4, 4}}, 1, CollisionNone},
		{"above top is free", []Location{{4, -2}}, 0, CollisionNone},
		{"wall before floor", []Location{{-1, 20}}, 1, CollisionWall},
		{"wall before overlap", []Location{{10, 0}, {5, 10}}, 0, CollisionWall},
		{"below bottom", []Location{{4, 20}}, 1, CollisionFloor},
		{"below bottom while rotating", []Location{{4, 20}}, 0, CollisionFloor},
		{"overlap moving down", []Location{{5, 10}}, 1, CollisionFloor},
		{"overlap moving sideways", []Location{{5, 10}}, 0, CollisionBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.cells, b, tt.dy))
		})
	}
}
