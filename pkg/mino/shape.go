package mino

import "fmt"

type Shape int

const (
	ShapeSquare Shape = iota
	ShapeTriangle
	ShapeRightL
	ShapeLeftL
	ShapeLeftZ
	ShapeRightZ
	ShapeLine

	ShapeCount = 7
)

// Configuration is one rotation state of a shape: four offsets from the anchor.
type Configuration [4]Location

// configurations holds the rotation states of every shape, indexed by rotation.
var configurations = [ShapeCount][]Configuration{
	ShapeSquare: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	ShapeTriangle: {
		{{0, 0}, {0, -1}, {1, 0}, {-1, 0}},
		{{0, 0}, {0, -1}, {1, 0}, {0, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {-1, 0}, {0, -1}, {0, 1}},
	},
	ShapeRightL: {
		{{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {0, 1}, {0, -1}, {1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {0, -1}, {-1, -1}},
	},
	ShapeLeftL: {
		{{0, 0}, {-1, -1}, {1, 0}, {-1, 0}},
		{{0, 0}, {1, -1}, {0, 1}, {0, -1}},
		{{0, 0}, {1, 1}, {1, 0}, {-1, 0}},
		{{0, 0}, {-1, 1}, {0, 1}, {0, -1}},
	},
	ShapeLeftZ: {
		{{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
		{{0, 0}, {1, 0}, {0, -1}, {1, 1}},
	},
	ShapeRightZ: {
		{{0, 0}, {1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, -1}},
	},
	ShapeLine: {
		{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
		{{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {-1, 0}, {-2, 0}},
		{{0, 2}, {0, 1}, {0, 0}, {0, -1}},
	},
}

var shapeNames = [ShapeCount]string{
	ShapeSquare:   "Square",
	ShapeTriangle: "Triangle",
	ShapeRightL:   "RightL",
	ShapeLeftL:    "LeftL",
	ShapeLeftZ:    "LeftZ",
	ShapeRightZ:   "RightZ",
	ShapeLine:     "Line",
}

var shapeStyles = [ShapeCount]string{
	ShapeSquare:   "squarePiece",
	ShapeTriangle: "trianglePiece",
	ShapeRightL:   "rightLPiece",
	ShapeLeftL:    "leftLPiece",
	ShapeLeftZ:    "leftZPiece",
	ShapeRightZ:   "rightZPiece",
	ShapeLine:     "linePiece",
}

// AllShapes lists every shape in declaration order.
var AllShapes = []Shape{ShapeSquare, ShapeTriangle, ShapeRightL, ShapeLeftL, ShapeLeftZ, ShapeRightZ, ShapeLine}

func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Style is the name renderers use to pick the shape's colors.
func (s Shape) Style() string {
	if !s.Valid() {
		return ""
	}
	return shapeStyles[s]
}

// Configurations returns the rotation table of the shape. The returned slice
// must not be modified.
func (s Shape) Configurations() []Configuration {
	if !s.Valid() {
		panic(fmt.Sprintf("mino: unknown shape %d", int(s)))
	}
	return configurations[s]
}

// Configuration returns the rotation state for an arbitrary rotation index,
// wrapping negative indexes around.
func (s Shape) Configuration(rotation int) Configuration {
	configs := s.Configurations()
	n := len(configs)
	return configs[((rotation%n)+n)%n]
}
