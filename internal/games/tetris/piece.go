package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Type identifies a tetromino. The same value is written into the grid when
// a piece locks and selects the render color.
type Type uint8

const (
	Empty Type = iota
	I
	O
	T
	S
	Z
	J
	L
)

// TypeCount is the number of non-empty piece types.
const TypeCount = 7

// String returns the single-letter name of the type.
func (t Type) String() string {
	switch t {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "."
	}
}

// Color returns the screen color for cells of this type.
func (t Type) Color() core.Color {
	switch t {
	case I:
		return core.ColorCyan
	case O:
		return core.ColorYellow
	case T:
		return core.ColorMagenta
	case S:
		return core.ColorGreen
	case Z:
		return core.ColorRed
	case J:
		return core.ColorBlue
	case L:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Shape is a bounding-box matrix. Zero entries are empty sub-cells; every
// occupied sub-cell holds the piece's type.
type Shape [][]Type

// templates holds the canonical matrices, indexed by Type.
// Never hand these out directly; use TemplateFor.
var templates = [TypeCount + 1]Shape{
	nil,
	{{I, I, I, I}},
	{{O, O}, {O, O}},
	{{0, T, 0}, {T, T, T}},
	{{0, S, S}, {S, S, 0}},
	{{Z, Z, 0}, {0, Z, Z}},
	{{J, 0, 0}, {J, J, J}},
	{{0, 0, L}, {L, L, L}},
}

// TemplateFor returns a fresh copy of the canonical shape for t,
// or nil for Empty and unknown types.
func TemplateFor(t Type) Shape {
	if t == Empty || int(t) > TypeCount {
		return nil
	}
	return templates[t].Clone()
}

// Height returns the number of rows in the shape.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for r, row := range s {
		out[r] = append([]Type(nil), row...)
	}
	return out
}

// Rotate returns the shape turned 90 degrees clockwise.
// An R x C source becomes C x R with dst[i][j] = src[R-1-j][i].
func (s Shape) Rotate() Shape {
	rows, cols := s.Height(), s.Width()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]Type, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and values.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Piece is the falling tetromino. X and Y locate the top-left corner of
// the shape's bounding box in grid coordinates.
type Piece struct {
	Shape Shape
	X, Y  int
	Type  Type
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// SpawnX returns the column that horizontally centers a shape of the
// given width on the board.
func SpawnX(width int) int {
	return (Cols - width) / 2
}
