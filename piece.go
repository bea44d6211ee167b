package bombtris

import "image/color"

type PieceType int

const (
	TypeT PieceType = iota + 1
	TypeI
	TypeO
	TypeL
	TypeJ
	TypeS
	TypeZ
	TypeBomb
)

// PieceTypes lists every catalog variant in id order.
var PieceTypes = []PieceType{TypeT, TypeI, TypeO, TypeL, TypeJ, TypeS, TypeZ, TypeBomb}

func (t PieceType) String() string {
	switch t {
	case TypeT:
		return "T"
	case TypeI:
		return "I"
	case TypeO:
		return "O"
	case TypeL:
		return "L"
	case TypeJ:
		return "J"
	case TypeS:
		return "S"
	case TypeZ:
		return "Z"
	case TypeBomb:
		return "bomb"
	}
	return "unknown"
}

// Shape is a square matrix; occupied cells carry the piece type id.
type Shape [][]int

var shapes = map[PieceType]Shape{
	TypeT:    {{0, 0, 0}, {1, 1, 1}, {0, 1, 0}},
	TypeI:    {{0, 0, 0, 0}, {2, 2, 2, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	TypeO:    {{3, 3}, {3, 3}},
	TypeL:    {{0, 0, 4}, {4, 4, 4}, {0, 0, 0}},
	TypeJ:    {{5, 0, 0}, {5, 5, 5}, {0, 0, 0}},
	TypeS:    {{0, 6, 6}, {6, 6, 0}, {0, 0, 0}},
	TypeZ:    {{7, 7, 0}, {0, 7, 7}, {0, 0, 0}},
	TypeBomb: {{8}},
}

// Colors is indexed by type id; index 0 is the empty cell.
var Colors = []color.RGBA{
	{},
	{R: 0xFF, G: 0x0D, B: 0x72, A: 0xFF},
	{R: 0x0D, G: 0xC2, B: 0xFF, A: 0xFF},
	{R: 0x0D, G: 0xFF, B: 0x72, A: 0xFF},
	{R: 0xF5, G: 0x38, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x8E, B: 0x0D, A: 0xFF},
	{R: 0xFF, G: 0xE1, B: 0x38, A: 0xFF},
	{R: 0x38, G: 0x77, B: 0xFF, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
}

// ShapeOf returns a fresh copy of the catalog shape for t.
func ShapeOf(t PieceType) Shape {
	return shapes[t].Clone()
}

func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	for i := range s {
		clone[i] = append([]int(nil), s[i]...)
	}
	return clone
}

// Rotate returns the shape turned 90 degrees clockwise.
func (s Shape) Rotate() Shape {
	n := len(s)
	rotated := make(Shape, n)
	for i := range rotated {
		rotated[i] = make([]int, n)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			rotated[x][n-1-y] = s[y][x]
		}
	}
	return rotated
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

type Piece struct {
	Type  PieceType
	Shape Shape
	Color color.RGBA
	X, Y  int
}

// NewPiece places a catalog piece horizontally centred on a board cols wide, at the top.
func NewPiece(t PieceType, cols int) Piece {
	shape := ShapeOf(t)
	return Piece{
		Type:  t,
		Shape: shape,
		Color: Colors[t],
		X:     cols/2 - len(shape[0])/2,
		Y:     0,
	}
}

func (p Piece) IsBomb() bool {
	return p.Type == TypeBomb
}

func (p Piece) clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
