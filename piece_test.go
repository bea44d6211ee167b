package bombtris_test

import (
	"testing"

	"github.com/jauhararifin/bombtris"
	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	t.Run("four turns restore every shape", func(t *testing.T) {
		for _, pieceType := range bombtris.PieceTypes {
			shape := bombtris.ShapeOf(pieceType)
			rotated := shape.Rotate().Rotate().Rotate().Rotate()
			assert.True(t, shape.Equal(rotated), "%s", pieceType)
		}
	})

	t.Run("bomb is rotation invariant", func(t *testing.T) {
		bomb := bombtris.ShapeOf(bombtris.TypeBomb)
		assert.True(t, bomb.Equal(bomb.Rotate()))
	})

	t.Run("clockwise quarter turn", func(t *testing.T) {
		rotated := bombtris.ShapeOf(bombtris.TypeT).Rotate()
		assert.Equal(t, bombtris.Shape{{0, 1, 0}, {1, 1, 0}, {0, 1, 0}}, rotated)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		shape := bombtris.ShapeOf(bombtris.TypeL)
		shape.Rotate()
		assert.Equal(t, bombtris.ShapeOf(bombtris.TypeL), shape)
	})
}

func TestNewPiece(t *testing.T) {
	tests := []struct {
		pieceType bombtris.PieceType
		wantX     int
	}{
		{bombtris.TypeO, 4},
		{bombtris.TypeI, 3},
		{bombtris.TypeT, 4},
		{bombtris.TypeS, 4},
		{bombtris.TypeBomb, 5},
	}

	for _, tt := range tests {
		t.Run(tt.pieceType.String(), func(t *testing.T) {
			piece := bombtris.NewPiece(tt.pieceType, 10)
			assert.Equal(t, tt.wantX, piece.X)
			assert.Equal(t, 0, piece.Y)
			assert.Equal(t, bombtris.Colors[tt.pieceType], piece.Color)
			assert.Equal(t, tt.pieceType == bombtris.TypeBomb, piece.IsBomb())
		})
	}
}

func TestShapeOfReturnsCopy(t *testing.T) {
	shape := bombtris.ShapeOf(bombtris.TypeO)
	shape[0][0] = 0

	assert.Equal(t, 3, bombtris.ShapeOf(bombtris.TypeO)[0][0])
}

func TestCatalogIds(t *testing.T) {
	for _, pieceType := range bombtris.PieceTypes {
		for _, row := range bombtris.ShapeOf(pieceType) {
			assert.Equal(t, len(bombtris.ShapeOf(pieceType)), len(row), "%s is not square", pieceType)
			for _, value := range row {
				if value != 0 {
					assert.Equal(t, int(pieceType), value)
				}
			}
		}
	}
}
