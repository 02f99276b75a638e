package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// EmptyBoard returns an 8x8 board with no pieces.
func EmptyBoard(t *testing.T) *chess.Board {
	t.Helper()
	b, err := chess.NewBoard(chess.StandardSize, chess.StandardSize)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

// Placement puts one piece on one square.
type Placement struct {
	Row, Col int
	Piece    chess.Piece
	Side     chess.Side
}

// Place puts every placement onto the board and returns it.
func Place(b *chess.Board, placements ...Placement) *chess.Board {
	for _, p := range placements {
		b.Put(p.Row, p.Col, p.Piece, p.Side)
	}
	return b
}

// Squares builds a square list from (row, col) pairs.
func Squares(coords ...[2]int) []chess.Square {
	squares := make([]chess.Square, 0, len(coords))
	for _, c := range coords {
		squares = append(squares, chess.Sq(c[0], c[1]))
	}
	return squares
}
