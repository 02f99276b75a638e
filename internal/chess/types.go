// Package chess provides the board model: piece and side enumerations,
// cells and the rectangular board that holds them.
package chess

import "fmt"

// Side identifies one of the two competing players. It doubles as the
// occupant tag of a cell, where None marks an empty square.
type Side int

const (
	None Side = iota
	Player
	Opponent
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case Player:
		return "Player"
	case Opponent:
		return "Opponent"
	}
	return "None"
}

// Code returns the single character used for a side in the grid stream.
func (s Side) Code() byte {
	switch s {
	case Player:
		return 'P'
	case Opponent:
		return 'O'
	}
	return '-'
}

// Opposite returns the other player. None has no opposite and is returned unchanged.
func (s Side) Opposite() Side {
	switch s {
	case Player:
		return Opponent
	case Opponent:
		return Player
	}
	return None
}

// Forward returns the row delta a pawn of this side advances by.
// Player starts at the bottom of the board and moves towards row 0.
func (s Side) Forward() int {
	if s == Player {
		return -1
	}
	return 1
}

// Piece represents a piece kind.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a letter back to a piece kind.
// Both cases are accepted; anything unknown is Empty.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return Empty
}

// Phase is the state of the selection/move cycle.
type Phase int

const (
	// Selecting validates that an origin's occupant can act at all.
	Selecting Phase = iota
	// Moving validates one specific origin to destination pair.
	Moving
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	if p == Moving {
		return "moving"
	}
	return "selecting"
}

// HighlightMode selects whether the highlighter sets or clears flags.
type HighlightMode int

const (
	Highlight HighlightMode = iota
	Dehighlight
)

// Square addresses one cell by row and column, both zero based.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for building a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Offset returns the square shifted by the given deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// StandardSize is the edge length of a regular board.
const StandardSize = 8

// MinBoardSize is the smallest board on which the two armies do not overlap.
const MinBoardSize = 5

// backRank is the standard back-rank order, left to right.
var backRank = []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
