package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// canPawnMove applies the pawn rules: one square forward onto an empty
// square, two squares forward from the initial position through and onto
// empty squares, or one square diagonally forward onto an opposing piece.
func canPawnMove(board *chess.Board, side chess.Side, from, to chess.Square, initialPawn bool) bool {
	dir := side.Forward()
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	target := board.Cell(to)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rowDiff == 2*dir:
		if !initialPawn {
			return false
		}
		return board.Cell(from.Offset(dir, 0)).IsEmpty() && target.IsEmpty()

	case colDiff == 1 && rowDiff == dir:
		return target.Side == side.Opposite()
	}

	return false
}

// IsInitialPawn derives the double-step permission for the piece about to
// act: it must be a pawn of the given side standing on that side's home
// row. With strict set the pawn must also never have moved, so a pawn that
// finds its way back to the home row does not regain the privilege.
func IsInitialPawn(board *chess.Board, piece chess.Piece, side chess.Side, from chess.Square, strict bool) bool {
	if piece != chess.Pawn || !board.Contains(from) {
		return false
	}
	if from.Row != board.HomeRow(side) {
		return false
	}
	if strict && board.Cell(from).Moved {
		return false
	}
	return true
}
