package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// HasLegalMoves returns true if the piece on from has at least one legal destination.
func HasLegalMoves(board *chess.Board, piece chess.Piece, side chess.Side, from chess.Square, initialPawn bool) bool {
	found := false
	forEachDestination(board, from, func(to chess.Square) bool {
		if canPieceMove(board, piece, side, from, to, initialPawn) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Destinations returns every square IsLegal approves for the piece on from,
// in row-major order. The origin itself is never included.
func Destinations(board *chess.Board, piece chess.Piece, side chess.Side, phase chess.Phase, from chess.Square, initialPawn bool) []chess.Square {
	var squares []chess.Square
	forEachDestination(board, from, func(to chess.Square) bool {
		if IsLegal(board, piece, side, phase, from, to, initialPawn) {
			squares = append(squares, to)
		}
		return true
	})
	return squares
}

// forEachDestination calls fn for every square on the board other than
// from, stopping early when fn returns false.
func forEachDestination(board *chess.Board, from chess.Square, fn func(to chess.Square) bool) {
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			to := chess.Sq(row, col)
			if to == from {
				continue
			}
			if !fn(to) {
				return
			}
		}
	}
}
