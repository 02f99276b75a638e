// Package engine provides move validation, threat highlighting and board
// manipulation on top of the chess board model.
package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsLegal decides whether the piece of the given kind and side standing on
// from may act on to during the given phase. It never mutates the board.
//
// In the Selecting phase, passing from == to asks whether the occupant has
// any legal destination at all. For every other destination both phases
// apply the same movement rules. In the Moving phase from == to is never
// legal.
//
// initialPawn enables the two-square pawn advance for this call.
func IsLegal(board *chess.Board, piece chess.Piece, side chess.Side, phase chess.Phase, from, to chess.Square, initialPawn bool) bool {
	if !board.Contains(from) || !board.Contains(to) {
		return false
	}
	if piece == chess.Empty || side == chess.None {
		return false
	}

	origin := board.Cell(from)
	if origin.IsEmpty() || origin.Side != side {
		return false
	}

	if from == to {
		if phase != chess.Selecting {
			return false
		}
		return HasLegalMoves(board, piece, side, from, initialPawn)
	}

	return canPieceMove(board, piece, side, from, to, initialPawn)
}
