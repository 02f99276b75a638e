package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// SetHighlights projects the validator onto the highlight flags: every
// destination IsLegal approves for the piece on from is highlighted or
// cleared according to mode. Piece and side fields are never touched.
//
// Calling it with Dehighlight and the same arguments on an otherwise
// unchanged board exactly reverses a Highlight call.
func SetHighlights(board *chess.Board, from chess.Square, piece chess.Piece, side chess.Side, mode chess.HighlightMode, phase chess.Phase, initialPawn bool) {
	on := mode == chess.Highlight
	forEachDestination(board, from, func(to chess.Square) bool {
		if IsLegal(board, piece, side, phase, from, to, initialPawn) {
			board.SetHighlighted(to.Row, to.Col, on)
		}
		return true
	})
}
