package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Apply relocates the piece on from to to and returns the record of the
// move. Whatever stood on to is overwritten, which is how captures happen.
// The origin is left empty. No validation is performed: callers must have
// had IsLegal approve the pair for the Moving phase.
func Apply(board *chess.Board, side chess.Side, to, from chess.Square) chess.Move {
	origin := board.Cell(from)
	dest := board.Cell(to)

	move := chess.Move{
		Piece:    origin.Piece,
		Side:     side,
		From:     from,
		To:       to,
		Captured: dest.Piece,
	}

	board.Set(to.Row, to.Col, chess.Cell{
		Piece:       origin.Piece,
		Side:        origin.Side,
		Highlighted: dest.Highlighted,
		Moved:       true,
	})
	board.Clear(from.Row, from.Col)

	return move
}
