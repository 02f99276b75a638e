package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// canPieceMove checks the movement geometry of a piece from one square to
// another distinct, on-board square.
func canPieceMove(board *chess.Board, pieceType chess.Piece, side chess.Side, from, to chess.Square, initialPawn bool) bool {
	// No piece may land on one of its own side.
	if board.Cell(to).Side == side {
		return false
	}

	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch pieceType {
	case chess.Pawn:
		return canPawnMove(board, side, from, to, initialPawn)

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff != rowDiff && colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		return colDiff <= 1 && rowDiff <= 1
	}

	return false
}
