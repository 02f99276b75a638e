package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. The two squares must share a row, a column or a diagonal.
// The destination itself is not inspected, so the first occupied square
// on a line is reachable while anything beyond it is not.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !board.Cell(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
