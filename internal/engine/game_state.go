package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// NextSide returns the side whose turn follows current.
func NextSide(current chess.Side) chess.Side {
	return current.Opposite()
}
