package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// BoardConfig holds settings for the board and the rules played on it.
type BoardConfig struct {
	// Size is the edge length of the square board.
	Size int

	// StartFEN replaces the standard setup when non-empty. Only valid on
	// a standard-size board.
	StartFEN string

	// StrictFirstMove allows the pawn double step only on a pawn's true
	// first move instead of whenever it stands on its home row.
	StrictFirstMove bool
}

// NewBoardConfig creates a BoardConfig with default values.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{
		Size: chess.StandardSize,
	}
}

// Validate checks that the board configuration is valid.
func (b *BoardConfig) Validate() error {
	if b.Size < chess.MinBoardSize {
		return fmt.Errorf("board size %d below minimum %d: %w",
			b.Size, chess.MinBoardSize, errors.ErrInvalidConfig)
	}
	if b.StartFEN != "" && b.Size != chess.StandardSize {
		return fmt.Errorf("FEN start position needs a %dx%d board, got size %d: %w",
			chess.StandardSize, chess.StandardSize, b.Size, errors.ErrInvalidConfig)
	}
	return nil
}
