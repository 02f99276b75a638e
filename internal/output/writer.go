// Package output renders board snapshots for external consumers.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

// Snapshot is everything a consumer may want to know after a board-affecting step.
type Snapshot struct {
	Board    *chess.Board
	ToMove   chess.Side
	Round    int
	LastMove *chess.Move

	// Position hash and how often that position has occurred
	Key         uint64
	Repetitions int
}

// BoardWriter is the interface for writing snapshots to output.
// Different implementations handle different formats (grids, JSON).
type BoardWriter interface {
	// WriteSnapshot writes one snapshot and makes it visible to the reader.
	WriteSnapshot(s Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}

// NewWriter returns the writer selected by the configuration.
func NewWriter(cfg *config.Config) BoardWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewGridWriter(cfg.OutputFile)
}

// GridWriter writes three grids per snapshot: piece letters, side codes and
// highlight flags, one board row per line with space-separated tokens.
type GridWriter struct {
	w *bufio.Writer
}

// NewGridWriter creates a new grid writer.
func NewGridWriter(w io.Writer) *GridWriter {
	return &GridWriter{w: bufio.NewWriter(w)}
}

// WriteSnapshot writes the three grids and flushes them.
func (gw *GridWriter) WriteSnapshot(s Snapshot) error {
	b := s.Board
	gw.writeGrid(b, func(c chess.Cell) byte { return c.Piece.Letter() })
	gw.writeGrid(b, func(c chess.Cell) byte { return c.Side.Code() })
	gw.writeGrid(b, func(c chess.Cell) byte {
		if c.Highlighted {
			return '1'
		}
		return '0'
	})
	return gw.Flush()
}

func (gw *GridWriter) writeGrid(b *chess.Board, code func(chess.Cell) byte) {
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if col > 0 {
				gw.w.WriteByte(' ')
			}
			gw.w.WriteByte(code(b.At(row, col)))
		}
		gw.w.WriteByte('\n')
	}
}

// Flush flushes buffered grid lines.
func (gw *GridWriter) Flush() error {
	return gw.w.Flush()
}
