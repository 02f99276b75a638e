// Package hashing provides position keys and repetition tracking.
package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

const zobristSeed = 0x9E3779B97F4A7C15

// numSides is the number of sides that can own a piece.
const numSides = 2

// Zobrist holds random keys for every (square, piece, side) combination on a
// board of fixed dimensions. Highlight flags and Moved flags are not part of
// a position.
type Zobrist struct {
	rows, cols int
	pieces     []uint64
	toMove     uint64
}

// NewZobrist creates keys for a rows x cols board. The keys are derived from
// a fixed seed so equal positions hash equally across runs.
func NewZobrist(rows, cols int) *Zobrist {
	rng := uint64(zobristSeed)
	next := func() uint64 {
		rng ^= rng << 13
		rng ^= rng >> 7
		rng ^= rng << 17
		return rng
	}

	z := &Zobrist{
		rows:   rows,
		cols:   cols,
		pieces: make([]uint64, rows*cols*int(chess.NumPieceValues)*numSides),
	}
	for i := range z.pieces {
		z.pieces[i] = next()
	}
	z.toMove = next()
	return z
}

// Key hashes the occupied squares and the side to move. The board must have
// the dimensions the keys were created for.
func (z *Zobrist) Key(board *chess.Board, toMove chess.Side) uint64 {
	var key uint64
	for row := 0; row < z.rows; row++ {
		for col := 0; col < z.cols; col++ {
			cell := board.At(row, col)
			if cell.IsEmpty() {
				continue
			}
			key ^= z.pieces[z.index(row, col, cell.Piece, cell.Side)]
		}
	}
	if toMove == chess.Opponent {
		key ^= z.toMove
	}
	return key
}

func (z *Zobrist) index(row, col int, piece chess.Piece, side chess.Side) int {
	s := 0
	if side == chess.Opponent {
		s = 1
	}
	return ((row*z.cols+col)*int(chess.NumPieceValues)+int(piece))*numSides + s
}

// RepetitionTracker counts how often each position key has been seen.
type RepetitionTracker struct {
	seen map[uint64]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{seen: make(map[uint64]int)}
}

// Add records one occurrence of key and returns how many times it has now
// been seen, including this one.
func (r *RepetitionTracker) Add(key uint64) int {
	r.seen[key]++
	return r.seen[key]
}

// Count returns how many times key has been seen.
func (r *RepetitionTracker) Count(key uint64) int {
	return r.seen[key]
}

// UniqueCount returns the number of distinct positions seen.
func (r *RepetitionTracker) UniqueCount() int {
	return len(r.seen)
}

// Reset forgets every position.
func (r *RepetitionTracker) Reset() {
	r.seen = make(map[uint64]int)
}
