package hashing

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestZobristKeyConsistency(t *testing.T) {
	z := NewZobrist(8, 8)

	key1 := z.Key(chess.NewStandardBoard(), chess.Player)
	key2 := NewZobrist(8, 8).Key(chess.NewStandardBoard(), chess.Player)

	if key1 != key2 {
		t.Errorf("Identical boards produced different keys: %x != %x", key1, key2)
	}
}

func TestZobristKeyDifferentPositions(t *testing.T) {
	z := NewZobrist(8, 8)
	board1 := chess.NewStandardBoard()

	board2 := chess.NewStandardBoard()
	board2.Clear(6, 4)
	board2.Put(4, 4, chess.Pawn, chess.Player)

	if z.Key(board1, chess.Player) == z.Key(board2, chess.Player) {
		t.Error("Different positions produced the same key")
	}
}

func TestZobristKeySideToMove(t *testing.T) {
	z := NewZobrist(8, 8)
	board := chess.NewStandardBoard()

	if z.Key(board, chess.Player) == z.Key(board, chess.Opponent) {
		t.Error("Side to move does not change the key")
	}
}

func TestZobristKeyIgnoresFlags(t *testing.T) {
	z := NewZobrist(8, 8)
	board := chess.NewStandardBoard()
	before := z.Key(board, chess.Player)

	board.SetHighlighted(4, 4, true)
	board.Set(6, 0, chess.Cell{Piece: chess.Pawn, Side: chess.Player, Moved: true})

	if after := z.Key(board, chess.Player); after != before {
		t.Errorf("Highlight or Moved flags changed the key: %x != %x", before, after)
	}
}

func TestZobristKeySides(t *testing.T) {
	z := NewZobrist(8, 8)

	board1, _ := chess.NewBoard(8, 8)
	board1.Put(3, 3, chess.Queen, chess.Player)
	board2, _ := chess.NewBoard(8, 8)
	board2.Put(3, 3, chess.Queen, chess.Opponent)

	if z.Key(board1, chess.Player) == z.Key(board2, chess.Player) {
		t.Error("Piece owner does not change the key")
	}
}

func TestRepetitionTracker(t *testing.T) {
	tracker := NewRepetitionTracker()

	if got := tracker.Add(42); got != 1 {
		t.Errorf("First Add returned %d, want 1", got)
	}
	if got := tracker.Add(42); got != 2 {
		t.Errorf("Second Add returned %d, want 2", got)
	}
	tracker.Add(7)

	if tracker.Count(42) != 2 {
		t.Errorf("Count(42) = %d, want 2", tracker.Count(42))
	}
	if tracker.Count(99) != 0 {
		t.Errorf("Count(99) = %d, want 0", tracker.Count(99))
	}
	if tracker.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", tracker.UniqueCount())
	}

	tracker.Reset()
	if tracker.UniqueCount() != 0 {
		t.Errorf("UniqueCount() after Reset = %d, want 0", tracker.UniqueCount())
	}
}
