package game

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func newStandardGame() *Game {
	return New(chess.NewStandardBoard(), chess.Player)
}

func TestGame_Round(t *testing.T) {
	g := newStandardGame()

	err := g.Select(chess.Sq(6, 4))
	testutil.AssertNoError(t, err, "Select(6,4)")
	testutil.AssertTrue(t, g.Pending(), "pending after select")
	testutil.AssertEqual(t, g.Phase(), chess.Selecting)
	testutil.AssertEqual(t, g.Board().Highlighted(), testutil.Squares([2]int{4, 4}, [2]int{5, 4}), "pawn highlights")

	move, err := g.Move(chess.Sq(4, 4))
	testutil.AssertNoError(t, err, "Move(4,4)")
	testutil.AssertEqual(t, move, chess.Move{Piece: chess.Pawn, Side: chess.Player, From: chess.Sq(6, 4), To: chess.Sq(4, 4)})
	testutil.AssertEqual(t, g.Turn(), chess.Opponent)
	testutil.AssertEqual(t, g.Phase(), chess.Selecting)
	testutil.AssertFalse(t, g.Pending(), "pending after move")
	testutil.AssertEqual(t, len(g.Board().Highlighted()), 0, "highlights after move")
	testutil.AssertEqual(t, g.Round(), 1)
	testutil.AssertEqual(t, g.History(), []chess.Move{move})

	last, ok := g.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last, move)
}

func TestGame_TurnOwnership(t *testing.T) {
	g := newStandardGame()

	err := g.Select(chess.Sq(1, 4))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "selecting an opponent pawn on the player's turn")
	testutil.AssertEqual(t, len(g.Board().Highlighted()), 0, "no highlights after rejected selection")

	_, err = g.Move(chess.Sq(2, 4))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "moving an opponent pawn")
	testutil.AssertEqual(t, g.Turn(), chess.Player, "turn after rejected move")
	testutil.AssertEqual(t, g.Board().At(1, 4).Piece, chess.Pawn)
	testutil.AssertTrue(t, g.Board().IsEmptyAt(2, 4))
}

func TestGame_IllegalDestination(t *testing.T) {
	g := newStandardGame()
	before := g.Board().Copy()

	testutil.AssertNoError(t, g.Select(chess.Sq(7, 1)))
	_, err := g.Move(chess.Sq(4, 1))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	testutil.AssertEqual(t, g.Turn(), chess.Player)
	testutil.AssertEqual(t, len(g.Board().Highlighted()), 0, "highlights cleared after rejected move")
	testutil.AssertEqual(t, g.Board().At(7, 1), before.At(7, 1))
	testutil.AssertEqual(t, len(g.History()), 0)
}

func TestGame_OutOfBounds(t *testing.T) {
	t.Run("origin", func(t *testing.T) {
		g := newStandardGame()
		err := g.Select(chess.Sq(9, 1))
		testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds)

		var moveErr *errors.MoveError
		if !stderrors.As(err, &moveErr) {
			t.Fatalf("Select error %v is not a MoveError", err)
		}
		testutil.AssertEqual(t, moveErr.Round, 1)
		testutil.AssertEqual(t, moveErr.Phase, "selecting")
		testutil.AssertEqual(t, [2]int{moveErr.Row, moveErr.Col}, [2]int{9, 1})

		_, err = g.Move(chess.Sq(5, 1))
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "round with an off-board origin")
		testutil.AssertFalse(t, g.Pending())
	})

	t.Run("destination", func(t *testing.T) {
		g := newStandardGame()
		testutil.AssertNoError(t, g.Select(chess.Sq(6, 0)))
		_, err := g.Move(chess.Sq(-1, 0))
		testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds)

		var moveErr *errors.MoveError
		if stderrors.As(err, &moveErr) {
			testutil.AssertEqual(t, moveErr.Phase, "moving")
		}
		testutil.AssertEqual(t, len(g.Board().Highlighted()), 0, "highlights cleared")
		testutil.AssertEqual(t, g.Turn(), chess.Player)
	})
}

func TestGame_WrongPhase(t *testing.T) {
	g := newStandardGame()

	_, err := g.Move(chess.Sq(5, 0))
	testutil.AssertErrorIs(t, err, errors.ErrWrongPhase, "move before select")

	testutil.AssertNoError(t, g.Select(chess.Sq(6, 0)))
	testutil.AssertErrorIs(t, g.Select(chess.Sq(6, 1)), errors.ErrWrongPhase, "select twice")
	testutil.AssertEqual(t, g.Round(), 1)
}

func TestGame_AlternatingTurns(t *testing.T) {
	g := newStandardGame()

	rounds := []struct {
		from, to chess.Square
		side     chess.Side
	}{
		{chess.Sq(6, 4), chess.Sq(4, 4), chess.Player},
		{chess.Sq(1, 3), chess.Sq(3, 3), chess.Opponent},
		{chess.Sq(4, 4), chess.Sq(3, 3), chess.Player}, // capture
		{chess.Sq(0, 3), chess.Sq(3, 3), chess.Opponent},
	}

	for i, r := range rounds {
		testutil.AssertEqual(t, g.Turn(), r.side, "turn in round %d", i+1)
		testutil.AssertNoError(t, g.Select(r.from), "select in round %d", i+1)
		_, err := g.Move(r.to)
		testutil.AssertNoError(t, err, "move in round %d", i+1)
	}

	testutil.AssertEqual(t, g.Board().At(3, 3), chess.Cell{Piece: chess.Queen, Side: chess.Opponent, Moved: true})
	testutil.AssertEqual(t, g.Turn(), chess.Player)
	testutil.AssertEqual(t, len(g.History()), 4)
	testutil.AssertTrue(t, g.History()[2].IsCapture(), "third move captures")
}

func TestGame_StrictFirstMove(t *testing.T) {
	board := testutil.Place(testutil.EmptyBoard(t),
		testutil.Placement{Row: 6, Col: 0, Piece: chess.Pawn, Side: chess.Player},
	)
	board.Set(6, 0, chess.Cell{Piece: chess.Pawn, Side: chess.Player, Moved: true})

	lenient := New(board.Copy(), chess.Player)
	testutil.AssertNoError(t, lenient.Select(chess.Sq(6, 0)))
	_, err := lenient.Move(chess.Sq(4, 0))
	testutil.AssertNoError(t, err, "double step derived from rank")

	strict := New(board.Copy(), chess.Player, WithStrictFirstMove(true))
	testutil.AssertNoError(t, strict.Select(chess.Sq(6, 0)))
	testutil.AssertEqual(t, strict.Board().Highlighted(), testutil.Squares([2]int{5, 0}))
	_, err = strict.Move(chess.Sq(4, 0))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "double step for a moved pawn")
}

func TestNew_DefaultsToPlayer(t *testing.T) {
	g := New(chess.NewStandardBoard(), chess.None)
	testutil.AssertEqual(t, g.Turn(), chess.Player)
}

func TestGame_Repetitions(t *testing.T) {
	g := newStandardGame()
	start := g.PositionKey()
	testutil.AssertEqual(t, g.Repetitions(), 1, "starting position")

	shuffle := [][2]chess.Square{
		{chess.Sq(7, 1), chess.Sq(5, 2)},
		{chess.Sq(0, 1), chess.Sq(2, 2)},
		{chess.Sq(5, 2), chess.Sq(7, 1)},
		{chess.Sq(2, 2), chess.Sq(0, 1)},
	}
	for i, m := range shuffle {
		testutil.AssertNoError(t, g.Select(m[0]), "select %d", i+1)
		_, err := g.Move(m[1])
		testutil.AssertNoError(t, err, "move %d", i+1)
		if i < len(shuffle)-1 {
			testutil.AssertEqual(t, g.Repetitions(), 1, "after move %d", i+1)
		}
	}

	testutil.AssertEqual(t, g.PositionKey(), start, "knights back home")
	testutil.AssertEqual(t, g.Repetitions(), 2)

	testutil.AssertErrorIs(t, g.Select(chess.Sq(0, 0)), errors.ErrIllegalMove, "opponent rook on the player's turn")
	_, _ = g.Move(chess.Sq(1, 0))
	testutil.AssertEqual(t, g.Repetitions(), 2, "rejected rounds are not positions")
}
