// Package game sequences the engine into rounds: select an origin, show
// what it threatens, then move it and hand the turn to the other side.
package game

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Game owns the board for its lifetime and drives the Selecting/Moving cycle.
type Game struct {
	board *chess.Board
	turn  chess.Side
	phase chess.Phase
	round int

	strictFirstMove bool

	// Current round's selection, valid while pending is set.
	pending     bool
	from        chess.Square
	piece       chess.Piece
	initialPawn bool

	history []chess.Move

	zobrist   *hashing.Zobrist
	positions *hashing.RepetitionTracker
	key       uint64
}

// Option configures a Game.
type Option func(*Game)

// WithStrictFirstMove limits the pawn double step to pawns that have never moved.
func WithStrictFirstMove(strict bool) Option {
	return func(g *Game) {
		g.strictFirstMove = strict
	}
}

// New creates a game on board with toMove acting first.
func New(board *chess.Board, toMove chess.Side, opts ...Option) *Game {
	if toMove == chess.None {
		toMove = chess.Player
	}
	g := &Game{
		board: board,
		turn:  toMove,
		phase: chess.Selecting,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.zobrist = hashing.NewZobrist(board.Rows(), board.Cols())
	g.positions = hashing.NewRepetitionTracker()
	g.recordPosition()
	return g
}

// Board returns the board the game plays on.
func (g *Game) Board() *chess.Board { return g.board }

// Turn returns the side to act.
func (g *Game) Turn() chess.Side { return g.turn }

// Phase returns the current phase.
func (g *Game) Phase() chess.Phase { return g.phase }

// Round returns the number of rounds started so far.
func (g *Game) Round() int { return g.round }

// Pending reports whether an origin has been selected and awaits a destination.
func (g *Game) Pending() bool { return g.pending }

// History returns the executed moves, oldest first.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	copy(moves, g.history)
	return moves
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// PositionKey returns the hash of the current placement and side to act.
func (g *Game) PositionKey() uint64 { return g.key }

// Repetitions returns how many times the current position has occurred,
// counting the starting position and the position after every move.
func (g *Game) Repetitions() int { return g.positions.Count(g.key) }

func (g *Game) recordPosition() {
	g.key = g.zobrist.Key(g.board, g.turn)
	g.positions.Add(g.key)
}

// Select starts a round with the origin square. When the occupant belongs
// to the side to act and has somewhere to go, every square it threatens is
// highlighted and nil is returned. Otherwise ErrIllegalMove is returned and
// no highlights are set; the round still expects a destination.
func (g *Game) Select(from chess.Square) error {
	if g.pending {
		return &errors.MoveError{Err: errors.ErrWrongPhase, Round: g.round, Phase: g.phase.String(), Row: from.Row, Col: from.Col}
	}

	g.round++
	g.pending = true
	g.from = from
	g.piece = chess.Empty
	g.initialPawn = false

	if !g.board.Contains(from) {
		return g.errorAt(errors.ErrOutOfBounds, from)
	}

	g.piece = g.board.Cell(from).Piece
	g.initialPawn = engine.IsInitialPawn(g.board, g.piece, g.turn, from, g.strictFirstMove)

	if !engine.IsLegal(g.board, g.piece, g.turn, chess.Selecting, from, from, g.initialPawn) {
		return g.errorAt(errors.ErrIllegalMove, from)
	}

	engine.SetHighlights(g.board, from, g.piece, g.turn, chess.Highlight, chess.Selecting, g.initialPawn)
	return nil
}

// Move finishes the round with the destination square. The highlights set
// by Select are always cleared first. If the move is legal it is executed,
// the turn passes to the other side and the move is returned.
func (g *Game) Move(to chess.Square) (chess.Move, error) {
	if !g.pending {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrWrongPhase, Round: g.round, Phase: g.phase.String(), Row: to.Row, Col: to.Col}
	}

	engine.SetHighlights(g.board, g.from, g.piece, g.turn, chess.Dehighlight, chess.Selecting, g.initialPawn)

	g.phase = chess.Moving
	defer func() {
		g.phase = chess.Selecting
		g.pending = false
	}()

	if !g.board.Contains(to) {
		return chess.Move{}, g.errorAt(errors.ErrOutOfBounds, to)
	}
	if !engine.IsLegal(g.board, g.piece, g.turn, chess.Moving, g.from, to, g.initialPawn) {
		return chess.Move{}, g.errorAt(errors.ErrIllegalMove, to)
	}

	move := engine.Apply(g.board, g.turn, to, g.from)
	g.history = append(g.history, move)
	g.turn = engine.NextSide(g.turn)
	g.recordPosition()
	return move, nil
}

func (g *Game) errorAt(err error, sq chess.Square) error {
	return &errors.MoveError{
		Err:   err,
		Round: g.round,
		Phase: g.phase.String(),
		Row:   sq.Row,
		Col:   sq.Col,
	}
}
