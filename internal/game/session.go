package game

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
)

// NewFromConfig creates a game on the board the configuration describes:
// the FEN start position if one is set, the standard setup otherwise.
func NewFromConfig(cfg *config.Config) (*Game, error) {
	opts := []Option{WithStrictFirstMove(cfg.Board.StrictFirstMove)}

	if cfg.Board.StartFEN != "" {
		board, toMove, err := engine.LoadFEN(cfg.Board.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "loading start position")
		}
		return New(board, toMove, opts...), nil
	}

	board, err := chess.NewBoard(cfg.Board.Size, cfg.Board.Size)
	if err != nil {
		return nil, err
	}
	board.SetupInitialPosition()
	return New(board, chess.Player, opts...), nil
}

// Session drives a game from a stream of whitespace-separated coordinates,
// writing a snapshot after every step that changes the board.
type Session struct {
	game    *Game
	scanner *bufio.Scanner
	writer  output.BoardWriter
	cfg     *config.Config
}

// NewSession creates a session reading coordinates from r.
func NewSession(g *Game, r io.Reader, w output.BoardWriter, cfg *config.Config) *Session {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Session{
		game:    g,
		scanner: scanner,
		writer:  w,
		cfg:     cfg,
	}
}

// Game returns the game the session drives.
func (s *Session) Game() *Game { return s.game }

// Run plays rounds until the input runs out or cannot be read as two
// integers. Running out of input returns nil; malformed input returns an
// error wrapping ErrInvalidInput. Illegal selections and moves are
// rejected without output, and out-of-bounds squares are reported on the
// log before the session carries on.
func (s *Session) Run() error {
	if err := s.render(); err != nil {
		return err
	}

	for {
		s.prompt("Enter initial move:")
		from, err := s.readSquare()
		if err != nil {
			return s.finish(err)
		}
		s.cfg.Logf(2, "Received move: %d %d", from.Row, from.Col)

		if err := s.game.Select(from); err != nil {
			s.report(err)
		} else {
			s.cfg.Logf(2, "Highlighting potential moves.")
			if err := s.render(); err != nil {
				return err
			}
		}

		s.prompt("Enter move:")
		to, err := s.readSquare()
		if err != nil {
			return s.finish(err)
		}

		s.cfg.Logf(2, "Dehighlighting potential moves.")
		move, err := s.game.Move(to)
		if err != nil {
			s.report(err)
			continue
		}

		s.cfg.Logf(2, "Moved %s", move)
		if n := s.game.Repetitions(); n > 1 {
			s.cfg.Logf(2, "Position has now occurred %d times", n)
		}
		if err := s.render(); err != nil {
			return err
		}
	}
}

// readSquare reads the next two integer tokens as row and column.
func (s *Session) readSquare() (chess.Square, error) {
	var vals [2]int
	for i := range vals {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return chess.Square{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidInput)
			}
			if i == 0 {
				return chess.Square{}, io.EOF
			}
			return chess.Square{}, fmt.Errorf("expected two integers, got one: %w", errors.ErrInvalidInput)
		}
		n, err := strconv.Atoi(s.scanner.Text())
		if err != nil {
			return chess.Square{}, fmt.Errorf("%q is not an integer: %w", s.scanner.Text(), errors.ErrInvalidInput)
		}
		vals[i] = n
	}
	return chess.Sq(vals[0], vals[1]), nil
}

func (s *Session) finish(err error) error {
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// report logs a per-round rejection. Illegal actions only show up in the
// running commentary; anything else is an operator error worth surfacing.
func (s *Session) report(err error) {
	if stderrors.Is(err, errors.ErrIllegalMove) {
		s.cfg.Logf(2, "Rejected: %v", err)
		return
	}
	s.cfg.Logf(1, "Error: %v", err)
}

func (s *Session) prompt(text string) {
	if s.cfg.Output.Prompts {
		s.cfg.Logf(0, "%s", text)
	}
}

func (s *Session) render() error {
	snap := output.Snapshot{
		Board:  s.game.Board(),
		ToMove: s.game.Turn(),
		Round:  s.game.Round(),

		Key:         s.game.PositionKey(),
		Repetitions: s.game.Repetitions(),
	}
	if move, ok := s.game.LastMove(); ok {
		snap.LastMove = &move
	}
	return s.writer.WriteSnapshot(snap)
}
