package engine

import (
	"fmt"
	"strconv"
	"strings"

	corechess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// White is the Player and Black is the Opponent.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFEN decodes a FEN string into a standard-size board and returns the
// side to move. FEN rank 8 becomes row 0. Castling, en passant and clock
// fields are accepted but have no effect.
func LoadFEN(fen string) (*chess.Board, chess.Side, error) {
	if strings.TrimSpace(fen) == "" {
		return nil, chess.None, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	opt, err := corechess.FEN(fen)
	if err != nil {
		return nil, chess.None, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	pos := corechess.NewGame(opt).Position()

	board, err := chess.NewBoard(chess.StandardSize, chess.StandardSize)
	if err != nil {
		return nil, chess.None, err
	}

	cb := pos.Board()
	for sq := corechess.A1; sq <= corechess.H8; sq++ {
		p := cb.Piece(sq)
		if p == corechess.NoPiece {
			continue
		}
		piece := fromCorePieceType(p.Type())
		row := chess.StandardSize - 1 - int(sq.Rank())
		col := int(sq.File())
		board.Put(row, col, piece, fromCoreColor(p.Color()))
	}

	return board, fromCoreColor(pos.Turn()), nil
}

func fromCorePieceType(t corechess.PieceType) chess.Piece {
	switch t {
	case corechess.Pawn:
		return chess.Pawn
	case corechess.Knight:
		return chess.Knight
	case corechess.Bishop:
		return chess.Bishop
	case corechess.Rook:
		return chess.Rook
	case corechess.Queen:
		return chess.Queen
	case corechess.King:
		return chess.King
	}
	return chess.Empty
}

func fromCoreColor(c corechess.Color) chess.Side {
	if c == corechess.Black {
		return chess.Opponent
	}
	return chess.Player
}

// EncodeFEN converts a board and the side to move to a FEN string.
// Player pieces are written in uppercase.
func EncodeFEN(board *chess.Board, toMove chess.Side) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.Opponent {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, top row first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < board.Rows(); row++ {
		emptyCount := 0
		for col := 0; col < board.Cols(); col++ {
			cell := board.At(row, col)
			if cell.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			letter := cell.Piece.Letter()
			if cell.Side == chess.Opponent {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if row < board.Rows()-1 {
			sb.WriteByte('/')
		}
	}
}
