package output

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// JSONSnapshot represents a snapshot in JSON format.
type JSONSnapshot struct {
	Round       int       `json:"round"`
	ToMove      string    `json:"toMove"`
	Pieces      []string  `json:"pieces"`
	Sides       []string  `json:"sides"`
	Highlights  [][2]int  `json:"highlights,omitempty"`
	LastMove    *JSONMove `json:"lastMove,omitempty"`
	FEN         string    `json:"fen,omitempty"`
	Key         string    `json:"key,omitempty"`
	Repetitions int       `json:"repetitions,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Piece    string `json:"piece"`
	Side     string `json:"side"`
	From     [2]int `json:"from"`
	To       [2]int `json:"to"`
	Captured string `json:"captured,omitempty"`
}

// JSONWriter writes one JSON object per line for every snapshot.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WriteSnapshot encodes the snapshot immediately.
func (jw *JSONWriter) WriteSnapshot(s Snapshot) error {
	return jw.enc.Encode(SnapshotToJSON(s))
}

// Flush is a no-op; every snapshot is written as soon as it is encoded.
func (jw *JSONWriter) Flush() error {
	return nil
}

// SnapshotToJSON converts a snapshot to its JSON form. Rows are encoded as
// strings of piece letters and side codes. The FEN field is only filled
// for standard-size boards.
func SnapshotToJSON(s Snapshot) *JSONSnapshot {
	b := s.Board
	js := &JSONSnapshot{
		Round:       s.Round,
		ToMove:      s.ToMove.String(),
		Pieces:      make([]string, b.Rows()),
		Sides:       make([]string, b.Rows()),
		Repetitions: s.Repetitions,
	}
	if s.Key != 0 {
		js.Key = strconv.FormatUint(s.Key, 16)
	}

	for row := 0; row < b.Rows(); row++ {
		pieces := make([]byte, b.Cols())
		sides := make([]byte, b.Cols())
		for col := 0; col < b.Cols(); col++ {
			cell := b.At(row, col)
			pieces[col] = cell.Piece.Letter()
			sides[col] = cell.Side.Code()
			if cell.Highlighted {
				js.Highlights = append(js.Highlights, [2]int{row, col})
			}
		}
		js.Pieces[row] = string(pieces)
		js.Sides[row] = string(sides)
	}

	if s.LastMove != nil {
		js.LastMove = moveToJSON(*s.LastMove)
	}
	if b.Rows() == chess.StandardSize && b.Cols() == chess.StandardSize {
		js.FEN = engine.EncodeFEN(b, s.ToMove)
	}
	return js
}

func moveToJSON(m chess.Move) *JSONMove {
	jm := &JSONMove{
		Piece: m.Piece.String(),
		Side:  m.Side.String(),
		From:  [2]int{m.From.Row, m.From.Col},
		To:    [2]int{m.To.Row, m.To.Col},
	}
	if m.IsCapture() {
		jm.Captured = m.Captured.String()
	}
	return jm
}
