package chess

import "fmt"

// Move records one executed relocation.
type Move struct {
	// The piece moved and who owns it.
	Piece Piece
	Side  Side

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured (Empty if no capture).
	Captured Piece
}

// IsCapture reports whether the move removed an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// String returns a compact description such as "P (6,4)-(4,4)" or "R (0,0)x(0,5)".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%c %s%s%s", m.Piece.Letter(), m.From, sep, m.To)
}
