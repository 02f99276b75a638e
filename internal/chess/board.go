package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Cell is one grid square.
type Cell struct {
	Piece       Piece
	Side        Side
	Highlighted bool

	// Moved is set once the piece standing here has been moved by the
	// executor. It travels with the piece.
	Moved bool
}

// IsEmpty reports whether no piece stands on the cell.
func (c Cell) IsEmpty() bool {
	return c.Piece == Empty
}

// Board represents a rectangular grid of cells stored row-major.
// Its dimensions are fixed at construction.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates a board of empty cells.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, errors.ErrInvalidDimensions)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// NewStandardBoard creates an 8x8 board with the standard starting arrangement.
func NewStandardBoard() *Board {
	b, _ := NewBoard(StandardSize, StandardSize)
	b.SetupInitialPosition()
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether the coordinates address a cell on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Contains reports whether the square lies on the board.
func (b *Board) Contains(sq Square) bool {
	return b.InBounds(sq.Row, sq.Col)
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("chess: square (%d,%d) outside %dx%d board", row, col, b.rows, b.cols))
	}
	return row*b.cols + col
}

// At returns the cell at the given coordinates. It panics when the
// coordinates are outside the board; use InBounds first for operator input.
func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// Cell returns the cell on the given square.
func (b *Board) Cell(sq Square) Cell {
	return b.At(sq.Row, sq.Col)
}

// Put places a piece of the given side on a square, keeping the highlight
// flag and marking the piece as unmoved. Placing Empty clears the occupant.
func (b *Board) Put(row, col int, piece Piece, side Side) {
	c := &b.cells[b.index(row, col)]
	if piece == Empty {
		side = None
	}
	c.Piece = piece
	c.Side = side
	c.Moved = false
}

// Set replaces the whole cell.
func (b *Board) Set(row, col int, cell Cell) {
	b.cells[b.index(row, col)] = cell
}

// Clear empties a cell's occupant. The highlight flag is left alone.
func (b *Board) Clear(row, col int) {
	b.Put(row, col, Empty, None)
}

// SetHighlighted sets or clears the highlight flag of a cell.
func (b *Board) SetHighlighted(row, col int, on bool) {
	b.cells[b.index(row, col)].Highlighted = on
}

// IsEmptyAt reports whether the cell at the coordinates is unoccupied.
func (b *Board) IsEmptyAt(row, col int) bool {
	return b.At(row, col).IsEmpty()
}

// SetupInitialPosition writes the standard two-army layout: back ranks on
// the first and last rows, pawns on the rows next to them, Opponent on the
// top half and Player on the bottom half. Everything else is emptied and
// all highlight flags are cleared.
func (b *Board) SetupInitialPosition() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}

	last := b.rows - 1
	for col := 0; col < b.cols; col++ {
		piece := backRank[col%len(backRank)]
		b.Put(0, col, piece, Opponent)
		b.Put(last, col, piece, Player)
		if b.rows > 2 {
			b.Put(1, col, Pawn, Opponent)
			b.Put(last-1, col, Pawn, Player)
		}
	}
}

// HomeRow returns the row a pawn of the given side starts on.
func (b *Board) HomeRow(side Side) int {
	if side == Player {
		return b.rows - 2
	}
	return 1
}

// ClearHighlights resets every highlight flag.
func (b *Board) ClearHighlights() {
	for i := range b.cells {
		b.cells[i].Highlighted = false
	}
}

// Highlighted returns the highlighted squares in row-major order.
func (b *Board) Highlighted() []Square {
	var squares []Square
	for i, c := range b.cells {
		if c.Highlighted {
			squares = append(squares, Square{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{rows: b.rows, cols: b.cols, cells: make([]Cell, len(b.cells))}
	copy(nb.cells, b.cells)
	return nb
}
