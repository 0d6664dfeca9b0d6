package domain

import "fmt"

// Board is a passive grid of cells. Row 0 is the top row, rows-1 the bottom.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard returns a rows x cols board with every cell Empty.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// NewStandardBoard returns the 6x7 board used for every match.
func NewStandardBoard() *Board {
	return NewBoard(Rows, Columns)
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrIndexOutOfRange, row, col, b.rows, b.cols))
	}
	return row*b.cols + col
}

func (b *Board) Get(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b *Board) Set(row, col int, value Cell) {
	b.cells[b.index(row, col)] = value
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Grid exports the cells row by row, for JSON snapshots and rendering.
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for r := range grid {
		grid[r] = make([]Cell, b.cols)
		copy(grid[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return grid
}

// Count returns how many cells hold a disc.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}
