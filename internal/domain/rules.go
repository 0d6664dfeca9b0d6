package domain

// axes through a cell: horizontal, vertical, diagonal \ and diagonal /
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// IsValidColumn reports whether a disc can still be dropped into col.
// Out-of-range columns are simply invalid.
func IsValidColumn(board *Board, col int) bool {
	if col < 0 || col >= board.Columns() {
		return false
	}

	// here row 0 represents the top row
	return board.Get(0, col) == Empty
}

// DropTargetRow returns the row a disc dropped into col would land on,
// scanning from the bottom row upward. ok is false when the column is full
// or out of range.
func DropTargetRow(board *Board, col int) (row int, ok bool) {
	if col < 0 || col >= board.Columns() {
		return -1, false
	}

	for row := board.Rows() - 1; row >= 0; row-- {
		if board.Get(row, col) == Empty {
			return row, true
		}
	}

	return -1, false
}

// IsBoardFull reports whether every column's top cell is taken.
func IsBoardFull(board *Board) bool {
	for c := 0; c < board.Columns(); c++ {
		if board.Get(0, c) == Empty {
			return false
		}
	}

	return true
}

// CountInDirection counts consecutive discs of side starting next to
// (row, col) and walking by (deltaRow, deltaCol).
func CountInDirection(board *Board, row, col, deltaRow, deltaCol int, side Side) int {
	count := 0
	target := side.Cell()
	r, c := row+deltaRow, col+deltaCol
	for board.InBounds(r, c) && board.Get(r, c) == target {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// IsWinningMove checks only the lines passing through the disc just placed
// at (row, col): a win can only involve the last piece.
func IsWinningMove(board *Board, row, col int, side Side) bool {
	return WinningLine(board, row, col, side) != nil
}

// WinningLine returns the cells of the first axis through (row, col) that
// holds ToWin or more discs of side, ordered from one end to the other.
func WinningLine(board *Board, row, col int, side Side) []Position {
	for _, axis := range axes {
		dr, dc := axis[0], axis[1]
		back := CountInDirection(board, row, col, -dr, -dc, side)
		forward := CountInDirection(board, row, col, dr, dc, side)
		if 1+back+forward < ToWin {
			continue
		}

		line := make([]Position, 0, 1+back+forward)
		for i := -back; i <= forward; i++ {
			line = append(line, Position{Row: row + i*dr, Col: col + i*dc})
		}
		return line
	}
	return nil
}

// ValidColumns lists the columns that still accept a disc.
func ValidColumns(board *Board) []int {
	valid := []int{}
	for col := 0; col < board.Columns(); col++ {
		if IsValidColumn(board, col) {
			valid = append(valid, col)
		}
	}
	return valid
}
