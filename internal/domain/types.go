package domain

// Side is one of the two players sharing the device.
type Side int

const (
	SideA Side = 1
	SideB Side = 2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Cell returns the board value a disc of this side occupies.
func (s Side) Cell() Cell {
	return Cell(s)
}

// Valid is false for the zero Side and anything outside SideA/SideB.
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Name is the label shown to the players.
func (s Side) Name() string {
	switch s {
	case SideA:
		return "Player 1 (Red)"
	case SideB:
		return "Player 2 (Yellow)"
	}
	return "nobody"
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "red"
	case SideB:
		return "yellow"
	}
	return "none"
}

// Cell is the content of one board position. Empty is not a side.
type Cell int

const (
	Empty Cell = 0
	CellA Cell = Cell(SideA)
	CellB Cell = Cell(SideB)
)

// Side reports which side owns the cell, false for Empty.
func (c Cell) Side() (Side, bool) {
	switch c {
	case CellA:
		return SideA, true
	case CellB:
		return SideB, true
	}
	return 0, false
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Position addresses a cell, row 0 is the top row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// to represent the match status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const ErrIndexOutOfRange Error = "cell index out of range"
