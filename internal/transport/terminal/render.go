package terminal

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

// Screen is the part of termbox the renderer draws through.
type Screen interface {
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

// Character grid geometry. Every board cell is cellW wide and cellH tall;
// the drop row above the board holds the hover marker and the falling
// disc's start position.
const (
	left     = 2
	cellW    = 4
	cellH    = 2
	dropRow  = 2
	boardTop = dropRow + cellH
)

const (
	discRune  = 'O'
	emptyRune = '.'
	ghostRune = 'o'
)

const lastMoveBg = termbox.ColorBlue

func sideColor(s domain.Side) termbox.Attribute {
	if s == domain.SideB {
		return termbox.ColorYellow
	}
	return termbox.ColorRed
}

func cellX(col int) int { return left + col*cellW + 1 }

func cellY(row int) int { return boardTop + row*cellH }

// fallY maps an animation offset in layout units onto a screen row,
// rounding toward the top.
func fallY(offset, cellSize int) int {
	y := offset * cellH
	if y < 0 {
		y -= cellSize - 1
	}
	return boardTop + y/cellSize
}

// columnAt maps a screen x back to a board column, or -1.
func columnAt(x int) int {
	if x < left || x >= left+domain.Columns*cellW {
		return -1
	}
	return (x - left) / cellW
}

func drawText(s Screen, x, y int, text string, fg termbox.Attribute) int {
	for _, r := range text {
		s.SetCell(x, y, r, fg, termbox.ColorDefault)
		x++
	}
	return x
}

// Draw paints one frame of snap. cellSize is the layout cell size the
// animation offsets are measured in.
func Draw(s Screen, snap game.Snapshot, cellSize int) error {
	if err := s.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	x := drawText(s, left, 0, "Connect Four  ", termbox.ColorDefault|termbox.AttrBold)
	x = drawText(s, x, 0, fmt.Sprintf("Red %d", snap.Scores.SideA), termbox.ColorRed)
	x = drawText(s, x, 0, fmt.Sprintf("  Draws %d  ", snap.Scores.Draws), termbox.ColorDefault)
	drawText(s, x, 0, fmt.Sprintf("Yellow %d", snap.Scores.SideB), termbox.ColorYellow)

	if snap.Hover >= 0 && snap.Phase == game.PhaseAwaitingInput {
		s.SetCell(cellX(snap.Hover), dropRow, discRune, sideColor(snap.Turn)|termbox.AttrBold, termbox.ColorDefault)
		if snap.Preview >= 0 {
			s.SetCell(cellX(snap.Hover), cellY(snap.Preview), ghostRune, sideColor(snap.Turn), termbox.ColorDefault)
		}
	}

	winning := make(map[domain.Position]bool, len(snap.WinningLine))
	for _, p := range snap.WinningLine {
		winning[p] = true
	}
	var last domain.Position
	hasLast := snap.LastMove != nil
	if hasLast {
		last = *snap.LastMove
	}

	for r, row := range snap.Board {
		for c, cell := range row {
			if cell == domain.Empty {
				if snap.Preview != r || snap.Hover != c || snap.Phase != game.PhaseAwaitingInput {
					s.SetCell(cellX(c), cellY(r), emptyRune, termbox.ColorBlue, termbox.ColorDefault)
				}
				continue
			}
			side, _ := cell.Side()
			fg := sideColor(side) | termbox.AttrBold
			pos := domain.Position{Row: r, Col: c}
			bg := termbox.ColorDefault
			switch {
			case winning[pos]:
				bg = termbox.ColorWhite
			case hasLast && pos == last:
				bg = lastMoveBg
			}
			s.SetCell(cellX(c), cellY(r), discRune, fg, bg)
		}
		s.SetCell(left-1, cellY(r), '|', termbox.ColorBlue, termbox.ColorDefault)
		s.SetCell(left+domain.Columns*cellW, cellY(r), '|', termbox.ColorBlue, termbox.ColorDefault)
	}

	if p := snap.Pending; p != nil {
		s.SetCell(cellX(p.Column), fallY(p.Offset, cellSize), discRune, sideColor(p.Side)|termbox.AttrBold, termbox.ColorDefault)
	}

	footer := cellY(domain.Rows)
	for c := 0; c < domain.Columns; c++ {
		s.SetCell(cellX(c), footer, rune('1'+c), termbox.ColorDefault, termbox.ColorDefault)
	}
	drawText(s, left, footer+2, snap.Message, termbox.ColorDefault)
	drawText(s, left, footer+3, "arrows/mouse move  enter/click drop  n new match  r reset scores  q quit", termbox.ColorDefault)

	return s.Flush()
}
