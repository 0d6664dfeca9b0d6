package terminal

import (
	"strings"
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

const testCellSize = 92

type cell struct {
	ch     rune
	fg, bg termbox.Attribute
}

type fakeScreen struct {
	cells   map[[2]int]cell
	flushed int
}

func newFakeScreen() *fakeScreen { return &fakeScreen{cells: map[[2]int]cell{}} }

func (s *fakeScreen) Clear(fg, bg termbox.Attribute) error {
	s.cells = map[[2]int]cell{}
	return nil
}

func (s *fakeScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	s.cells[[2]int{x, y}] = cell{ch, fg, bg}
}

func (s *fakeScreen) Flush() error {
	s.flushed++
	return nil
}

func (s *fakeScreen) at(x, y int) cell { return s.cells[[2]int{x, y}] }

func (s *fakeScreen) line(y int) string {
	var b strings.Builder
	for x := 0; x < 80; x++ {
		if c, ok := s.cells[[2]int{x, y}]; ok {
			b.WriteRune(c.ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func settle(t *testing.T, table *game.Table) {
	t.Helper()
	for i := 0; i < 100 && table.Tick(); i++ {
	}
	require.Nil(t, table.Match().Sequencer().Pending())
}

func TestDraw_EmptyBoard(t *testing.T) {
	table := game.NewTable(domain.Scores{SideA: 2, SideB: 1, Draws: 3}, testCellSize, 18)
	s := newFakeScreen()

	require.NoError(t, Draw(s, table.Snapshot(), testCellSize))

	assert.Equal(t, 1, s.flushed)
	assert.Equal(t, "  Connect Four  Red 2  Draws 3  Yellow 1", s.line(0))
	assert.Equal(t, " | .   .   .   .   .   .   .  |", s.line(cellY(0)))
	assert.Equal(t, "   1   2   3   4   5   6   7", s.line(cellY(domain.Rows)))
	assert.Equal(t, "  Player 1 (Red) starts. Click a column to drop your piece.", s.line(cellY(domain.Rows)+2))
}

func TestDraw_DiscsAndWinningLine(t *testing.T) {
	table := game.NewTable(domain.Scores{}, testCellSize, 18)
	for _, col := range []int{3, 0, 3, 0, 3, 0, 3} {
		require.NoError(t, table.SelectColumn(col))
		settle(t, table)
	}
	s := newFakeScreen()

	require.NoError(t, Draw(s, table.Snapshot(), testCellSize))

	bottom := cellY(domain.Rows - 1)
	assert.Equal(t, cell{discRune, termbox.ColorRed | termbox.AttrBold, termbox.ColorWhite}, s.at(cellX(3), bottom))
	assert.Equal(t, cell{discRune, termbox.ColorYellow | termbox.AttrBold, termbox.ColorDefault}, s.at(cellX(0), bottom))
	assert.Equal(t, emptyRune, s.at(cellX(3), cellY(1)).ch)
}

func TestDraw_LastMove(t *testing.T) {
	table := game.NewTable(domain.Scores{}, testCellSize, 18)
	for _, col := range []int{3, 4} {
		require.NoError(t, table.SelectColumn(col))
		settle(t, table)
	}
	s := newFakeScreen()

	require.NoError(t, Draw(s, table.Snapshot(), testCellSize))

	bottom := cellY(domain.Rows - 1)
	assert.Equal(t, cell{discRune, termbox.ColorYellow | termbox.AttrBold, lastMoveBg}, s.at(cellX(4), bottom))
	assert.Equal(t, cell{discRune, termbox.ColorRed | termbox.AttrBold, termbox.ColorDefault}, s.at(cellX(3), bottom))
}

func TestDraw_HoverAndPreview(t *testing.T) {
	table := game.NewTable(domain.Scores{}, testCellSize, 18)
	table.Hover(5)
	s := newFakeScreen()

	require.NoError(t, Draw(s, table.Snapshot(), testCellSize))

	assert.Equal(t, discRune, s.at(cellX(5), dropRow).ch)
	assert.Equal(t, cell{ghostRune, termbox.ColorRed, termbox.ColorDefault}, s.at(cellX(5), cellY(domain.Rows-1)))
}

func TestDraw_FallingDisc(t *testing.T) {
	table := game.NewTable(domain.Scores{}, testCellSize, 46)
	require.NoError(t, table.SelectColumn(2))

	s := newFakeScreen()
	require.NoError(t, Draw(s, table.Snapshot(), testCellSize))
	assert.Equal(t, discRune, s.at(cellX(2), dropRow).ch, "starts one cell above the board")

	// 6 steps of 46 from -92 is 184, exactly row 2
	for i := 0; i < 6; i++ {
		table.Tick()
	}
	require.NoError(t, Draw(s, table.Snapshot(), testCellSize))
	assert.Equal(t, discRune, s.at(cellX(2), cellY(2)).ch)
	assert.Equal(t, emptyRune, s.at(cellX(2), cellY(domain.Rows-1)).ch)
}

func TestFallY(t *testing.T) {
	tests := []struct {
		offset int
		want   int
	}{
		{-92, dropRow},
		{-47, dropRow},
		{-46, dropRow + 1},
		{-1, dropRow + 1},
		{0, boardTop},
		{45, boardTop},
		{46, boardTop + 1},
		{460, cellY(5)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fallY(tt.offset, testCellSize), "offset %d", tt.offset)
	}
}

func TestColumnAt(t *testing.T) {
	assert.Equal(t, -1, columnAt(left-1))
	assert.Equal(t, 0, columnAt(left))
	assert.Equal(t, 0, columnAt(cellX(0)))
	assert.Equal(t, 6, columnAt(cellX(6)))
	assert.Equal(t, -1, columnAt(left+domain.Columns*cellW))
}
