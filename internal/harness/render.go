package harness

import (
	"fmt"
	"strings"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

func cellRune(c domain.Cell) byte {
	switch c {
	case domain.CellA:
		return 'R'
	case domain.CellB:
		return 'Y'
	}
	return '.'
}

// Render prints the final table of a run, top row first.
func Render(name string, r *Result) string {
	var b strings.Builder
	snap := r.Snapshot

	fmt.Fprintf(&b, "# %s\n", name)
	b.WriteString(" ")
	for c := 0; c < domain.Columns; c++ {
		fmt.Fprintf(&b, " %d", c)
	}
	b.WriteString("\n")

	for _, row := range snap.Board {
		b.WriteString("|")
		for c, cell := range row {
			if c > 0 {
				b.WriteString(" ")
			}
			b.WriteByte(cellRune(cell))
		}
		b.WriteString("|\n")
	}

	fmt.Fprintf(&b, "status: %s  outcome: %s  moves: %d\n", snap.Status, r.Outcome, snap.MoveCount)
	if len(snap.WinningLine) > 0 {
		b.WriteString("line:")
		for _, p := range snap.WinningLine {
			fmt.Fprintf(&b, " (%d,%d)", p.Row, p.Col)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "scores: red %d  yellow %d  draws %d\n", snap.Scores.SideA, snap.Scores.SideB, snap.Scores.Draws)
	for _, rej := range r.Rejections {
		fmt.Fprintf(&b, "rejected: move %d column %d: %s\n", rej.Move, rej.Column, rej.Reason)
	}
	fmt.Fprintf(&b, "message: %s\n", snap.Message)
	return b.String()
}
