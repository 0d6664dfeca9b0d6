package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

const (
	testCellSize = 92
	testStep     = 18
)

// drawMoves fills all 42 cells, alternating sides from SideA, without a
// four-in-a-row anywhere. Final board, top row first:
//
//	AABBAAB
//	AABBAAB
//	BBAABBA
//	AABBAAB
//	BBAABBA
//	BBAABBA
var drawMoves = []int{
	2, 0, 2, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 2, 1, 4, 2, 2, 3, 2, 3,
	3, 3, 3, 6, 3, 6, 4, 4, 4, 4, 5, 4, 5, 5, 5, 5, 6, 6, 6, 5, 6,
}

// fullBoardWinMoves ends with SideB's 42nd disc in the top-left corner,
// which fills the board and completes the diagonal (0,0)-(3,3).
var fullBoardWinMoves = []int{
	1, 0, 4, 0, 1, 5, 4, 2, 2, 1, 4, 6, 6, 4, 2, 0, 5, 3, 1, 4, 4,
	5, 0, 1, 0, 3, 6, 3, 3, 2, 1, 5, 5, 5, 3, 2, 3, 2, 6, 6, 6, 0,
}

// columnThreeWinMoves: SideA stacks column 3 while SideB answers in column 0.
var columnThreeWinMoves = []int{3, 0, 3, 0, 3, 0, 3}

func newTestMatch() (*Match, *domain.ScoreLedger) {
	ledger := domain.NewScoreLedger(domain.Scores{})
	return NewMatch(ledger, testCellSize), ledger
}

// play drives one move from click to landing and returns its outcome.
func play(t *testing.T, m *Match, col int) Outcome {
	t.Helper()

	row, err := m.AttemptMove(col)
	require.NoError(t, err, "column %d", col)
	require.True(t, m.Sequencer().Start(col, row, m.Turn()))

	for i := 0; i < 100; i++ {
		if outcome, landed := m.Sequencer().Advance(testStep); landed {
			return outcome
		}
	}
	t.Fatalf("disc in column %d never landed", col)
	return Outcome{}
}

// playAll plays moves and returns the outcome of the last one.
func playAll(t *testing.T, m *Match, moves []int) Outcome {
	t.Helper()

	var outcome Outcome
	for i, col := range moves {
		outcome = play(t, m, col)
		if i < len(moves)-1 {
			require.Equal(t, Continue, outcome.Kind, "move %d ended the match early", i)
		}
	}
	return outcome
}

// requireGravity checks every column is a solid stack from the bottom.
func requireGravity(t *testing.T, b *domain.Board) {
	t.Helper()

	for c := 0; c < b.Columns(); c++ {
		seenEmpty := false
		for r := b.Rows() - 1; r >= 0; r-- {
			if b.Get(r, c) == domain.Empty {
				seenEmpty = true
				continue
			}
			require.False(t, seenEmpty, "floating disc at (%d,%d)", r, c)
		}
	}
}
