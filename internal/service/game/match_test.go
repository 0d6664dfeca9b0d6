package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

func TestNewMatch_InitialState(t *testing.T) {
	m, _ := newTestMatch()

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, domain.SideA, m.Turn())
	assert.Equal(t, domain.StatusActive, m.Status())
	assert.False(t, m.Terminal())
	assert.Equal(t, PhaseAwaitingInput, m.Phase())
	assert.Nil(t, m.Sequencer().Pending())

	_, ok := m.LastMove()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Board().Count())
}

func TestAttemptMove_DoesNotMutate(t *testing.T) {
	m, _ := newTestMatch()

	row, err := m.AttemptMove(4)
	require.NoError(t, err)
	assert.Equal(t, domain.Rows-1, row)

	assert.Equal(t, 0, m.Board().Count())
	assert.Equal(t, domain.SideA, m.Turn())
	assert.Nil(t, m.Sequencer().Pending())
}

func TestAttemptMove_Rejections(t *testing.T) {
	t.Run("invalid column", func(t *testing.T) {
		m, _ := newTestMatch()
		for _, col := range []int{-1, domain.Columns, 42} {
			_, err := m.AttemptMove(col)
			assert.ErrorIs(t, err, RejectInvalidColumn, "column %d", col)
		}
	})

	t.Run("column full", func(t *testing.T) {
		m, _ := newTestMatch()
		// alternate in one column, no four can form vertically
		for i := 0; i < domain.Rows; i++ {
			play(t, m, 5)
		}
		_, err := m.AttemptMove(5)
		assert.ErrorIs(t, err, RejectColumnFull)
	})

	t.Run("game over", func(t *testing.T) {
		m, _ := newTestMatch()
		playAll(t, m, columnThreeWinMoves)
		_, err := m.AttemptMove(1)
		assert.ErrorIs(t, err, RejectGameOver)
	})

	t.Run("move in flight wins over every other reason", func(t *testing.T) {
		m, _ := newTestMatch()
		row, err := m.AttemptMove(2)
		require.NoError(t, err)
		require.True(t, m.Sequencer().Start(2, row, m.Turn()))

		for _, col := range []int{-1, 0, 2, 6, domain.Columns} {
			_, err := m.AttemptMove(col)
			assert.ErrorIs(t, err, RejectMoveInFlight, "column %d", col)
		}
	})
}

func TestRejection_IsTypedError(t *testing.T) {
	m, _ := newTestMatch()
	_, err := m.AttemptMove(-3)

	var rejection Rejection
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, RejectInvalidColumn, rejection)
}

func TestCommit_ContinueFlipsTurn(t *testing.T) {
	m, ledger := newTestMatch()

	row, err := m.AttemptMove(3)
	require.NoError(t, err)
	require.True(t, m.Sequencer().Start(3, row, domain.SideA))

	outcome := m.Commit(row, 3)
	assert.Equal(t, Outcome{Kind: Continue}, outcome)
	assert.Equal(t, domain.SideB, m.Turn())
	assert.Equal(t, domain.CellA, m.Board().Get(row, 3))
	assert.Nil(t, m.Sequencer().Pending(), "commit frees the slot")

	last, ok := m.LastMove()
	require.True(t, ok)
	assert.Equal(t, domain.Position{Row: row, Col: 3}, last)
	assert.Equal(t, domain.Scores{}, ledger.Scores())
}

func TestCommit_WinScenarioColumnThree(t *testing.T) {
	m, ledger := newTestMatch()

	outcome := playAll(t, m, columnThreeWinMoves)

	assert.Equal(t, Outcome{Kind: Win, Winner: domain.SideA}, outcome)
	assert.True(t, m.Terminal())
	assert.Equal(t, domain.StatusWon, m.Status())
	assert.Equal(t, domain.SideA, m.Winner())
	assert.Equal(t, domain.SideA, m.Turn(), "turn does not flip on a terminal move")
	assert.Equal(t, PhaseTerminal, m.Phase())
	assert.Equal(t, domain.Scores{SideA: 1}, ledger.Scores())
	assert.Equal(t, []domain.Position{{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}, {Row: 5, Col: 3}}, m.WinningLine())
}

func TestCommit_DrawFixture(t *testing.T) {
	m, ledger := newTestMatch()

	outcome := playAll(t, m, drawMoves)

	assert.Equal(t, Outcome{Kind: Draw}, outcome)
	assert.Equal(t, domain.StatusDraw, m.Status())
	assert.True(t, domain.IsBoardFull(m.Board()))
	assert.Equal(t, domain.Scores{Draws: 1}, ledger.Scores())
	assert.Equal(t, domain.SideB, m.Turn(), "SideB played the last disc")
	assert.Equal(t, 42, m.MoveCount())
}

func TestCommit_WinTakesPrecedenceOverFullBoard(t *testing.T) {
	m, ledger := newTestMatch()

	outcome := playAll(t, m, fullBoardWinMoves)

	assert.True(t, domain.IsBoardFull(m.Board()))
	assert.Equal(t, Outcome{Kind: Win, Winner: domain.SideB}, outcome)
	assert.Equal(t, domain.StatusWon, m.Status())
	assert.Equal(t, domain.Scores{SideB: 1}, ledger.Scores())
}

func TestCommit_InvariantViolationsPanic(t *testing.T) {
	t.Run("no move in flight", func(t *testing.T) {
		m, _ := newTestMatch()
		assert.Panics(t, func() { m.Commit(domain.Rows-1, 0) })
	})

	t.Run("cell does not match the move in flight", func(t *testing.T) {
		m, _ := newTestMatch()
		require.True(t, m.Sequencer().Start(1, domain.Rows-1, domain.SideA))
		assert.Panics(t, func() { m.Commit(domain.Rows-1, 2) })
	})

	t.Run("floating disc", func(t *testing.T) {
		m, _ := newTestMatch()
		require.True(t, m.Sequencer().Start(1, 2, domain.SideA))
		assert.Panics(t, func() { m.Commit(2, 1) })
	})

	t.Run("wrong side in flight", func(t *testing.T) {
		m, _ := newTestMatch()
		require.True(t, m.Sequencer().Start(1, domain.Rows-1, domain.SideB))
		assert.Panics(t, func() { m.Commit(domain.Rows-1, 1) })
	})

	t.Run("second terminal transition", func(t *testing.T) {
		m, ledger := newTestMatch()
		playAll(t, m, columnThreeWinMoves)
		assert.Panics(t, func() { m.Commit(domain.Rows-1, 6) })
		assert.Equal(t, domain.Scores{SideA: 1}, ledger.Scores())
	})
}

func TestReset_AfterTerminal(t *testing.T) {
	m, ledger := newTestMatch()
	playAll(t, m, columnThreeWinMoves)
	oldID := m.ID

	m.Reset()

	assert.NotEqual(t, oldID, m.ID)
	assert.Equal(t, 0, m.Board().Count())
	assert.Equal(t, domain.SideA, m.Turn())
	assert.False(t, m.Terminal())
	assert.Equal(t, domain.Side(0), m.Winner())
	assert.Nil(t, m.WinningLine())
	_, ok := m.LastMove()
	assert.False(t, ok)
	assert.Equal(t, domain.Scores{SideA: 1}, ledger.Scores(), "reset keeps the tally")
}

func TestReset_ClearsMoveInFlight(t *testing.T) {
	m, _ := newTestMatch()
	play(t, m, 0)

	row, err := m.AttemptMove(1)
	require.NoError(t, err)
	require.True(t, m.Sequencer().Start(1, row, m.Turn()))
	m.Sequencer().Advance(testStep)

	m.Reset()

	assert.Nil(t, m.Sequencer().Pending())
	_, landed := m.Sequencer().Advance(testStep)
	assert.False(t, landed, "a stale disc must not land on the new board")
	assert.Equal(t, 0, m.Board().Count())

	_, err = m.AttemptMove(1)
	assert.NoError(t, err)
}

func TestBoardAccessorReturnsCopy(t *testing.T) {
	m, _ := newTestMatch()
	b := m.Board()
	b.Set(domain.Rows-1, 0, domain.CellB)

	assert.Equal(t, domain.Empty, m.Board().Get(domain.Rows-1, 0))
}

func TestGravityAndAlternation_RandomMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for game := 0; game < 50; game++ {
		m, ledger := newTestMatch()

		for !m.Terminal() {
			valid := domain.ValidColumns(m.Board())
			require.NotEmpty(t, valid)
			before := m.Turn()

			outcome := play(t, m, valid[rng.Intn(len(valid))])
			requireGravity(t, m.Board())

			if outcome.Terminal() {
				assert.Equal(t, before, m.Turn())
			} else {
				assert.Equal(t, before.Opponent(), m.Turn())
			}
		}

		scores := ledger.Scores()
		assert.Equal(t, 1, scores.SideA+scores.SideB+scores.Draws, "game %d", game)
	}
}
