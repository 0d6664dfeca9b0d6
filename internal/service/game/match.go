package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
	"github.com/iamasit07/4-in-a-row/hotseat/pkg/uid"
)

// Rejection explains why a move was not accepted. Rejections are user
// errors: the adapter shows them, nothing is changed.
type Rejection string

func (r Rejection) Error() string {
	return string(r)
}

const (
	RejectInvalidColumn Rejection = "invalid column"
	RejectColumnFull    Rejection = "column is full"
	RejectGameOver      Rejection = "match is over"
	RejectMoveInFlight  Rejection = "a move is already in flight"
)

type OutcomeKind int

const (
	Continue OutcomeKind = iota
	Win
	Draw
)

// Outcome is the result of committing one move.
type Outcome struct {
	Kind   OutcomeKind
	Winner domain.Side // only set for Win
}

func (o Outcome) Terminal() bool {
	return o.Kind == Win || o.Kind == Draw
}

func (o Outcome) String() string {
	switch o.Kind {
	case Win:
		return "win:" + o.Winner.String()
	case Draw:
		return "draw"
	}
	return "continue"
}

// Phase is the externally visible state of a match. The committed-move
// state only exists inside Commit.
type Phase string

const (
	PhaseAwaitingInput Phase = "awaiting_input"
	PhaseAnimating     Phase = "animating"
	PhaseTerminal      Phase = "terminal"
)

// Match owns the board, whose turn it is and whether the match has ended.
// Commit is the only method that changes them.
type Match struct {
	ID       string
	board    *domain.Board
	turn     domain.Side
	status   domain.GameStatus
	winner   domain.Side
	lastMove *domain.Position
	winLine  []domain.Position
	moves    int
	ledger   *domain.ScoreLedger
	seq      *Sequencer
}

// NewMatch starts a match on an empty board. Finished matches are
// recorded on ledger.
func NewMatch(ledger *domain.ScoreLedger, cellSize int) *Match {
	m := &Match{ledger: ledger}
	m.seq = &Sequencer{match: m, cellSize: cellSize}
	m.Reset()
	return m
}

// Sequencer returns the animation slot bound to this match.
func (m *Match) Sequencer() *Sequencer { return m.seq }

// Board returns a copy; callers never touch the live board.
func (m *Match) Board() *domain.Board { return m.board.Clone() }

func (m *Match) Turn() domain.Side { return m.turn }
func (m *Match) Status() domain.GameStatus { return m.status }
func (m *Match) Winner() domain.Side { return m.winner }
func (m *Match) MoveCount() int { return m.moves }
func (m *Match) WinningLine() []domain.Position { return m.winLine }

func (m *Match) Terminal() bool {
	return m.status != domain.StatusActive
}

// LastMove is the most recently committed cell, only used for emphasis.
func (m *Match) LastMove() (domain.Position, bool) {
	if m.lastMove == nil {
		return domain.Position{}, false
	}
	return *m.lastMove, true
}

func (m *Match) Phase() Phase {
	switch {
	case m.Terminal():
		return PhaseTerminal
	case m.seq.Pending() != nil:
		return PhaseAnimating
	}
	return PhaseAwaitingInput
}

// AttemptMove checks whether the current side may drop into col and returns
// the row the disc would land on. It never changes the board.
func (m *Match) AttemptMove(col int) (int, error) {
	if m.seq.Pending() != nil {
		return -1, RejectMoveInFlight
	}

	if m.Terminal() {
		return -1, RejectGameOver
	}

	if col < 0 || col >= m.board.Columns() {
		return -1, RejectInvalidColumn
	}

	row, ok := domain.DropTargetRow(m.board, col)
	if !ok {
		return -1, RejectColumnFull
	}

	return row, nil
}

// Commit places the current side's disc at (row, col) once its animation
// has landed, then decides the outcome. A win is checked before a full
// board, so a winning last disc is never reported as a draw.
func (m *Match) Commit(row, col int) Outcome {
	if m.Terminal() {
		panic(fmt.Sprintf("match %s: commit (%d,%d) after the match ended", m.ID, row, col))
	}

	pending := m.seq.Pending()
	if pending == nil || pending.Column != col || pending.TargetRow != row {
		panic(fmt.Sprintf("match %s: commit (%d,%d) without a matching move in flight", m.ID, row, col))
	}
	if pending.Side != m.turn {
		panic(fmt.Sprintf("match %s: move in flight belongs to %s but it is %s's turn", m.ID, pending.Side, m.turn))
	}

	target, ok := domain.DropTargetRow(m.board, col)
	if !ok || target != row {
		panic(fmt.Sprintf("match %s: commit (%d,%d) breaks gravity", m.ID, row, col))
	}

	side := m.turn
	m.seq.clear()
	m.board.Set(row, col, side.Cell())
	m.lastMove = &domain.Position{Row: row, Col: col}
	m.moves++

	var outcome Outcome
	if line := domain.WinningLine(m.board, row, col, side); line != nil {
		m.status = domain.StatusWon
		m.winner = side
		m.winLine = line
		m.ledger.RecordWin(side)
		outcome = Outcome{Kind: Win, Winner: side}
	} else if domain.IsBoardFull(m.board) {
		m.status = domain.StatusDraw
		m.ledger.RecordDraw()
		outcome = Outcome{Kind: Draw}
	} else {
		m.turn = side.Opponent()
		outcome = Outcome{Kind: Continue}
	}

	log.Debug().
		Str("component", "session").
		Str("match_id", m.ID).
		Stringer("side", side).
		Int("row", row).
		Int("col", col).
		Stringer("outcome", outcome).
		Msg("move committed")

	if outcome.Terminal() {
		log.Info().
			Str("component", "session").
			Str("match_id", m.ID).
			Stringer("outcome", outcome).
			Int("moves", m.moves).
			Msg("match finished")
	}

	return outcome
}

// Reset starts a new match: empty board, SideA to play, any move in flight
// discarded. The score ledger is left alone.
func (m *Match) Reset() {
	m.ID = uid.NewMatchID()
	m.board = domain.NewStandardBoard()
	m.turn = domain.SideA
	m.status = domain.StatusActive
	m.winner = 0
	m.lastMove = nil
	m.winLine = nil
	m.moves = 0
	m.seq.clear()

	log.Debug().Str("component", "session").Str("match_id", m.ID).Msg("match started")
}
