package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

const noColumn = -1

// Table is the single owner of everything a hot-seat game needs: the
// match, its falling disc, the score ledger and the hover preview. It is
// not safe for concurrent use; the Driver serialises all calls.
type Table struct {
	match  *Match
	ledger *domain.ScoreLedger
	step   int
	hover  int
	status string

	onScores func(domain.Scores)
}

// NewTable opens a table with the given tally, a disc cell of cellSize
// units and step units of fall per tick.
func NewTable(initial domain.Scores, cellSize, step int) *Table {
	ledger := domain.NewScoreLedger(initial)
	t := &Table{
		match:  NewMatch(ledger, cellSize),
		ledger: ledger,
		step:   step,
		hover:  noColumn,
	}
	t.status = startStatus(t.match.Turn())
	return t
}

// OnScoresChanged registers fn to be called with the new tally after a
// match ends or the scores are reset.
func (t *Table) OnScoresChanged(fn func(domain.Scores)) {
	t.onScores = fn
}

func (t *Table) Match() *Match { return t.match }

func (t *Table) Scores() domain.Scores { return t.ledger.Scores() }

func (t *Table) Status() string { return t.status }

// SelectColumn is a click on col: the move is checked and, if accepted,
// its disc starts falling. Nothing is placed until the disc lands.
func (t *Table) SelectColumn(col int) error {
	row, err := t.match.AttemptMove(col)
	if err != nil {
		var rejection Rejection
		if errors.As(err, &rejection) {
			if text := rejectionStatus(rejection); text != "" {
				t.status = text
			}
		}
		log.Debug().Str("component", "session").Str("match_id", t.match.ID).Int("col", col).Err(err).Msg("move rejected")
		return err
	}

	if !t.match.Sequencer().Start(col, row, t.match.Turn()) {
		// AttemptMove already rules out both reasons Start can refuse
		panic(fmt.Sprintf("match %s: accepted move in column %d could not start", t.match.ID, col))
	}
	// hover stays put during the fall so the next player sees the preview
	// as soon as the disc lands
	return nil
}

// Hover moves the preview to col; a negative col clears it. Hovering is
// ignored while a disc falls or after the match has ended, and never
// changes the match.
func (t *Table) Hover(col int) {
	if col < 0 || col >= t.match.board.Columns() {
		t.hover = noColumn
		return
	}
	if t.match.Phase() != PhaseAwaitingInput {
		return
	}
	t.hover = col
}

// Tick advances the falling disc by one step. It reports whether anything
// moved, so idle ticks can be skipped by the caller.
func (t *Table) Tick() bool {
	if t.match.Sequencer().Pending() == nil {
		return false
	}

	outcome, landed := t.match.Sequencer().Advance(t.step)
	if !landed {
		return true
	}

	switch outcome.Kind {
	case Win:
		t.status = fmt.Sprintf("%s wins! Start a new match to play again.", outcome.Winner.Name())
	case Draw:
		t.status = "It's a draw! Start a new match to play again."
	default:
		t.status = turnStatus(t.match.Turn())
	}

	if outcome.Terminal() {
		t.hover = noColumn
		t.notifyScores()
	}
	return true
}

// NewMatch throws away the current match, including a disc in flight.
// Scores are kept.
func (t *Table) NewMatch() {
	t.match.Reset()
	t.hover = noColumn
	t.status = startStatus(t.match.Turn())
}

func (t *Table) ResetScores() {
	t.ledger.ResetAll()
	t.status = "Scores reset. Start a new match!"
	t.notifyScores()
}

func (t *Table) notifyScores() {
	if t.onScores != nil {
		t.onScores(t.ledger.Scores())
	}
}

// Snapshot copies everything an adapter needs to draw one frame.
func (t *Table) Snapshot() Snapshot {
	m := t.match
	snap := Snapshot{
		MatchID:   m.ID,
		Board:     m.board.Grid(),
		Turn:      m.Turn(),
		Status:    m.Status(),
		Phase:     m.Phase(),
		Winner:    m.Winner(),
		MoveCount: m.MoveCount(),
		Scores:    t.ledger.Scores(),
		Message:   t.status,
		Hover:     t.hover,
		Preview:   noColumn,
		CellSize:  m.seq.cellSize,
	}

	if pos, ok := m.LastMove(); ok {
		snap.LastMove = &pos
	}
	if line := m.WinningLine(); line != nil {
		snap.WinningLine = append([]domain.Position(nil), line...)
	}
	if p := m.Sequencer().Pending(); p != nil {
		copied := *p
		snap.Pending = &copied
	}
	if t.hover != noColumn && snap.Phase == PhaseAwaitingInput {
		if row, ok := domain.DropTargetRow(m.board, t.hover); ok {
			snap.Preview = row
		}
	}
	return snap
}

func startStatus(side domain.Side) string {
	return fmt.Sprintf("%s starts. Click a column to drop your piece.", side.Name())
}

func turnStatus(side domain.Side) string {
	return fmt.Sprintf("%s, click a column to drop your piece.", side.Name())
}

func rejectionStatus(r Rejection) string {
	switch r {
	case RejectInvalidColumn:
		return "Column not valid. Pick another."
	case RejectColumnFull:
		return "Column is full. Try a different one."
	case RejectGameOver:
		return "The match is over. Start a new match to play again."
	}
	// a click during the fall is simply dropped
	return ""
}
