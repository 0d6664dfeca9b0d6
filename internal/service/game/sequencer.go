package game

import "github.com/iamasit07/4-in-a-row/hotseat/internal/domain"

// PendingAnimation is the one disc currently falling. Its move is not on
// the board until the disc reaches its resting offset.
type PendingAnimation struct {
	Column    int         `json:"column"`
	TargetRow int         `json:"targetRow"`
	Offset    int         `json:"offset"`
	Side      domain.Side `json:"side"`
}

// Sequencer holds at most one PendingAnimation and advances it on each
// tick of an external clock. Ticks must not run concurrently.
type Sequencer struct {
	match    *Match
	cellSize int
	pending  *PendingAnimation
}

// Pending returns the disc in flight, or nil.
func (s *Sequencer) Pending() *PendingAnimation {
	return s.pending
}

// RestingOffset is the offset at which a disc sits in row.
func (s *Sequencer) RestingOffset(row int) int {
	return row * s.cellSize
}

// Start launches a disc one cell above the top row. It does nothing and
// returns false while another disc is falling or the match has ended.
func (s *Sequencer) Start(col, targetRow int, side domain.Side) bool {
	if s.pending != nil || s.match.Terminal() {
		return false
	}

	s.pending = &PendingAnimation{
		Column:    col,
		TargetRow: targetRow,
		Offset:    -s.cellSize,
		Side:      side,
	}
	return true
}

// Advance moves the falling disc down by step, never past its resting
// offset. When it lands the move is committed, which frees the slot; landed
// reports whether that happened on this call.
func (s *Sequencer) Advance(step int) (outcome Outcome, landed bool) {
	p := s.pending
	if p == nil {
		return Outcome{}, false
	}
	if step <= 0 {
		panic("sequencer: animation step must be positive")
	}

	rest := s.RestingOffset(p.TargetRow)
	p.Offset += step
	if p.Offset > rest {
		p.Offset = rest
	}
	if p.Offset < rest {
		return Outcome{}, false
	}

	// Commit frees the slot
	return s.match.Commit(p.TargetRow, p.Column), true
}

func (s *Sequencer) clear() {
	s.pending = nil
}
