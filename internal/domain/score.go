package domain

// Scores is a plain copy of the tally, safe to hand to other goroutines.
type Scores struct {
	SideA int `json:"red"`
	SideB int `json:"yellow"`
	Draws int `json:"draws"`
}

// ScoreLedger counts finished matches. It is only changed by a match
// reaching its terminal state or by an explicit reset.
type ScoreLedger struct {
	scores Scores
}

func NewScoreLedger(initial Scores) *ScoreLedger {
	return &ScoreLedger{scores: initial}
}

func (l *ScoreLedger) RecordWin(side Side) {
	if !side.Valid() {
		panic("score ledger: win recorded for invalid side")
	}
	if side == SideA {
		l.scores.SideA++
	} else {
		l.scores.SideB++
	}
}

func (l *ScoreLedger) RecordDraw() {
	l.scores.Draws++
}

func (l *ScoreLedger) ResetAll() {
	l.scores = Scores{}
}

func (l *ScoreLedger) Scores() Scores {
	return l.scores
}
