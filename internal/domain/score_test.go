package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLedger(t *testing.T) {
	l := NewScoreLedger(Scores{SideA: 2})

	l.RecordWin(SideA)
	l.RecordWin(SideB)
	l.RecordDraw()
	assert.Equal(t, Scores{SideA: 3, SideB: 1, Draws: 1}, l.Scores())

	l.ResetAll()
	assert.Equal(t, Scores{}, l.Scores())
}

func TestScoreLedger_InvalidSidePanics(t *testing.T) {
	l := NewScoreLedger(Scores{})
	assert.Panics(t, func() { l.RecordWin(Side(0)) })
	assert.Panics(t, func() { l.RecordWin(Side(3)) })
	assert.Equal(t, Scores{}, l.Scores())
}
