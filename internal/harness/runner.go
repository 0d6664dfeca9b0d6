package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

// maxTicksPerMove bounds the wait for one landing. A disc falls at most
// Rows+1 cells, so any step of at least one unit lands far sooner.
const maxTicksPerMove = 10_000

type Options struct {
	CellSize int
	Step     int
}

var DefaultOptions = Options{CellSize: 92, Step: 18}

type Rejected struct {
	Move   int
	Column int
	Reason game.Rejection
}

type Result struct {
	// Outcome is the outcome of the last disc that landed.
	Outcome    game.Outcome
	Snapshot   game.Snapshot
	Rejections []Rejected
	Ticks      int
}

// Run plays s on a fresh table.
func Run(s *Scenario, opts Options) (*Result, error) {
	var initial domain.Scores
	if s.InitialScores != nil {
		initial = s.InitialScores.scores()
	}

	table := game.NewTable(initial, opts.CellSize, opts.Step)
	result := &Result{}

	for i, col := range s.Moves {
		if err := table.SelectColumn(col); err != nil {
			var rejection game.Rejection
			if !errors.As(err, &rejection) {
				return nil, fmt.Errorf("move %d: %w", i, err)
			}
			result.Rejections = append(result.Rejections, Rejected{Move: i, Column: col, Reason: rejection})
			continue
		}

		landed := false
		for n := 0; n < maxTicksPerMove; n++ {
			result.Ticks++
			table.Tick()
			if table.Match().Sequencer().Pending() == nil {
				landed = true
				break
			}
		}
		if !landed {
			return nil, fmt.Errorf("move %d: disc in column %d never landed", i, col)
		}
		result.Outcome = outcomeOf(table.Match())
	}

	result.Snapshot = table.Snapshot()
	return result, nil
}

func outcomeOf(m *game.Match) game.Outcome {
	switch m.Status() {
	case domain.StatusWon:
		return game.Outcome{Kind: game.Win, Winner: m.Winner()}
	case domain.StatusDraw:
		return game.Outcome{Kind: game.Draw}
	}
	return game.Outcome{Kind: game.Continue}
}

// Check compares r with the scenario's expectations and reports every
// mismatch at once.
func Check(s *Scenario, r *Result) error {
	var problems []string

	kind, winner := describe(r.Outcome)
	if kind != s.Expect.Outcome {
		problems = append(problems, fmt.Sprintf("outcome: want %s, got %s", s.Expect.Outcome, kind))
	}
	if s.Expect.Winner != "" && s.Expect.Winner != winner {
		problems = append(problems, fmt.Sprintf("winner: want %s, got %s", s.Expect.Winner, winner))
	}

	if s.Expect.Scores != nil {
		if want := s.Expect.Scores.scores(); want != r.Snapshot.Scores {
			problems = append(problems, fmt.Sprintf("scores: want %+v, got %+v", want, r.Snapshot.Scores))
		}
	}

	if s.Expect.Rejections != nil {
		if len(s.Expect.Rejections) != len(r.Rejections) {
			problems = append(problems, fmt.Sprintf("rejections: want %d, got %d", len(s.Expect.Rejections), len(r.Rejections)))
		} else {
			for i, want := range s.Expect.Rejections {
				got := r.Rejections[i]
				if want.Move != got.Move || want.Reason != string(got.Reason) {
					problems = append(problems, fmt.Sprintf("rejection %d: want move %d %q, got move %d %q",
						i, want.Move, want.Reason, got.Move, got.Reason))
				}
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("scenario %s: %s", s.Name, strings.Join(problems, "; "))
	}
	return nil
}

func describe(o game.Outcome) (kind, winner string) {
	switch o.Kind {
	case game.Win:
		return OutcomeWin, o.Winner.String()
	case game.Draw:
		return OutcomeDraw, ""
	}
	return OutcomeContinue, ""
}
