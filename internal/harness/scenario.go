// Package harness replays scripted matches from YAML files and renders the
// final table as text, for golden tests and the replay command.
package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

// Scenario is one scripted match. Moves are column indices clicked in
// order; each accepted disc is ticked until it lands before the next click.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// InitialScores seeds the tally as if loaded from a store.
	InitialScores *ScoreSpec `yaml:"initial_scores,omitempty"`

	Moves  []int  `yaml:"moves"`
	Expect Expect `yaml:"expect"`
}

// Expect is checked against the result after the last move. Empty fields
// are not checked.
type Expect struct {
	// Outcome is continue, win or draw.
	Outcome string `yaml:"outcome"`

	// Winner is red or yellow, only with outcome win.
	Winner string `yaml:"winner,omitempty"`

	Scores     *ScoreSpec      `yaml:"scores,omitempty"`
	Rejections []RejectionSpec `yaml:"rejections,omitempty"`
}

type ScoreSpec struct {
	Red    int `yaml:"red"`
	Yellow int `yaml:"yellow"`
	Draws  int `yaml:"draws"`
}

func (s ScoreSpec) scores() domain.Scores {
	return domain.Scores{SideA: s.Red, SideB: s.Yellow, Draws: s.Draws}
}

// RejectionSpec names a move, by its index in Moves, that must be refused.
type RejectionSpec struct {
	Move   int    `yaml:"move"`
	Reason string `yaml:"reason"`
}

const (
	OutcomeContinue = "continue"
	OutcomeWin      = "win"
	OutcomeDraw     = "draw"
)

// LoadScenario reads a scenario file. Unknown keys are rejected so a typo
// cannot silently disable a check.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Moves) == 0 {
		return fmt.Errorf("moves list is required and must be non-empty")
	}

	switch s.Expect.Outcome {
	case OutcomeWin:
		if s.Expect.Winner != domain.SideA.String() && s.Expect.Winner != domain.SideB.String() {
			return fmt.Errorf("expect.winner must be %s or %s, got %q", domain.SideA, domain.SideB, s.Expect.Winner)
		}
	case OutcomeContinue, OutcomeDraw:
		if s.Expect.Winner != "" {
			return fmt.Errorf("expect.winner is only allowed with outcome %s", OutcomeWin)
		}
	default:
		return fmt.Errorf("expect.outcome must be %s, %s or %s, got %q",
			OutcomeContinue, OutcomeWin, OutcomeDraw, s.Expect.Outcome)
	}

	for _, r := range s.Expect.Rejections {
		if r.Move < 0 || r.Move >= len(s.Moves) {
			return fmt.Errorf("rejection refers to move %d, scenario has %d moves", r.Move, len(s.Moves))
		}
	}
	return nil
}
