package game

import "github.com/iamasit07/4-in-a-row/hotseat/internal/domain"

// Snapshot is a read-only copy of a table, taken once per frame.
type Snapshot struct {
	MatchID     string            `json:"matchId"`
	Board       [][]domain.Cell   `json:"board"`
	Turn        domain.Side       `json:"turn"`
	Status      domain.GameStatus `json:"status"`
	Phase       Phase             `json:"phase"`
	Winner      domain.Side       `json:"winner,omitempty"`
	LastMove    *domain.Position  `json:"lastMove,omitempty"`
	WinningLine []domain.Position `json:"winningLine,omitempty"`
	Pending     *PendingAnimation `json:"pending,omitempty"`
	Hover       int               `json:"hover"`
	Preview     int               `json:"preview"`
	CellSize    int               `json:"cellSize"` // unit of Pending.Offset
	MoveCount   int               `json:"moveCount"`
	Scores      domain.Scores     `json:"scores"`
	Message     string            `json:"message"`
}

