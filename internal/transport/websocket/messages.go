package websocket

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

// ClientMessage is what the browser sends. Column is required for
// select_column; a hover_column without it clears the preview.
type ClientMessage struct {
	Type   string `json:"type"`
	Column *int   `json:"column,omitempty"`
}

// ServerMessage is either a full state frame or an error aimed at the
// sending connection only.
type ServerMessage struct {
	Type    string         `json:"type"`
	State   *game.Snapshot `json:"state,omitempty"`
	Message string         `json:"message,omitempty"`
}

const (
	typeState = "state"
	typeError = "error"
)

func stateMessage(snap game.Snapshot) ServerMessage {
	return ServerMessage{Type: typeState, State: &snap}
}

func errorMessage(text string) ServerMessage {
	return ServerMessage{Type: typeError, Message: text}
}

func (m ClientMessage) toCommand() (game.Command, error) {
	switch t := game.CommandType(m.Type); t {
	case game.CmdSelectColumn:
		if m.Column == nil {
			return game.Command{}, fmt.Errorf("%s needs a column", t)
		}
		return game.Command{Type: t, Column: *m.Column}, nil
	case game.CmdHoverColumn:
		col := -1
		if m.Column != nil {
			col = *m.Column
		}
		return game.Command{Type: t, Column: col}, nil
	case game.CmdNewMatch, game.CmdResetScores:
		return game.Command{Type: t}, nil
	}
	return game.Command{}, fmt.Errorf("unknown message type %q", m.Type)
}
