package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/presenter"
)

const (
	actionState = "game:state"
	actionPlay  = "game:play"
	actionReset = "game:reset"
	actionWon   = "game:won"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PlayPayload struct {
	Cell *int `json:"cell"`
}

type ResponsePayload struct {
	Game   *presenter.GameView `json:"game,omitempty"`
	Winner entity.Mark         `json:"winner,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadBytes}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, reason string) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: reason})
}

func (that *Server) sendGame(conn *websocket.Conn, action string, game *entity.Game, outcome entity.Outcome) error {
	view := presenter.NewGameView(game, outcome)
	return that.sendMessage(conn, action, ResponsePayload{Game: &view})
}
