package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

func (that *Server) handleState(ctx context.Context, sessionID string, msg *Message, conn *websocket.Conn) error {
	game, err := that.uGame.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		that.logger.Error("failed to get game", "method", "handleState", "error", err)
		return that.sendError(conn, msg.Action, "failed to get the game")
	}

	return that.sendGame(conn, msg.Action, game, entity.OutcomeIgnored)
}

func (that *Server) handlePlay(ctx context.Context, sessionID string, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handlePlay", "sessionID", sessionID)

	var payload PlayPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Cell == nil {
		log.Warn("cell is missing in payload")
		return that.sendError(conn, msg.Action, "cell is required")
	}

	game, outcome, err := that.uGame.Play(ctx, sessionID, *payload.Cell)
	if err != nil {
		log.Error("failed to play", "error", err)
		return that.sendError(conn, msg.Action, "failed to play")
	}

	if err = that.sendGame(conn, msg.Action, game, outcome); err != nil {
		return err
	}

	if outcome == entity.OutcomeWon {
		return that.sendMessage(conn, actionWon, ResponsePayload{Winner: game.Winner})
	}

	return nil
}

func (that *Server) handleReset(ctx context.Context, sessionID string, msg *Message, conn *websocket.Conn) error {
	game, err := that.uGame.Reset(ctx, sessionID)
	if err != nil {
		that.logger.Error("failed to reset game", "method", "handleReset", "error", err)
		return that.sendError(conn, msg.Action, "failed to reset the game")
	}

	return that.sendGame(conn, msg.Action, game, entity.OutcomeIgnored)
}
