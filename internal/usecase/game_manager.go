package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

// GameManager runs the game of each session: load, mutate, save.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

// GetOrCreateGame - returns the session's game, starting a new one if none is stored.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	if sessionID == "" {
		return nil, apperror.ErrEmptySessionID
	}

	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	game = entity.NewGame(sessionID)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "sessionID", sessionID)

	return game, nil
}

// Play - plays cell for the current player. Ignored moves are not saved.
func (that *GameManager) Play(ctx context.Context, sessionID string, cell int) (*entity.Game, entity.Outcome, error) {
	log := that.logger.With("method", "Play", "sessionID", sessionID)

	game, err := that.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, entity.OutcomeIgnored, err
	}

	outcome := game.Play(cell)
	if outcome == entity.OutcomeIgnored {
		log.Debug("move ignored", "cell", cell)
		return game, outcome, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, entity.OutcomeIgnored, fmt.Errorf("failed update game: %w", err)
	}

	if outcome == entity.OutcomeWon {
		log.Info("game won", "winner", game.Winner)
	}

	return game, outcome, nil
}

// Reset - starts the session's game over.
func (that *GameManager) Reset(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	that.logger.Debug("game reset", "sessionID", sessionID)

	return game, nil
}
