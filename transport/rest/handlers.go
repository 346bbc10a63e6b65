package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/presenter"
)

// celebrateCookieName flags the page rendered right after a winning move.
const celebrateCookieName = "celebrate"

func (that *Server) handleBoardPage(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleBoardPage")

	game, err := that.uGame.GetOrCreateGame(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	outcome := entity.OutcomeIgnored
	if _, err = r.Cookie(celebrateCookieName); err == nil && game.HasWinner() {
		outcome = entity.OutcomeWon
	}
	http.SetCookie(w, &http.Cookie{Name: celebrateCookieName, Path: "/", MaxAge: -1})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = boardPage.Execute(w, presenter.NewGameView(game, outcome)); err != nil {
		log.Error("failed to render board", "error", err)
	}
}

func (that *Server) handlePlayForm(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handlePlayForm")

	cell, err := cellFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, outcome, err := that.uGame.Play(r.Context(), sessionFromContext(r.Context()), cell)
	if err != nil {
		log.Error("failed to play", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if outcome == entity.OutcomeWon {
		http.SetCookie(w, &http.Cookie{Name: celebrateCookieName, Value: "1", Path: "/", HttpOnly: true})
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Server) handleResetForm(w http.ResponseWriter, r *http.Request) {
	if _, err := that.uGame.Reset(r.Context(), sessionFromContext(r.Context())); err != nil {
		that.logger.Error("failed to reset game", "method", "handleResetForm", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetOrCreateGame(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		that.logger.Error("failed to get game", "method", "handleGetGame", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, presenter.NewGameView(game, entity.OutcomeIgnored))
}

func (that *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	cell, err := cellFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	game, outcome, err := that.uGame.Play(r.Context(), sessionFromContext(r.Context()), cell)
	if err != nil {
		that.logger.Error("failed to play", "method", "handlePlay", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, presenter.NewGameView(game, outcome))
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.Reset(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		that.logger.Error("failed to reset game", "method", "handleReset", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, presenter.NewGameView(game, entity.OutcomeIgnored))
}

func (that *Server) writeJSON(w http.ResponseWriter, view presenter.GameView) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func cellFromPath(r *http.Request) (int, error) {
	raw := mux.Vars(r)["cell"]

	cell, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		// an integer beyond int is still just an out-of-range cell
		return -1, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, raw)
	}

	return cell, nil
}
