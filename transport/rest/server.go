package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	Play(ctx context.Context, sessionID string, cell int) (*entity.Game, entity.Outcome, error)
	Reset(ctx context.Context, sessionID string) (*entity.Game, error)
}

type Server struct {
	logger     *slog.Logger
	uGame      uGame
	sessionTTL time.Duration
}

// New - sessionTTL is the lifetime of issued session cookies, it should match the game storage ttl.
func New(logger *slog.Logger, uGame uGame, sessionTTL time.Duration) *Server {
	return &Server{
		logger:     logger.With("component", "rest"),
		uGame:      uGame,
		sessionTTL: sessionTTL,
	}
}

// Handler - builds the router serving the board page and the JSON API.
func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(that.sessionMiddleware)

	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	router.HandleFunc("/", that.handleBoardPage).Methods(http.MethodGet)
	router.HandleFunc("/cells/{cell}", that.handlePlayForm).Methods(http.MethodPost)
	router.HandleFunc("/reset", that.handleResetForm).Methods(http.MethodPost)

	api := router.PathPrefix("/api/game").Subrouter()
	api.HandleFunc("", that.handleGetGame).Methods(http.MethodGet)
	api.HandleFunc("/cells/{cell}", that.handlePlay).Methods(http.MethodPost)
	api.HandleFunc("/reset", that.handleReset).Methods(http.MethodPost)

	return router
}

// Start - starts HTTP server on port, see Serve.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return that.Serve(ctx, listener)
}

// Serve - serves HTTP on listener until ctx is done.
// It returns once in-flight requests have drained or shutdownTimeout has passed.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		serveErrCh <- srv.Serve(listener)
	}()

	select {
	case err := <-serveErrCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-serveErrCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
