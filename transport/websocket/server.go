package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	Play(ctx context.Context, sessionID string, cell int) (*entity.Game, entity.Outcome, error)
	Reset(ctx context.Context, sessionID string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, sessionID string, message *Message, conn *websocket.Conn) error

type Server struct {
	logger     *slog.Logger
	uGame      uGame
	upgrader   websocket.Upgrader
	sessionTTL time.Duration

	handlers map[string]handlerFunc
}

// New - sessionTTL is the lifetime of issued session cookies, it should match the game storage ttl.
func New(logger *slog.Logger, uGame uGame, sessionTTL time.Duration) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameHostname,
		},
		sessionTTL: sessionTTL,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionPlay] = server.handlePlay
	server.handlers[actionReset] = server.handleReset

	return server
}

// Handler - connections opened through it are closed once ctx is done.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server on port, see Serve.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return that.Serve(ctx, listener)
}

// Serve - serves WebSocket upgrades on listener until ctx is done.
// It returns once the HTTP server has shut down; open sockets are closed through ctx.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
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

// upgradeToWebSocket - upgrades the connection to WebSocket, reusing or issuing the session cookie.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	responseHeader := http.Header{}

	sessionID := pkg.SessionID(r)
	if sessionID == "" {
		cookie := pkg.NewSessionCookie(that.sessionTTL)
		responseHeader.Add("Set-Cookie", cookie.String())
		sessionID = cookie.Value

		log.Debug("session cookie not found, new one created", "sessionID", sessionID)
	}

	conn, err := that.upgrader.Upgrade(w, r, responseHeader)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	// http.Server.Shutdown does not track hijacked connections
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
		}
	}()

	log = log.With("sessionID", sessionID)
	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, sessionID, conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until the connection closes.
func (that *Server) handleMessages(ctx context.Context, sessionID string, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages", "sessionID", sessionID)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, "", "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, sessionID, &message, conn); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

// sameHostname accepts pages served by the HTTP server, which listens on another port of the same host.
func sameHostname(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Hostname() == (&url.URL{Host: r.Host}).Hostname()
}
