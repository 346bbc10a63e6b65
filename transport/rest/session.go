package rest

import (
	"context"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
)

type sessionKey struct{}

// sessionMiddleware - makes sure every request carries a session, issuing a cookie when needed.
func (that *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := pkg.SessionID(r)
		if sessionID == "" {
			cookie := pkg.NewSessionCookie(that.sessionTTL)
			http.SetCookie(w, cookie)
			sessionID = cookie.Value

			that.logger.Debug("session cookie not found, new one created", "sessionID", sessionID)
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sessionID)))
	})
}

func sessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionKey{}).(string)
	return sessionID
}
