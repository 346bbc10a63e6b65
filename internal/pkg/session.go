package pkg

import (
	"net/http"
	"time"
)

const SessionCookieName = "user_session"

// SessionID returns the session carried by the request cookie, or "" if there is none.
func SessionID(req *http.Request) string {
	cookie, err := req.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// NewSessionCookie - builds a cookie for a freshly generated session.
// A zero lifetime gives a browser-session cookie, matching a game stored without expiry.
func NewSessionCookie(lifetime time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    GenerateNewSessionID(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if lifetime > 0 {
		cookie.Expires = time.Now().Add(lifetime)
		cookie.MaxAge = int(lifetime / time.Second)
	}

	return cookie
}
