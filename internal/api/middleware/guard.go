package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/authctx"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// SessionCookie carries the gateway session ID between the browser and the
// gateway. The bearer token itself never leaves the server side.
const SessionCookie = "vetgate_session"

// sessionKey is the echo context key the guard stores the resolved
// ports.Session under.
const sessionKey = "session"

// Guard is the route guard: it resolves the session on every request with no
// caching of the decision.
//
//   - authenticated: the session and bearer token are injected into the
//     request context and the nested handler runs.
//   - anonymous: browser navigations are redirected to loginRoute, API calls
//     get 401.
//   - validating (another request is already revalidating this session's
//     token): 202 with the state, the client retries.
func Guard(sessions ports.SessionService, loginRoute string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := SessionID(c)
			if sid == "" {
				return denied(c, loginRoute)
			}

			sess, err := sessions.Resolve(c.Request().Context(), sid)
			if err != nil {
				return err
			}

			switch sess.State {
			case ports.StateAuthenticated:
				c.Set(sessionKey, sess)
				ctx := authctx.WithSessionID(c.Request().Context(), sid)
				ctx = authctx.WithToken(ctx, sess.Token)
				c.SetRequest(c.Request().WithContext(ctx))
				return next(c)
			case ports.StateValidating:
				return c.JSON(http.StatusAccepted, map[string]string{"state": string(ports.StateValidating)})
			default:
				return denied(c, loginRoute)
			}
		}
	}
}

func denied(c echo.Context, loginRoute string) error {
	if isNavigation(c.Request()) {
		return c.Redirect(http.StatusFound, loginRoute)
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

// isNavigation reports whether the request is a browser page load rather
// than an API call.
func isNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}

// SessionID returns the gateway session ID from the request cookie, or "".
func SessionID(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// EnsureSessionID returns the request's session ID, minting one and setting
// the cookie when the browser arrived without it. Used by the login handler;
// the guard itself never mints IDs. secure marks the cookie HTTPS-only and
// must be set in production.
func EnsureSessionID(c echo.Context, secure bool) string {
	if sid := SessionID(c); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// SessionFromContext returns the session the guard stored for an
// authenticated request.
func SessionFromContext(c echo.Context) (ports.Session, bool) {
	sess, ok := c.Get(sessionKey).(ports.Session)
	return sess, ok
}
