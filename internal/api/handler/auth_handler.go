package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/api/middleware"
	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// AuthHandler owns the session endpoints: login, logout, and the session
// view the front-end reads on startup and after every navigation.
type AuthHandler struct {
	sessions      ports.SessionService
	secureCookies bool
}

func NewAuthHandler(sessions ports.SessionService, secureCookies bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, secureCookies: secureCookies}
}

type loginRequest struct {
	Phone    string `json:"phone"    validate:"required,numeric"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	State   string       `json:"state"`
	User    *domain.User `json:"user,omitempty"`
	IsAdmin bool         `json:"is_admin"`
}

func toSessionResponse(sess ports.Session) sessionResponse {
	return sessionResponse{
		State:   string(sess.State),
		User:    sess.User,
		IsAdmin: sess.IsAdmin(),
	}
}

// Login authenticates the operator against the clinic backend.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sid := middleware.EnsureSessionID(c, h.secureCookies)
	sess, err := h.sessions.Login(c.Request().Context(), sid, domain.Credentials{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Logout clears the persisted session record. Safe to call repeatedly and
// without an authenticated session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "session cleared"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid := middleware.SessionID(c)
	if sid == "" {
		return c.NoContent(http.StatusNoContent)
	}
	if err := h.sessions.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state. Unauthenticated callers get the
// anonymous state, not an error: the front-end route guard branches on it.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sid := middleware.SessionID(c)
	if sid == "" {
		return c.JSON(http.StatusOK, sessionResponse{State: string(ports.StateAnonymous)})
	}

	sess, err := h.sessions.Resolve(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Me returns the authenticated user's profile from the guard-resolved
// session.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(http.StatusOK, sess.User)
}
