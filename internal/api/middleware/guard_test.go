package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/authctx"
	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

type stubSessions struct {
	resolveFn func(ctx context.Context, sid string) (ports.Session, error)
}

func (s *stubSessions) Resolve(ctx context.Context, sid string) (ports.Session, error) {
	return s.resolveFn(ctx, sid)
}

func (s *stubSessions) Login(context.Context, string, domain.Credentials) (ports.Session, error) {
	return ports.Session{}, nil
}

func (s *stubSessions) Logout(context.Context, string) error { return nil }

func guarded(sessions ports.SessionService, next echo.HandlerFunc) echo.HandlerFunc {
	return Guard(sessions, "/login")(next)
}

func doRequest(t *testing.T, h echo.HandlerFunc, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func withSessionCookie(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})
}

func TestGuard_AnonymousAPIGets401(t *testing.T) {
	sessions := &stubSessions{resolveFn: func(context.Context, string) (ports.Session, error) {
		return ports.Session{State: ports.StateAnonymous}, nil
	}}
	h := guarded(sessions, func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	rec := doRequest(t, h, withSessionCookie)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGuard_AnonymousNavigationRedirects(t *testing.T) {
	sessions := &stubSessions{resolveFn: func(context.Context, string) (ports.Session, error) {
		return ports.Session{State: ports.StateAnonymous}, nil
	}}
	h := guarded(sessions, func(echo.Context) error { return nil })

	rec := doRequest(t, h, func(r *http.Request) {
		withSessionCookie(r)
		r.Header.Set("Accept", "text/html,application/xhtml+xml")
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestGuard_MissingCookieDenied(t *testing.T) {
	sessions := &stubSessions{resolveFn: func(context.Context, string) (ports.Session, error) {
		t.Fatal("resolve must not be called without a cookie")
		return ports.Session{}, nil
	}}
	h := guarded(sessions, func(echo.Context) error { return nil })

	rec := doRequest(t, h, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGuard_AuthenticatedInjectsSession(t *testing.T) {
	user := domain.User{ID: "u1", Role: domain.RoleVet}
	sessions := &stubSessions{resolveFn: func(_ context.Context, sid string) (ports.Session, error) {
		if sid != "sid-1" {
			t.Errorf("resolved sid %q", sid)
		}
		return ports.Session{State: ports.StateAuthenticated, Token: "tok", User: &user}, nil
	}}

	var called bool
	h := guarded(sessions, func(c echo.Context) error {
		called = true
		sess, ok := SessionFromContext(c)
		if !ok || sess.User.ID != "u1" {
			t.Errorf("session not stored on context: %+v", sess)
		}
		ctx := c.Request().Context()
		if authctx.Token(ctx) != "tok" {
			t.Errorf("token not injected into request context")
		}
		if authctx.SessionID(ctx) != "sid-1" {
			t.Errorf("session id not injected into request context")
		}
		return c.NoContent(http.StatusOK)
	})

	rec := doRequest(t, h, withSessionCookie)
	if !called {
		t.Fatal("handler did not run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGuard_ValidatingGets202(t *testing.T) {
	sessions := &stubSessions{resolveFn: func(context.Context, string) (ports.Session, error) {
		return ports.Session{State: ports.StateValidating}, nil
	}}
	h := guarded(sessions, func(echo.Context) error {
		t.Fatal("handler must not run while validating")
		return nil
	})

	rec := doRequest(t, h, withSessionCookie)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "validating") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestEnsureSessionID_MintsOnce(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sid := EnsureSessionID(c, false)
	if sid == "" {
		t.Fatal("expected minted session id")
	}

	res := rec.Result()
	var cookie *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == SessionCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatal("session cookie not set")
	}
	if cookie.Value != sid || !cookie.HttpOnly || cookie.Path != "/" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if cookie.Secure {
		t.Fatal("development cookie must not be HTTPS-only")
	}

	// Existing cookie wins over minting.
	req2 := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req2.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-existing"})
	c2 := e.NewContext(req2, httptest.NewRecorder())
	if got := EnsureSessionID(c2, false); got != "sid-existing" {
		t.Fatalf("EnsureSessionID = %q, want existing id", got)
	}
}

func TestEnsureSessionID_SecureCookieInProduction(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	EnsureSessionID(c, true)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookie {
			if !ck.Secure {
				t.Fatal("production session cookie must be HTTPS-only")
			}
			return
		}
	}
	t.Fatal("session cookie not set")
}
