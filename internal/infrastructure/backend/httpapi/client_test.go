package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawscare/vetgate/internal/core/authctx"
	"github.com/pawscare/vetgate/internal/core/domain"
)

type stubInvalidator struct {
	calls int
}

func (s *stubInvalidator) Invalidate(context.Context) error {
	s.calls++
	return nil
}

func newTestClient(handler http.HandlerFunc) (*Client, *stubInvalidator, *httptest.Server) {
	srv := httptest.NewServer(handler)
	inv := &stubInvalidator{}
	return New(srv.URL, inv, zerolog.Nop()), inv, srv
}

func authedCtx() context.Context {
	ctx := authctx.WithSessionID(context.Background(), "sid-1")
	return authctx.WithToken(ctx, "tok-123")
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotType string
	c, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"p1","name":"Buddy"}`))
	})
	defer srv.Close()

	if _, err := c.GetPet(authedCtx(), "p1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotType != "application/json" {
		t.Fatalf("Content-Type = %q", gotType)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	c, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"t","token_type":"bearer","user":{"id":"u1"}}`))
	})
	defer srv.Close()

	if _, err := c.Login(context.Background(), domain.Credentials{Phone: "9000000001", Password: "pw"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if hasHeader {
		t.Fatalf("unauthenticated request must not carry Authorization, got %q", gotAuth)
	}
}

func TestClient_ListPassesPaginationThrough(t *testing.T) {
	var gotQuery url.Values
	c, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{"id":"p13","name":"Buddy"},{"id":"p14","name":"Whiskers"}],
			"total": 247, "page": 2, "size": 12, "pages": 21
		}`))
	})
	defer srv.Close()

	q := url.Values{}
	q.Set("page", "2")
	q.Set("size", "12")
	page, err := c.ListPets(authedCtx(), q)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if gotQuery.Get("page") != "2" || gotQuery.Get("size") != "12" {
		t.Fatalf("query not forwarded: %v", gotQuery)
	}
	if page.Total != 247 || page.Page != 2 || page.Size != 12 || page.Pages != 21 {
		t.Fatalf("envelope mangled: %+v", page)
	}
	if len(page.Items) != 2 || page.Items[0].Name != "Buddy" {
		t.Fatalf("items mangled: %+v", page.Items)
	}
}

func TestClient_NoContent(t *testing.T) {
	c, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	if err := c.DeletePet(authedCtx(), "p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestClient_ErrorDetailSurfaces(t *testing.T) {
	c, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Pet not found"}`))
	})
	defer srv.Close()

	_, err := c.GetPet(authedCtx(), "nope")
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Status != http.StatusNotFound || re.Message != "Pet not found" {
		t.Fatalf("unexpected error: %+v", re)
	}
}

func TestClient_MalformedErrorBodyFallsBack(t *testing.T) {
	c, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>upstream exploded</html>"))
	})
	defer srv.Close()

	_, err := c.GetPet(authedCtx(), "p1")
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Message != "request failed (500)" {
		t.Fatalf("expected generic fallback, got %q", re.Message)
	}
}

func TestClient_AuthenticatedUnauthorizedInvalidatesSession(t *testing.T) {
	c, inv, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token expired"}`))
	})
	defer srv.Close()

	_, err := c.ListAppointments(authedCtx(), nil)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if inv.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", inv.calls)
	}
}

func TestClient_RejectedLoginKeepsCredentialMessage(t *testing.T) {
	c, inv, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})
	defer srv.Close()

	// No token in context: this is the login path, not an expired session.
	_, err := c.Login(context.Background(), domain.Credentials{Phone: "9000000001", Password: "wrong"})
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Message != "Invalid credentials" {
		t.Fatalf("credential message lost: %q", re.Message)
	}
	if inv.calls != 0 {
		t.Fatalf("a rejected login must not invalidate the session")
	}
}

func TestClient_BackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := New(srv.URL, &stubInvalidator{}, zerolog.Nop())

	_, err := c.Dashboard(authedCtx())
	if err == nil {
		t.Fatalf("expected error against closed server")
	}
	var re *domain.RequestError
	if errors.As(err, &re) {
		t.Fatalf("network failure must not map to a status error: %v", err)
	}
}
