package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pawscare/vetgate/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if jerr := json.Unmarshal(rec.Body.Bytes(), &body); jerr != nil {
		t.Fatalf("response is not the error envelope: %q", rec.Body.String())
	}
	return rec.Code, body.Error
}

func TestErrorHandler_RequestErrorPassesThrough(t *testing.T) {
	code, msg := renderError(t, domain.NewRequestError(http.StatusNotFound, "Pet not found"))
	if code != http.StatusNotFound || msg != "Pet not found" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_WrappedRequestError(t *testing.T) {
	wrapped := errors.Join(errors.New("fetching pet"), domain.NewRequestError(http.StatusUnprocessableEntity, "name is required"))
	code, msg := renderError(t, wrapped)
	if code != http.StatusUnprocessableEntity || msg != "name is required" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrSessionSuperseded, http.StatusConflict},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrBadRequest, http.StatusBadRequest},
	}
	for _, tc := range cases {
		if code, _ := renderError(t, tc.err); code != tc.code {
			t.Errorf("%v: status = %d, want %d", tc.err, code, tc.code)
		}
	}
}

func TestErrorHandler_EchoErrorKeepsStatus(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	if code != http.StatusUnauthorized || msg != "unauthorized" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, msg := renderError(t, errors.New("redis connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
