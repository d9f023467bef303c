package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
)

// errorResponse documents the error envelope in the generated API docs; the
// central error handler renders it.
type errorResponse struct {
	Error string `json:"error"`
}

// The resource handlers are a uniform proxy over the backend catalogue:
// bind, validate where a create payload has required fields, call, render.
// These helpers keep each resource handler to its route wiring.

func proxyList[T any](c echo.Context, fn func(context.Context, url.Values) (*domain.Page[T], error)) error {
	page, err := fn(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func proxyGet[T any](c echo.Context, fn func(context.Context, string) (*T, error)) error {
	out, err := fn(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func proxyCreate[In, T any](c echo.Context, fn func(context.Context, In) (*T, error), in In) error {
	out, err := fn(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

func proxyUpdate[In, T any](c echo.Context, fn func(context.Context, string, In) (*T, error)) error {
	var in In
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	out, err := fn(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func proxyDelete(c echo.Context, fn func(context.Context, string) error) error {
	if err := fn(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// bindCreate binds and validates a create payload.
func bindCreate[Req any](c echo.Context) (*Req, error) {
	var req Req
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}
