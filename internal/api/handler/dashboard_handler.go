package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/api/middleware"
	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// DashboardHandler serves the landing-page aggregate.
type DashboardHandler struct {
	backend ports.DashboardAPI
}

func NewDashboardHandler(backend ports.DashboardAPI) *DashboardHandler {
	return &DashboardHandler{backend: backend}
}

// dashboardResponse wraps the backend stats with the display-layer admin
// flag the front-end uses to gate the billing widgets.
type dashboardResponse struct {
	domain.DashboardStats
	IsAdmin bool `json:"is_admin"`
}

// Get handles GET /clinic/dashboard.
//
// @Summary      Clinic dashboard aggregate
// @Tags         dashboard
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /clinic/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	stats, err := h.backend.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	sess, _ := middleware.SessionFromContext(c)
	return c.JSON(http.StatusOK, dashboardResponse{
		DashboardStats: *stats,
		IsAdmin:        sess.IsAdmin(),
	})
}
