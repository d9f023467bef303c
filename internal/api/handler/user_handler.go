package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// UserHandler proxies the staff account catalogue. The backend enforces who
// may manage accounts; the gateway only shapes the requests.
type UserHandler struct {
	backend ports.UserAPI
}

func NewUserHandler(backend ports.UserAPI) *UserHandler {
	return &UserHandler{backend: backend}
}

type createUserRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Phone    string  `json:"phone"    validate:"required,numeric"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Role     string  `json:"role"     validate:"required,oneof=admin vet staff"`
	Password string  `json:"password" validate:"required,min=8"`
}

func (r *createUserRequest) input() domain.UserInput {
	return domain.UserInput{
		Name:     &r.Name,
		Phone:    &r.Phone,
		Email:    r.Email,
		Role:     &r.Role,
		Password: &r.Password,
	}
}

// @Summary  List staff accounts
// @Tags     users
// @Produce  json
// @Success  200  {object}  domain.Page[domain.User]
// @Router   /users [get]
func (h *UserHandler) List(c echo.Context) error {
	return proxyList(c, h.backend.ListUsers)
}

// @Summary  Get a staff account
// @Tags     users
// @Produce  json
// @Success  200  {object}  domain.User
// @Router   /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	return proxyGet(c, h.backend.GetUser)
}

// @Summary  Create a staff account
// @Tags     users
// @Accept   json
// @Produce  json
// @Success  201  {object}  domain.User
// @Router   /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	req, err := bindCreate[createUserRequest](c)
	if err != nil {
		return err
	}
	return proxyCreate(c, h.backend.CreateUser, req.input())
}

// @Summary  Update a staff account
// @Tags     users
// @Accept   json
// @Produce  json
// @Success  200  {object}  domain.User
// @Router   /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	return proxyUpdate(c, h.backend.UpdateUser)
}

// @Summary  Deactivate a staff account
// @Tags     users
// @Success  204  "deleted"
// @Router   /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	return proxyDelete(c, h.backend.DeleteUser)
}
