package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// PetParentHandler proxies the owner (pet parent) catalogue.
type PetParentHandler struct {
	backend ports.PetParentAPI
}

func NewPetParentHandler(backend ports.PetParentAPI) *PetParentHandler {
	return &PetParentHandler{backend: backend}
}

type createPetParentRequest struct {
	Name            string  `json:"name"  validate:"required"`
	Phone           string  `json:"phone" validate:"required,numeric"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Address         *string `json:"address"`
	GovtIDReference *string `json:"govt_id_reference"`
}

func (r *createPetParentRequest) input() domain.PetParentInput {
	return domain.PetParentInput{
		Name:            &r.Name,
		Phone:           &r.Phone,
		Email:           r.Email,
		Address:         r.Address,
		GovtIDReference: r.GovtIDReference,
	}
}

// @Summary  List pet parents
// @Tags     pet-parents
// @Produce  json
// @Success  200  {object}  domain.Page[domain.PetParent]
// @Router   /pet_parents [get]
func (h *PetParentHandler) List(c echo.Context) error {
	return proxyList(c, h.backend.ListPetParents)
}

// @Summary  Get a pet parent
// @Tags     pet-parents
// @Produce  json
// @Success  200  {object}  domain.PetParent
// @Router   /pet_parents/{id} [get]
func (h *PetParentHandler) Get(c echo.Context) error {
	return proxyGet(c, h.backend.GetPetParent)
}

// @Summary  Register a pet parent
// @Tags     pet-parents
// @Accept   json
// @Produce  json
// @Success  201  {object}  domain.PetParent
// @Router   /pet_parents [post]
func (h *PetParentHandler) Create(c echo.Context) error {
	req, err := bindCreate[createPetParentRequest](c)
	if err != nil {
		return err
	}
	return proxyCreate(c, h.backend.CreatePetParent, req.input())
}

// @Summary  Update a pet parent
// @Tags     pet-parents
// @Accept   json
// @Produce  json
// @Success  200  {object}  domain.PetParent
// @Router   /pet_parents/{id} [put]
func (h *PetParentHandler) Update(c echo.Context) error {
	return proxyUpdate(c, h.backend.UpdatePetParent)
}

// @Summary  Delete a pet parent
// @Tags     pet-parents
// @Success  204  "deleted"
// @Router   /pet_parents/{id} [delete]
func (h *PetParentHandler) Delete(c echo.Context) error {
	return proxyDelete(c, h.backend.DeletePetParent)
}
