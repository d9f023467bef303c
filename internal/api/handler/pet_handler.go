package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// PetHandler proxies the pet catalogue, including the read-only medical
// record history.
type PetHandler struct {
	backend ports.PetAPI
}

func NewPetHandler(backend ports.PetAPI) *PetHandler {
	return &PetHandler{backend: backend}
}

type createPetRequest struct {
	PetParentID         string  `json:"pet_parent_id" validate:"required"`
	Name                string  `json:"name"          validate:"required"`
	Species             string  `json:"species"       validate:"required"`
	Breed               *string `json:"breed"`
	Gender              *string `json:"gender"        validate:"omitempty,oneof=male female unknown"`
	DateOfBirth         *string `json:"date_of_birth"`
	RegistrationNumber  *string `json:"registration_number"`
	SterilizationStatus *string `json:"sterilization_status"`
	Alerts              *string `json:"alerts"`
}

func (r *createPetRequest) input() domain.PetInput {
	return domain.PetInput{
		PetParentID:         &r.PetParentID,
		Name:                &r.Name,
		Species:             &r.Species,
		Breed:               r.Breed,
		Gender:              r.Gender,
		DateOfBirth:         r.DateOfBirth,
		RegistrationNumber:  r.RegistrationNumber,
		SterilizationStatus: r.SterilizationStatus,
		Alerts:              r.Alerts,
	}
}

// List handles GET /pets. Query parameters pass through to the backend.
//
// @Summary  List pets
// @Tags     pets
// @Produce  json
// @Success  200  {object}  domain.Page[domain.Pet]
// @Router   /pets [get]
func (h *PetHandler) List(c echo.Context) error {
	return proxyList(c, h.backend.ListPets)
}

// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Success  200  {object}  domain.Pet
// @Router   /pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	return proxyGet(c, h.backend.GetPet)
}

// @Summary  Register a pet
// @Tags     pets
// @Accept   json
// @Produce  json
// @Success  201  {object}  domain.Pet
// @Router   /pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	req, err := bindCreate[createPetRequest](c)
	if err != nil {
		return err
	}
	return proxyCreate(c, h.backend.CreatePet, req.input())
}

// @Summary  Update a pet
// @Tags     pets
// @Accept   json
// @Produce  json
// @Success  200  {object}  domain.Pet
// @Router   /pets/{id} [put]
func (h *PetHandler) Update(c echo.Context) error {
	return proxyUpdate(c, h.backend.UpdatePet)
}

// @Summary  Delete a pet
// @Tags     pets
// @Success  204  "deleted"
// @Router   /pets/{id} [delete]
func (h *PetHandler) Delete(c echo.Context) error {
	return proxyDelete(c, h.backend.DeletePet)
}

// MedicalRecords handles GET /pets/:id/medical_records.
//
// @Summary  Pet medical history
// @Tags     pets
// @Produce  json
// @Success  200  {array}  domain.MedicalRecord
// @Router   /pets/{id}/medical_records [get]
func (h *PetHandler) MedicalRecords(c echo.Context) error {
	records, err := h.backend.ListMedicalRecords(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
