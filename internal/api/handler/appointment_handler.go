package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// AppointmentHandler proxies the appointment catalogue.
type AppointmentHandler struct {
	backend ports.AppointmentAPI
}

func NewAppointmentHandler(backend ports.AppointmentAPI) *AppointmentHandler {
	return &AppointmentHandler{backend: backend}
}

type createAppointmentRequest struct {
	PetID           string  `json:"pet_id"           validate:"required"`
	VetID           string  `json:"vet_id"           validate:"required"`
	AppointmentDate string  `json:"appointment_date" validate:"required"`
	StartTime       string  `json:"start_time"       validate:"required"`
	EndTime         string  `json:"end_time"         validate:"required"`
	Notes           *string `json:"notes"`
	ProcedureType   *string `json:"procedure_type"`
}

func (r *createAppointmentRequest) input() domain.AppointmentInput {
	return domain.AppointmentInput{
		PetID:           &r.PetID,
		VetID:           &r.VetID,
		AppointmentDate: &r.AppointmentDate,
		StartTime:       &r.StartTime,
		EndTime:         &r.EndTime,
		Notes:           r.Notes,
		ProcedureType:   r.ProcedureType,
	}
}

// @Summary  List appointments
// @Tags     appointments
// @Produce  json
// @Success  200  {object}  domain.Page[domain.Appointment]
// @Router   /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	return proxyList(c, h.backend.ListAppointments)
}

// @Summary  Get an appointment
// @Tags     appointments
// @Produce  json
// @Success  200  {object}  domain.Appointment
// @Router   /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	return proxyGet(c, h.backend.GetAppointment)
}

// @Summary  Book an appointment
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Success  201  {object}  domain.Appointment
// @Router   /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	req, err := bindCreate[createAppointmentRequest](c)
	if err != nil {
		return err
	}
	return proxyCreate(c, h.backend.CreateAppointment, req.input())
}

// @Summary  Update an appointment
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Success  200  {object}  domain.Appointment
// @Router   /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	return proxyUpdate(c, h.backend.UpdateAppointment)
}

// @Summary  Cancel an appointment slot
// @Tags     appointments
// @Success  204  "deleted"
// @Router   /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	return proxyDelete(c, h.backend.DeleteAppointment)
}
