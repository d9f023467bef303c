package domain

import "time"

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment is a scheduled visit. Detail responses may embed the pet and
// the attending vet.
type Appointment struct {
	ID              string    `json:"id"`
	ClinicID        string    `json:"clinic_id"`
	PetID           string    `json:"pet_id"`
	VetID           string    `json:"vet_id"`
	AppointmentDate string    `json:"appointment_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	ProcedureType   *string   `json:"procedure_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Pet             *Pet      `json:"pet,omitempty"`
	Vet             *User     `json:"vet,omitempty"`
}

type AppointmentInput struct {
	PetID           *string `json:"pet_id,omitempty"`
	VetID           *string `json:"vet_id,omitempty"`
	AppointmentDate *string `json:"appointment_date,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	ProcedureType   *string `json:"procedure_type,omitempty"`
}
