package domain

import "time"

const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)

// PetParent is the owner of one or more pets.
type PetParent struct {
	ID               string    `json:"id"`
	ClinicID         string    `json:"clinic_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	Address          *string   `json:"address"`
	GovtIDReference  *string   `json:"govt_id_reference"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PetParentInput struct {
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Address         *string `json:"address,omitempty"`
	GovtIDReference *string `json:"govt_id_reference,omitempty"`
}

// Pet is a registered patient. The backend may embed the owning PetParent
// on detail responses.
type Pet struct {
	ID                  string     `json:"id"`
	ClinicID            string     `json:"clinic_id"`
	PetParentID         string     `json:"pet_parent_id"`
	Name                string     `json:"name"`
	Species             string     `json:"species"`
	Breed               *string    `json:"breed"`
	Gender              string     `json:"gender"`
	DateOfBirth         *string    `json:"date_of_birth"`
	RegistrationNumber  *string    `json:"registration_number"`
	SterilizationStatus *string    `json:"sterilization_status"`
	Alerts              *string    `json:"alerts"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	PetParent           *PetParent `json:"pet_parent,omitempty"`
}

type PetInput struct {
	PetParentID         *string `json:"pet_parent_id,omitempty"`
	Name                *string `json:"name,omitempty"`
	Species             *string `json:"species,omitempty"`
	Breed               *string `json:"breed,omitempty"`
	Gender              *string `json:"gender,omitempty"`
	DateOfBirth         *string `json:"date_of_birth,omitempty"`
	RegistrationNumber  *string `json:"registration_number,omitempty"`
	SterilizationStatus *string `json:"sterilization_status,omitempty"`
	Alerts              *string `json:"alerts,omitempty"`
}

// MedicalRecord is a single visit entry in a pet's history. Records are
// read-only through the dashboard; they are written by the clinical flow.
type MedicalRecord struct {
	ID           string    `json:"id"`
	ClinicID     string    `json:"clinic_id"`
	PetID        string    `json:"pet_id"`
	VetID        string    `json:"vet_id"`
	VisitDate    string    `json:"visit_date"`
	Symptoms     *string   `json:"symptoms"`
	Diagnosis    *string   `json:"diagnosis"`
	Prescription *string   `json:"prescription"`
	FollowUpDate *string   `json:"follow_up_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
