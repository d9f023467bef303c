package ports

import (
	"context"
	"net/url"

	"github.com/pawscare/vetgate/internal/core/domain"
)

// Backend is the full catalogue of operations the clinic REST API offers.
// Two implementations exist: the real HTTP client (httpapi) and the seeded
// in-memory backend (mock), selected by configuration at startup.
//
// List operations receive the caller's query parameters opaquely and return
// the backend's pagination envelope unmodified.
type Backend interface {
	AuthAPI
	DashboardAPI
	PetAPI
	PetParentAPI
	AppointmentAPI
	BillingAPI
	InventoryAPI
	UserAPI
}

type AuthAPI interface {
	// Login exchanges credentials for a bearer token and the user profile.
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthToken, error)
	// Me returns the profile of the user owning the bearer token carried by ctx.
	Me(ctx context.Context) (*domain.User, error)
}

type DashboardAPI interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type PetAPI interface {
	ListPets(ctx context.Context, query url.Values) (*domain.Page[domain.Pet], error)
	GetPet(ctx context.Context, id string) (*domain.Pet, error)
	CreatePet(ctx context.Context, in domain.PetInput) (*domain.Pet, error)
	UpdatePet(ctx context.Context, id string, in domain.PetInput) (*domain.Pet, error)
	DeletePet(ctx context.Context, id string) error

	// ListMedicalRecords returns the full visit history of one pet.
	ListMedicalRecords(ctx context.Context, petID string) ([]domain.MedicalRecord, error)
}

type PetParentAPI interface {
	ListPetParents(ctx context.Context, query url.Values) (*domain.Page[domain.PetParent], error)
	GetPetParent(ctx context.Context, id string) (*domain.PetParent, error)
	CreatePetParent(ctx context.Context, in domain.PetParentInput) (*domain.PetParent, error)
	UpdatePetParent(ctx context.Context, id string, in domain.PetParentInput) (*domain.PetParent, error)
	DeletePetParent(ctx context.Context, id string) error
}

type AppointmentAPI interface {
	ListAppointments(ctx context.Context, query url.Values) (*domain.Page[domain.Appointment], error)
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	CreateAppointment(ctx context.Context, in domain.AppointmentInput) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, in domain.AppointmentInput) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// BillingAPI covers invoices and payments. Invoices cannot be deleted and
// payments are create-only; the narrower surface mirrors the backend.
type BillingAPI interface {
	ListInvoices(ctx context.Context, query url.Values) (*domain.Page[domain.Invoice], error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, in domain.InvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, in domain.InvoiceInput) (*domain.Invoice, error)

	CreatePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error)
}

type InventoryAPI interface {
	ListInventory(ctx context.Context, query url.Values) (*domain.Page[domain.InventoryItem], error)
	GetInventoryItem(ctx context.Context, id string) (*domain.InventoryItem, error)
	CreateInventoryItem(ctx context.Context, in domain.InventoryItemInput) (*domain.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id string, in domain.InventoryItemInput) (*domain.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id string) error
}

type UserAPI interface {
	ListUsers(ctx context.Context, query url.Values) (*domain.Page[domain.User], error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in domain.UserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
