package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pawscare/vetgate/internal/core/domain"
)

// The resource catalogue: each operation is a fixed path template composed
// with the shared request helper. No business logic lives here.

// --- Auth ---

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthToken, error) {
	return post[domain.AuthToken](ctx, c, "/auth/login", creds)
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	return get[domain.User](ctx, c, "/auth/me")
}

// --- Dashboard ---

func (c *Client) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return get[domain.DashboardStats](ctx, c, "/clinic/dashboard")
}

// --- Pets ---

func (c *Client) ListPets(ctx context.Context, query url.Values) (*domain.Page[domain.Pet], error) {
	return list[domain.Pet](ctx, c, "/pets", query)
}

func (c *Client) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	return get[domain.Pet](ctx, c, "/pets/"+url.PathEscape(id))
}

func (c *Client) CreatePet(ctx context.Context, in domain.PetInput) (*domain.Pet, error) {
	return post[domain.Pet](ctx, c, "/pets", in)
}

func (c *Client) UpdatePet(ctx context.Context, id string, in domain.PetInput) (*domain.Pet, error) {
	return put[domain.Pet](ctx, c, "/pets/"+url.PathEscape(id), in)
}

func (c *Client) DeletePet(ctx context.Context, id string) error {
	return del(ctx, c, "/pets/"+url.PathEscape(id))
}

func (c *Client) ListMedicalRecords(ctx context.Context, petID string) ([]domain.MedicalRecord, error) {
	return request[[]domain.MedicalRecord](ctx, c, http.MethodGet, "/pets/"+url.PathEscape(petID)+"/medical_records", nil, nil)
}

// --- Pet parents ---

func (c *Client) ListPetParents(ctx context.Context, query url.Values) (*domain.Page[domain.PetParent], error) {
	return list[domain.PetParent](ctx, c, "/pet_parents", query)
}

func (c *Client) GetPetParent(ctx context.Context, id string) (*domain.PetParent, error) {
	return get[domain.PetParent](ctx, c, "/pet_parents/"+url.PathEscape(id))
}

func (c *Client) CreatePetParent(ctx context.Context, in domain.PetParentInput) (*domain.PetParent, error) {
	return post[domain.PetParent](ctx, c, "/pet_parents", in)
}

func (c *Client) UpdatePetParent(ctx context.Context, id string, in domain.PetParentInput) (*domain.PetParent, error) {
	return put[domain.PetParent](ctx, c, "/pet_parents/"+url.PathEscape(id), in)
}

func (c *Client) DeletePetParent(ctx context.Context, id string) error {
	return del(ctx, c, "/pet_parents/"+url.PathEscape(id))
}

// --- Appointments ---

func (c *Client) ListAppointments(ctx context.Context, query url.Values) (*domain.Page[domain.Appointment], error) {
	return list[domain.Appointment](ctx, c, "/appointments", query)
}

func (c *Client) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return get[domain.Appointment](ctx, c, "/appointments/"+url.PathEscape(id))
}

func (c *Client) CreateAppointment(ctx context.Context, in domain.AppointmentInput) (*domain.Appointment, error) {
	return post[domain.Appointment](ctx, c, "/appointments", in)
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, in domain.AppointmentInput) (*domain.Appointment, error) {
	return put[domain.Appointment](ctx, c, "/appointments/"+url.PathEscape(id), in)
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return del(ctx, c, "/appointments/"+url.PathEscape(id))
}

// --- Invoices & payments ---

func (c *Client) ListInvoices(ctx context.Context, query url.Values) (*domain.Page[domain.Invoice], error) {
	return list[domain.Invoice](ctx, c, "/invoices", query)
}

func (c *Client) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return get[domain.Invoice](ctx, c, "/invoices/"+url.PathEscape(id))
}

func (c *Client) CreateInvoice(ctx context.Context, in domain.InvoiceInput) (*domain.Invoice, error) {
	return post[domain.Invoice](ctx, c, "/invoices", in)
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, in domain.InvoiceInput) (*domain.Invoice, error) {
	return put[domain.Invoice](ctx, c, "/invoices/"+url.PathEscape(id), in)
}

func (c *Client) CreatePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	return post[domain.Payment](ctx, c, "/payments", in)
}

// --- Inventory ---

func (c *Client) ListInventory(ctx context.Context, query url.Values) (*domain.Page[domain.InventoryItem], error) {
	return list[domain.InventoryItem](ctx, c, "/inventory", query)
}

func (c *Client) GetInventoryItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return get[domain.InventoryItem](ctx, c, "/inventory/"+url.PathEscape(id))
}

func (c *Client) CreateInventoryItem(ctx context.Context, in domain.InventoryItemInput) (*domain.InventoryItem, error) {
	return post[domain.InventoryItem](ctx, c, "/inventory", in)
}

func (c *Client) UpdateInventoryItem(ctx context.Context, id string, in domain.InventoryItemInput) (*domain.InventoryItem, error) {
	return put[domain.InventoryItem](ctx, c, "/inventory/"+url.PathEscape(id), in)
}

func (c *Client) DeleteInventoryItem(ctx context.Context, id string) error {
	return del(ctx, c, "/inventory/"+url.PathEscape(id))
}

// --- Users (staff) ---

func (c *Client) ListUsers(ctx context.Context, query url.Values) (*domain.Page[domain.User], error) {
	return list[domain.User](ctx, c, "/users", query)
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return get[domain.User](ctx, c, "/users/"+url.PathEscape(id))
}

func (c *Client) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	return post[domain.User](ctx, c, "/users", in)
}

func (c *Client) UpdateUser(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	return put[domain.User](ctx, c, "/users/"+url.PathEscape(id), in)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return del(ctx, c, "/users/"+url.PathEscape(id))
}
