package mock

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/pawscare/vetgate/internal/core/domain"
)

func notFound(what string) error {
	return domain.NewRequestError(http.StatusNotFound, what+" not found")
}

func badRequest(detail string) error {
	return domain.NewRequestError(http.StatusUnprocessableEntity, detail)
}

// --- Pets ---

func (b *Backend) ListPets(ctx context.Context, query url.Values) (*domain.Page[domain.Pet], error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return paginate(b.pets, query), nil
}

func (b *Backend) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.pets {
		if b.pets[i].ID == id {
			pet := b.pets[i]
			pet.PetParent = b.parentOf(pet.PetParentID)
			return &pet, nil
		}
	}
	return nil, notFound("Pet")
}

func (b *Backend) CreatePet(ctx context.Context, in domain.PetInput) (*domain.Pet, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	if in.Name == nil || in.Species == nil || in.PetParentID == nil {
		return nil, badRequest("name, species and pet_parent_id are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now().UTC()
	pet := domain.Pet{
		ID:          uuid.NewString(),
		ClinicID:    clinicID,
		PetParentID: *in.PetParentID,
		Name:        *in.Name,
		Species:     *in.Species,
		Gender:      domain.GenderUnknown,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyPetInput(&pet, in)
	b.pets = append(b.pets, pet)
	return &pet, nil
}

func (b *Backend) UpdatePet(ctx context.Context, id string, in domain.PetInput) (*domain.Pet, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.pets {
		if b.pets[i].ID == id {
			applyPetInput(&b.pets[i], in)
			b.pets[i].UpdatedAt = b.now().UTC()
			pet := b.pets[i]
			return &pet, nil
		}
	}
	return nil, notFound("Pet")
}

func (b *Backend) DeletePet(ctx context.Context, id string) error {
	if _, err := b.authorize(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.pets {
		if b.pets[i].ID == id {
			b.pets = append(b.pets[:i], b.pets[i+1:]...)
			return nil
		}
	}
	return notFound("Pet")
}

func (b *Backend) ListMedicalRecords(ctx context.Context, petID string) ([]domain.MedicalRecord, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := []domain.MedicalRecord{}
	for _, rec := range b.records {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func applyPetInput(p *domain.Pet, in domain.PetInput) {
	if in.PetParentID != nil {
		p.PetParentID = *in.PetParentID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Species != nil {
		p.Species = *in.Species
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Breed != nil {
		p.Breed = in.Breed
	}
	if in.DateOfBirth != nil {
		p.DateOfBirth = in.DateOfBirth
	}
	if in.RegistrationNumber != nil {
		p.RegistrationNumber = in.RegistrationNumber
	}
	if in.SterilizationStatus != nil {
		p.SterilizationStatus = in.SterilizationStatus
	}
	if in.Alerts != nil {
		p.Alerts = in.Alerts
	}
}

func (b *Backend) parentOf(id string) *domain.PetParent {
	for i := range b.parents {
		if b.parents[i].ID == id {
			parent := b.parents[i]
			return &parent
		}
	}
	return nil
}

// --- Pet parents ---

func (b *Backend) ListPetParents(ctx context.Context, query url.Values) (*domain.Page[domain.PetParent], error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return paginate(b.parents, query), nil
}

func (b *Backend) GetPetParent(ctx context.Context, id string) (*domain.PetParent, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if parent := b.parentOf(id); parent != nil {
		return parent, nil
	}
	return nil, notFound("Pet parent")
}

func (b *Backend) CreatePetParent(ctx context.Context, in domain.PetParentInput) (*domain.PetParent, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	if in.Name == nil || in.Phone == nil {
		return nil, badRequest("name and phone are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now().UTC()
	parent := domain.PetParent{
		ID:        uuid.NewString(),
		ClinicID:  clinicID,
		Name:      *in.Name,
		Phone:     *in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyParentInput(&parent, in)
	b.parents = append(b.parents, parent)
	return &parent, nil
}

func (b *Backend) UpdatePetParent(ctx context.Context, id string, in domain.PetParentInput) (*domain.PetParent, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.parents {
		if b.parents[i].ID == id {
			applyParentInput(&b.parents[i], in)
			b.parents[i].UpdatedAt = b.now().UTC()
			parent := b.parents[i]
			return &parent, nil
		}
	}
	return nil, notFound("Pet parent")
}

func (b *Backend) DeletePetParent(ctx context.Context, id string) error {
	if _, err := b.authorize(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.parents {
		if b.parents[i].ID == id {
			b.parents = append(b.parents[:i], b.parents[i+1:]...)
			return nil
		}
	}
	return notFound("Pet parent")
}

func applyParentInput(p *domain.PetParent, in domain.PetParentInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Email != nil {
		p.Email = in.Email
	}
	if in.Address != nil {
		p.Address = in.Address
	}
	if in.GovtIDReference != nil {
		p.GovtIDReference = in.GovtIDReference
	}
}

// --- Appointments ---

func (b *Backend) ListAppointments(ctx context.Context, query url.Values) (*domain.Page[domain.Appointment], error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return paginate(b.appointments, query), nil
}

func (b *Backend) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.appointments {
		if b.appointments[i].ID == id {
			apt := b.appointments[i]
			return &apt, nil
		}
	}
	return nil, notFound("Appointment")
}

func (b *Backend) CreateAppointment(ctx context.Context, in domain.AppointmentInput) (*domain.Appointment, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	if in.PetID == nil || in.VetID == nil || in.AppointmentDate == nil || in.StartTime == nil || in.EndTime == nil {
		return nil, badRequest("pet_id, vet_id, appointment_date, start_time and end_time are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now().UTC()
	apt := domain.Appointment{
		ID:              uuid.NewString(),
		ClinicID:        clinicID,
		PetID:           *in.PetID,
		VetID:           *in.VetID,
		AppointmentDate: *in.AppointmentDate,
		StartTime:       *in.StartTime,
		EndTime:         *in.EndTime,
		Status:          domain.AppointmentScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	applyAppointmentInput(&apt, in)
	b.appointments = append(b.appointments, apt)
	return &apt, nil
}

func (b *Backend) UpdateAppointment(ctx context.Context, id string, in domain.AppointmentInput) (*domain.Appointment, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.appointments {
		if b.appointments[i].ID == id {
			applyAppointmentInput(&b.appointments[i], in)
			b.appointments[i].UpdatedAt = b.now().UTC()
			apt := b.appointments[i]
			return &apt, nil
		}
	}
	return nil, notFound("Appointment")
}

func (b *Backend) DeleteAppointment(ctx context.Context, id string) error {
	if _, err := b.authorize(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.appointments {
		if b.appointments[i].ID == id {
			b.appointments = append(b.appointments[:i], b.appointments[i+1:]...)
			return nil
		}
	}
	return notFound("Appointment")
}

func applyAppointmentInput(a *domain.Appointment, in domain.AppointmentInput) {
	if in.PetID != nil {
		a.PetID = *in.PetID
	}
	if in.VetID != nil {
		a.VetID = *in.VetID
	}
	if in.AppointmentDate != nil {
		a.AppointmentDate = *in.AppointmentDate
	}
	if in.StartTime != nil {
		a.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		a.EndTime = *in.EndTime
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.Notes != nil {
		a.Notes = in.Notes
	}
	if in.ProcedureType != nil {
		a.ProcedureType = in.ProcedureType
	}
}

// --- Invoices & payments ---

func (b *Backend) ListInvoices(ctx context.Context, query url.Values) (*domain.Page[domain.Invoice], error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return paginate(b.invoices, query), nil
}

func (b *Backend) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.invoices {
		if b.invoices[i].ID == id {
			inv := b.invoices[i]
			return &inv, nil
		}
	}
	return nil, notFound("Invoice")
}

func (b *Backend) CreateInvoice(ctx context.Context, in domain.InvoiceInput) (*domain.Invoice, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	if in.PetID == nil || in.TotalAmount == nil {
		return nil, badRequest("pet_id and total_amount are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now().UTC()
	inv := domain.Invoice{
		ID:            uuid.NewString(),
		ClinicID:      clinicID,
		PetID:         *in.PetID,
		InvoiceNumber: b.nextInvoiceNumber(),
		TotalAmount:   *in.TotalAmount,
		Status:        domain.InvoiceDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyInvoiceInput(&inv, in)
	b.invoices = append(b.invoices, inv)
	return &inv, nil
}

func (b *Backend) UpdateInvoice(ctx context.Context, id string, in domain.InvoiceInput) (*domain.Invoice, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.invoices {
		if b.invoices[i].ID == id {
			applyInvoiceInput(&b.invoices[i], in)
			b.invoices[i].UpdatedAt = b.now().UTC()
			inv := b.invoices[i]
			return &inv, nil
		}
	}
	return nil, notFound("Invoice")
}

func (b *Backend) CreatePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	if in.InvoiceID == nil || in.PaymentMethod == nil || in.Amount == nil {
		return nil, badRequest("invoice_id, payment_method and amount are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var invoice *domain.Invoice
	for i := range b.invoices {
		if b.invoices[i].ID == *in.InvoiceID {
			invoice = &b.invoices[i]
			break
		}
	}
	if invoice == nil {
		return nil, notFound("Invoice")
	}

	pay := domain.Payment{
		ID:            uuid.NewString(),
		ClinicID:      clinicID,
		InvoiceID:     invoice.ID,
		PaymentMethod: *in.PaymentMethod,
		Amount:        *in.Amount,
		Status:        domain.PaymentPaid,
		ReferenceID:   in.ReferenceID,
		CreatedAt:     b.now().UTC(),
	}
	b.payments = append(b.payments, pay)

	// A full payment settles the invoice.
	if pay.Amount >= invoice.TotalAmount {
		invoice.Status = domain.InvoicePaid
		invoice.UpdatedAt = pay.CreatedAt
	}
	return &pay, nil
}

func applyInvoiceInput(inv *domain.Invoice, in domain.InvoiceInput) {
	if in.PetID != nil {
		inv.PetID = *in.PetID
	}
	if in.TotalAmount != nil {
		inv.TotalAmount = *in.TotalAmount
	}
	if in.GSTAmount != nil {
		inv.GSTAmount = *in.GSTAmount
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.LineItems != nil {
		inv.LineItems = in.LineItems
	}
}

// --- Inventory ---

func (b *Backend) ListInventory(ctx context.Context, query url.Values) (*domain.Page[domain.InventoryItem], error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return paginate(b.inventory, query), nil
}

func (b *Backend) GetInventoryItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.inventory {
		if b.inventory[i].ID == id {
			item := b.inventory[i]
			return &item, nil
		}
	}
	return nil, notFound("Inventory item")
}

func (b *Backend) CreateInventoryItem(ctx context.Context, in domain.InventoryItemInput) (*domain.InventoryItem, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	if in.Name == nil {
		return nil, badRequest("name is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now().UTC()
	item := domain.InventoryItem{
		ID:        uuid.NewString(),
		ClinicID:  clinicID,
		Name:      *in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInventoryInput(&item, in)
	b.inventory = append(b.inventory, item)
	return &item, nil
}

func (b *Backend) UpdateInventoryItem(ctx context.Context, id string, in domain.InventoryItemInput) (*domain.InventoryItem, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.inventory {
		if b.inventory[i].ID == id {
			applyInventoryInput(&b.inventory[i], in)
			b.inventory[i].UpdatedAt = b.now().UTC()
			item := b.inventory[i]
			return &item, nil
		}
	}
	return nil, notFound("Inventory item")
}

func (b *Backend) DeleteInventoryItem(ctx context.Context, id string) error {
	if _, err := b.authorize(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.inventory {
		if b.inventory[i].ID == id {
			b.inventory = append(b.inventory[:i], b.inventory[i+1:]...)
			return nil
		}
	}
	return notFound("Inventory item")
}

func applyInventoryInput(item *domain.InventoryItem, in domain.InventoryItemInput) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
	}
	if in.LowStockThreshold != nil {
		item.LowStockThreshold = *in.LowStockThreshold
	}
}

// --- Users (staff) ---

func (b *Backend) ListUsers(ctx context.Context, query url.Values) (*domain.Page[domain.User], error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return paginate(b.users, query), nil
}

func (b *Backend) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := range b.users {
		if b.users[i].ID == id {
			u := b.users[i]
			return &u, nil
		}
	}
	return nil, notFound("User")
}

func (b *Backend) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	if in.Name == nil || in.Phone == nil || in.Role == nil || in.Password == nil {
		return nil, badRequest("name, phone, role and password are required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	hash, err := bcryptHash(*in.Password)
	if err != nil {
		return nil, err
	}

	now := b.now().UTC()
	user := domain.User{
		ID:        uuid.NewString(),
		ClinicID:  clinicID,
		Name:      *in.Name,
		Phone:     *in.Phone,
		Role:      *in.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyUserInput(&user, in)
	b.users = append(b.users, user)
	b.passwords[user.Phone] = hash
	return &user, nil
}

func (b *Backend) UpdateUser(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.users {
		if b.users[i].ID == id {
			oldPhone := b.users[i].Phone
			applyUserInput(&b.users[i], in)
			b.users[i].UpdatedAt = b.now().UTC()
			if b.users[i].Phone != oldPhone {
				b.passwords[b.users[i].Phone] = b.passwords[oldPhone]
				delete(b.passwords, oldPhone)
			}
			if in.Password != nil {
				hash, err := bcryptHash(*in.Password)
				if err != nil {
					return nil, err
				}
				b.passwords[b.users[i].Phone] = hash
			}
			u := b.users[i]
			return &u, nil
		}
	}
	return nil, notFound("User")
}

func (b *Backend) DeleteUser(ctx context.Context, id string) error {
	if _, err := b.authorize(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.users {
		if b.users[i].ID == id {
			delete(b.passwords, b.users[i].Phone)
			b.users = append(b.users[:i], b.users[i+1:]...)
			return nil
		}
	}
	return notFound("User")
}

func applyUserInput(u *domain.User, in domain.UserInput) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Email != nil {
		u.Email = in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
}
