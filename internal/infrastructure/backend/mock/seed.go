package mock

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pawscare/vetgate/internal/core/domain"
)

const clinicID = "clinic-001"

// Demo credentials, documented in the README:
//
//	9000000001 / Admin@2026!  (admin)
//	9000000002 / Vet@2026!    (vet)
//	9000000003 / Staff@2026!  (staff)
func (b *Backend) seed() {
	now := b.now().UTC()
	today := now.Format("2006-01-02")

	str := func(s string) *string { return &s }

	b.users = []domain.User{
		{ID: "user-admin-001", ClinicID: clinicID, Name: "Dr. Admin", Phone: "9000000001", Email: str("admin@pawscare.com"), Role: domain.RoleAdmin, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "user-vet-001", ClinicID: clinicID, Name: "Dr. Rajesh Sharma", Phone: "9000000002", Email: str("rajesh.sharma@pawscare.com"), Role: domain.RoleVet, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "user-staff-001", ClinicID: clinicID, Name: "Anjali Gupta", Phone: "9000000003", Email: str("anjali@pawscare.com"), Role: domain.RoleStaff, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	b.seedPassword("9000000001", "Admin@2026!")
	b.seedPassword("9000000002", "Vet@2026!")
	b.seedPassword("9000000003", "Staff@2026!")

	b.parents = []domain.PetParent{
		{ID: "parent-001", ClinicID: clinicID, Name: "Amit Kumar", Phone: "9811111111", Email: str("amit.kumar@example.com"), Address: str("12 MG Road, Bengaluru"), CreatedAt: now, UpdatedAt: now},
		{ID: "parent-002", ClinicID: clinicID, Name: "Sneha Patel", Phone: "9822222222", Email: str("sneha.patel@example.com"), CreatedAt: now, UpdatedAt: now},
		{ID: "parent-003", ClinicID: clinicID, Name: "Vikram Singh", Phone: "9833333333", CreatedAt: now, UpdatedAt: now},
	}

	b.pets = []domain.Pet{
		{ID: "pet-001", ClinicID: clinicID, PetParentID: "parent-001", Name: "Buddy", Species: "dog", Breed: str("Labrador"), Gender: domain.GenderMale, DateOfBirth: str("2021-03-14"), CreatedAt: now, UpdatedAt: now},
		{ID: "pet-002", ClinicID: clinicID, PetParentID: "parent-002", Name: "Whiskers", Species: "cat", Breed: str("Persian"), Gender: domain.GenderFemale, CreatedAt: now, UpdatedAt: now},
		{ID: "pet-003", ClinicID: clinicID, PetParentID: "parent-003", Name: "Simba", Species: "dog", Breed: str("German Shepherd"), Gender: domain.GenderMale, Alerts: str("aggressive when handled by strangers"), CreatedAt: now, UpdatedAt: now},
	}

	b.records = []domain.MedicalRecord{
		{ID: "rec-001", ClinicID: clinicID, PetID: "pet-001", VetID: "user-vet-001", VisitDate: "2026-07-02", Symptoms: str("lethargy, reduced appetite"), Diagnosis: str("mild gastritis"), Prescription: str("omeprazole 10mg, bland diet"), CreatedAt: now, UpdatedAt: now},
		{ID: "rec-002", ClinicID: clinicID, PetID: "pet-002", VetID: "user-vet-001", VisitDate: "2026-08-11", Symptoms: str("head shaking, ear discharge"), Diagnosis: str("otitis externa"), Prescription: str("ear drops twice daily"), FollowUpDate: str("2026-08-25"), CreatedAt: now, UpdatedAt: now},
	}

	b.appointments = []domain.Appointment{
		{ID: "apt-001", ClinicID: clinicID, PetID: "pet-001", VetID: "user-vet-001", AppointmentDate: today, StartTime: "10:00", EndTime: "10:30", Status: domain.AppointmentScheduled, ProcedureType: str("Annual Checkup"), CreatedAt: now, UpdatedAt: now},
		{ID: "apt-002", ClinicID: clinicID, PetID: "pet-002", VetID: "user-vet-001", AppointmentDate: today, StartTime: "11:30", EndTime: "12:00", Status: domain.AppointmentScheduled, ProcedureType: str("Ear Infection Checkup"), CreatedAt: now, UpdatedAt: now},
		{ID: "apt-003", ClinicID: clinicID, PetID: "pet-003", VetID: "user-vet-001", AppointmentDate: "2026-08-20", StartTime: "14:00", EndTime: "14:30", Status: domain.AppointmentCompleted, ProcedureType: str("Vaccination"), CreatedAt: now, UpdatedAt: now},
	}

	b.invoices = []domain.Invoice{
		{ID: "inv-001", ClinicID: clinicID, PetID: "pet-001", InvoiceNumber: "INV-008", TotalAmount: 2500, GSTAmount: 381.36, Status: domain.InvoiceIssued, LineItems: []domain.InvoiceLineItem{{Description: "Annual checkup", Quantity: 1, UnitPrice: 2500, Total: 2500}}, CreatedAt: now, UpdatedAt: now},
		{ID: "inv-002", ClinicID: clinicID, PetID: "pet-003", InvoiceNumber: "INV-009", TotalAmount: 3800, GSTAmount: 579.66, Status: domain.InvoiceIssued, CreatedAt: now, UpdatedAt: now},
		{ID: "inv-003", ClinicID: clinicID, PetID: "pet-002", InvoiceNumber: "INV-010", TotalAmount: 1200, GSTAmount: 183.05, Status: domain.InvoicePaid, CreatedAt: now, UpdatedAt: now},
	}

	b.inventory = []domain.InventoryItem{
		{ID: "item-001", ClinicID: clinicID, Name: "Rabies vaccine", Quantity: 4, LowStockThreshold: 10, ExpiryDate: str("2027-01-31"), CreatedAt: now, UpdatedAt: now},
		{ID: "item-002", ClinicID: clinicID, Name: "Deworming tablets", Quantity: 120, LowStockThreshold: 30, CreatedAt: now, UpdatedAt: now},
		{ID: "item-003", ClinicID: clinicID, Name: "Surgical gloves", Quantity: 8, LowStockThreshold: 25, CreatedAt: now, UpdatedAt: now},
	}
}

func (b *Backend) seedPassword(phone, password string) {
	hash, err := bcryptHash(password)
	if err != nil {
		panic(fmt.Sprintf("mock: seed password: %v", err))
	}
	b.passwords[phone] = hash
}

func (b *Backend) nextInvoiceNumber() string {
	return fmt.Sprintf("INV-%03d", len(b.invoices)+8)
}

func bcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
