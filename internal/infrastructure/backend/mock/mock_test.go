package mock

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/pawscare/vetgate/internal/core/authctx"
	"github.com/pawscare/vetgate/internal/core/domain"
)

type stubInvalidator struct {
	calls int
}

func (s *stubInvalidator) Invalidate(context.Context) error {
	s.calls++
	return nil
}

func newBackend() (*Backend, *stubInvalidator) {
	inv := &stubInvalidator{}
	return New("test-secret", time.Hour, inv), inv
}

// loginCtx authenticates as the seeded admin and returns a context carrying
// the issued bearer token.
func loginCtx(t *testing.T, b *Backend) context.Context {
	t.Helper()
	tok, err := b.Login(context.Background(), domain.Credentials{Phone: "9000000001", Password: "Admin@2026!"})
	if err != nil {
		t.Fatalf("seed login failed: %v", err)
	}
	return authctx.WithToken(context.Background(), tok.AccessToken)
}

func TestBackend_LoginAndMe(t *testing.T) {
	b, _ := newBackend()

	tok, err := b.Login(context.Background(), domain.Credentials{Phone: "9000000002", Password: "Vet@2026!"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok.AccessToken == "" || tok.TokenType != "bearer" {
		t.Fatalf("unexpected token: %+v", tok)
	}
	if tok.User.Role != domain.RoleVet {
		t.Fatalf("role = %q, want vet", tok.User.Role)
	}

	user, err := b.Me(authctx.WithToken(context.Background(), tok.AccessToken))
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if user.ID != tok.User.ID {
		t.Fatalf("me returned %q, logged in as %q", user.ID, tok.User.ID)
	}
}

func TestBackend_LoginWrongPassword(t *testing.T) {
	b, _ := newBackend()

	_, err := b.Login(context.Background(), domain.Credentials{Phone: "9000000001", Password: "nope"})
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Status != http.StatusUnauthorized || re.Message != "Invalid credentials" {
		t.Fatalf("unexpected error: %+v", re)
	}
}

func TestBackend_InvalidTokenInvalidatesSession(t *testing.T) {
	b, inv := newBackend()

	_, err := b.Me(authctx.WithToken(context.Background(), "garbage"))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if inv.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", inv.calls)
	}
}

func TestBackend_MissingTokenRejected(t *testing.T) {
	b, _ := newBackend()

	if _, err := b.ListPets(context.Background(), nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestBackend_ListPetsPaginates(t *testing.T) {
	b, _ := newBackend()
	ctx := loginCtx(t, b)

	q := url.Values{}
	q.Set("page", "1")
	q.Set("size", "2")
	page, err := b.ListPets(ctx, q)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Items) != 2 || page.Total != 3 || page.Pages != 2 {
		t.Fatalf("unexpected envelope: items=%d total=%d pages=%d", len(page.Items), page.Total, page.Pages)
	}

	q.Set("page", "2")
	page, err = b.ListPets(ctx, q)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Simba" {
		t.Fatalf("unexpected second page: %+v", page.Items)
	}
}

func TestBackend_PetLifecycle(t *testing.T) {
	b, _ := newBackend()
	ctx := loginCtx(t, b)

	str := func(s string) *string { return &s }

	pet, err := b.CreatePet(ctx, domain.PetInput{
		PetParentID: str("parent-001"),
		Name:        str("Milo"),
		Species:     str("cat"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if pet.ID == "" || pet.Gender != domain.GenderUnknown {
		t.Fatalf("unexpected pet: %+v", pet)
	}

	got, err := b.GetPet(ctx, pet.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.PetParent == nil || got.PetParent.Name != "Amit Kumar" {
		t.Fatalf("detail must embed the owner, got %+v", got.PetParent)
	}

	updated, err := b.UpdatePet(ctx, pet.ID, domain.PetInput{Alerts: str("needs sedation for nail trims")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Alerts == nil || *updated.Alerts == "" {
		t.Fatalf("partial update lost the alert")
	}
	if updated.Name != "Milo" {
		t.Fatalf("partial update clobbered name: %q", updated.Name)
	}

	if err := b.DeletePet(ctx, pet.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err = b.GetPet(ctx, pet.ID)
	var re *domain.RequestError
	if !errors.As(err, &re) || re.Status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
}

func TestBackend_CreatePetValidatesInput(t *testing.T) {
	b, _ := newBackend()
	ctx := loginCtx(t, b)

	_, err := b.CreatePet(ctx, domain.PetInput{})
	var re *domain.RequestError
	if !errors.As(err, &re) || re.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestBackend_MedicalRecordsFilterByPet(t *testing.T) {
	b, _ := newBackend()
	ctx := loginCtx(t, b)

	recs, err := b.ListMedicalRecords(ctx, "pet-001")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recs) != 1 || recs[0].PetID != "pet-001" {
		t.Fatalf("unexpected records: %+v", recs)
	}

	recs, err = b.ListMedicalRecords(ctx, "pet-without-history")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty history, got %d records", len(recs))
	}
}

func TestBackend_FullPaymentSettlesInvoice(t *testing.T) {
	b, _ := newBackend()
	ctx := loginCtx(t, b)

	method := domain.PaymentMethodUPI
	amount := 2500.0
	invoiceID := "inv-001"
	pay, err := b.CreatePayment(ctx, domain.PaymentInput{
		InvoiceID:     &invoiceID,
		PaymentMethod: &method,
		Amount:        &amount,
	})
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if pay.Status != domain.PaymentPaid {
		t.Fatalf("payment status = %q", pay.Status)
	}

	inv, err := b.GetInvoice(ctx, invoiceID)
	if err != nil {
		t.Fatalf("get invoice failed: %v", err)
	}
	if inv.Status != domain.InvoicePaid {
		t.Fatalf("invoice status = %q, want paid", inv.Status)
	}
}

func TestBackend_Dashboard(t *testing.T) {
	b, _ := newBackend()
	ctx := loginCtx(t, b)

	stats, err := b.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.TotalPets != 3 || stats.TotalOwners != 3 {
		t.Fatalf("totals: pets=%d owners=%d", stats.TotalPets, stats.TotalOwners)
	}
	if stats.TodaysAppointments != 2 || len(stats.TodaysAppointmentList) != 2 {
		t.Fatalf("todays appointments = %d", stats.TodaysAppointments)
	}
	if stats.PendingInvoices != 2 {
		t.Fatalf("pending invoices = %d", stats.PendingInvoices)
	}
	if len(stats.LowStockItems) != 2 {
		t.Fatalf("low stock items = %d", len(stats.LowStockItems))
	}
}

func TestBackend_ExpiredTokenRejected(t *testing.T) {
	inv := &stubInvalidator{}
	b := New("test-secret", time.Minute, inv)

	// Issue the token in the past so its TTL has already elapsed.
	b.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	tok, err := b.Login(context.Background(), domain.Credentials{Phone: "9000000001", Password: "Admin@2026!"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, err = b.Me(authctx.WithToken(context.Background(), tok.AccessToken))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}
