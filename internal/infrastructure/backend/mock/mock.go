// Package mock is the in-memory ports.Backend used when the gateway runs
// without a clinic backend (BACKEND_MODE=mock). It is selected explicitly by
// configuration at startup, never by falling back at runtime, so a real
// outage can never be masked silently.
//
// The mock behaves like the wire contract: it issues bearer tokens on login,
// verifies them on every authenticated call, answers credential failures
// with the same detail message the backend uses, and paginates list
// responses with the standard envelope.
package mock

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pawscare/vetgate/internal/core/authctx"
	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Backend holds the seeded clinic data. All access is guarded by mu; the
// dataset is small enough that linear scans are fine.
type Backend struct {
	secret      []byte
	tokenTTL    time.Duration
	invalidator ports.SessionInvalidator
	now         func() time.Time

	mu           sync.RWMutex
	users        []domain.User
	passwords    map[string]string // phone -> bcrypt hash
	parents      []domain.PetParent
	pets         []domain.Pet
	records      []domain.MedicalRecord
	appointments []domain.Appointment
	invoices     []domain.Invoice
	payments     []domain.Payment
	inventory    []domain.InventoryItem
}

var _ ports.Backend = (*Backend)(nil)

// New creates a seeded mock backend. The invalidator mirrors the real
// client's 401 seam: an invalid or expired bearer token tears the session
// down the same way an upstream 401 would.
func New(secret string, tokenTTL time.Duration, invalidator ports.SessionInvalidator) *Backend {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	b := &Backend{
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		invalidator: invalidator,
		now:         time.Now,
		passwords:   make(map[string]string),
	}
	b.seed()
	return b
}

// Login checks phone + password against the seeded accounts. Failures carry
// the backend's canonical detail message.
func (b *Backend) Login(_ context.Context, creds domain.Credentials) (*domain.AuthToken, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	hash, ok := b.passwords[creds.Phone]
	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		return nil, domain.NewRequestError(http.StatusUnauthorized, "Invalid credentials")
	}

	user := b.findUserByPhone(creds.Phone)
	if user == nil || !user.IsActive {
		return nil, domain.NewRequestError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := b.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthToken{AccessToken: token, TokenType: "bearer", User: *user}, nil
}

// Me resolves the bearer token carried by ctx to its user.
func (b *Backend) Me(ctx context.Context) (*domain.User, error) {
	user, err := b.authorize(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Dashboard aggregates the landing-page stats from the seeded data.
func (b *Backend) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if _, err := b.authorize(ctx); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	today := b.now().Format("2006-01-02")
	stats := &domain.DashboardStats{
		TotalPets:             len(b.pets),
		TotalOwners:           len(b.parents),
		TodaysAppointmentList: []domain.Appointment{},
		PendingInvoiceList:    []domain.Invoice{},
		LowStockItems:         []domain.InventoryItem{},
	}

	for _, apt := range b.appointments {
		if apt.AppointmentDate == today && apt.Status == domain.AppointmentScheduled {
			stats.TodaysAppointmentList = append(stats.TodaysAppointmentList, apt)
		}
	}
	stats.TodaysAppointments = len(stats.TodaysAppointmentList)

	for _, inv := range b.invoices {
		if inv.Status == domain.InvoiceIssued {
			stats.PendingInvoiceList = append(stats.PendingInvoiceList, inv)
		}
	}
	stats.PendingInvoices = len(stats.PendingInvoiceList)

	for _, item := range b.inventory {
		if item.LowStock() {
			stats.LowStockItems = append(stats.LowStockItems, item)
		}
	}

	return stats, nil
}

// authorize verifies the bearer token and returns its user. Invalid tokens
// trigger the invalidator, matching the real client's 401 behaviour.
func (b *Backend) authorize(ctx context.Context) (*domain.User, error) {
	token := authctx.Token(ctx)
	userID, err := b.verifyToken(token)
	if err == nil {
		b.mu.RLock()
		defer b.mu.RUnlock()
		for i := range b.users {
			if b.users[i].ID == userID {
				u := b.users[i]
				return &u, nil
			}
		}
	}

	if b.invalidator != nil {
		_ = b.invalidator.Invalidate(ctx)
	}
	return nil, domain.ErrUnauthorized
}

func (b *Backend) findUserByPhone(phone string) *domain.User {
	for i := range b.users {
		if b.users[i].Phone == phone {
			u := b.users[i]
			return &u
		}
	}
	return nil
}

// paginate slices items into the standard envelope. Page and size come from
// the opaque query string with sane bounds.
func paginate[T any](items []T, query url.Values) *domain.Page[T] {
	page := queryInt(query, "page", 1)
	size := queryInt(query, "size", defaultPageSize)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	total := len(items)
	pages := (total + size - 1) / size
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return &domain.Page[T]{Items: out, Total: total, Page: page, Size: size, Pages: pages}
}

func queryInt(query url.Values, key string, fallback int) int {
	raw := query.Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
