package domain

import "time"

const (
	InvoiceDraft     = "draft"
	InvoiceIssued    = "issued"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
)

const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Invoice is a bill raised against a pet's treatment. Invoices are never
// deleted through the dashboard; cancellation is a status change.
type Invoice struct {
	ID            string            `json:"id"`
	ClinicID      string            `json:"clinic_id"`
	PetID         string            `json:"pet_id"`
	InvoiceNumber string            `json:"invoice_number"`
	TotalAmount   float64           `json:"total_amount"`
	GSTAmount     float64           `json:"gst_amount"`
	Status        string            `json:"status"`
	LineItems     []InvoiceLineItem `json:"line_items,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Pet           *Pet              `json:"pet,omitempty"`
}

type InvoiceInput struct {
	PetID       *string           `json:"pet_id,omitempty"`
	TotalAmount *float64          `json:"total_amount,omitempty"`
	GSTAmount   *float64          `json:"gst_amount,omitempty"`
	Status      *string           `json:"status,omitempty"`
	LineItems   []InvoiceLineItem `json:"line_items,omitempty"`
}

// Payment records money received against an invoice. Create-only through
// the dashboard.
type Payment struct {
	ID            string    `json:"id"`
	ClinicID      string    `json:"clinic_id"`
	InvoiceID     string    `json:"invoice_id"`
	PaymentMethod string    `json:"payment_method"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	ReferenceID   *string   `json:"reference_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentInput struct {
	InvoiceID     *string  `json:"invoice_id,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	ReferenceID   *string  `json:"reference_id,omitempty"`
}
