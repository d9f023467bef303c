package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// BillingHandler proxies invoices and payments. Invoices have no delete
// route and payments are create-only, matching the backend contract.
type BillingHandler struct {
	backend ports.BillingAPI
}

func NewBillingHandler(backend ports.BillingAPI) *BillingHandler {
	return &BillingHandler{backend: backend}
}

type createInvoiceRequest struct {
	PetID       string                   `json:"pet_id"       validate:"required"`
	TotalAmount float64                  `json:"total_amount" validate:"required,gt=0"`
	GSTAmount   *float64                 `json:"gst_amount"`
	LineItems   []domain.InvoiceLineItem `json:"line_items"`
}

func (r *createInvoiceRequest) input() domain.InvoiceInput {
	return domain.InvoiceInput{
		PetID:       &r.PetID,
		TotalAmount: &r.TotalAmount,
		GSTAmount:   r.GSTAmount,
		LineItems:   r.LineItems,
	}
}

type createPaymentRequest struct {
	InvoiceID     string  `json:"invoice_id"     validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=upi cash card"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	ReferenceID   *string `json:"reference_id"`
}

func (r *createPaymentRequest) input() domain.PaymentInput {
	return domain.PaymentInput{
		InvoiceID:     &r.InvoiceID,
		PaymentMethod: &r.PaymentMethod,
		Amount:        &r.Amount,
		ReferenceID:   r.ReferenceID,
	}
}

// @Summary  List invoices
// @Tags     billing
// @Produce  json
// @Success  200  {object}  domain.Page[domain.Invoice]
// @Router   /invoices [get]
func (h *BillingHandler) ListInvoices(c echo.Context) error {
	return proxyList(c, h.backend.ListInvoices)
}

// @Summary  Get an invoice
// @Tags     billing
// @Produce  json
// @Success  200  {object}  domain.Invoice
// @Router   /invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c echo.Context) error {
	return proxyGet(c, h.backend.GetInvoice)
}

// @Summary  Raise an invoice
// @Tags     billing
// @Accept   json
// @Produce  json
// @Success  201  {object}  domain.Invoice
// @Router   /invoices [post]
func (h *BillingHandler) CreateInvoice(c echo.Context) error {
	req, err := bindCreate[createInvoiceRequest](c)
	if err != nil {
		return err
	}
	return proxyCreate(c, h.backend.CreateInvoice, req.input())
}

// @Summary  Update an invoice
// @Tags     billing
// @Accept   json
// @Produce  json
// @Success  200  {object}  domain.Invoice
// @Router   /invoices/{id} [put]
func (h *BillingHandler) UpdateInvoice(c echo.Context) error {
	return proxyUpdate(c, h.backend.UpdateInvoice)
}

// @Summary  Record a payment
// @Tags     billing
// @Accept   json
// @Produce  json
// @Success  201  {object}  domain.Payment
// @Router   /payments [post]
func (h *BillingHandler) CreatePayment(c echo.Context) error {
	req, err := bindCreate[createPaymentRequest](c)
	if err != nil {
		return err
	}
	return proxyCreate(c, h.backend.CreatePayment, req.input())
}
