package domain

// DashboardStats is the aggregate returned by GET /clinic/dashboard:
// headline counts plus the embedded lists the landing page renders.
type DashboardStats struct {
	TodaysAppointments    int             `json:"todays_appointments"`
	PendingInvoices       int             `json:"pending_invoices"`
	TotalPets             int             `json:"total_pets"`
	TotalOwners           int             `json:"total_owners"`
	TodaysAppointmentList []Appointment   `json:"todays_appointment_list"`
	PendingInvoiceList    []Invoice       `json:"pending_invoice_list"`
	LowStockItems         []InventoryItem `json:"low_stock_items"`
}
