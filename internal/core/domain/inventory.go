package domain

import "time"

// InventoryItem is a stocked consumable or medicine.
type InventoryItem struct {
	ID                string    `json:"id"`
	ClinicID          string    `json:"clinic_id"`
	Name              string    `json:"name"`
	Quantity          int       `json:"quantity"`
	ExpiryDate        *string   `json:"expiry_date"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

type InventoryItemInput struct {
	Name              *string `json:"name,omitempty"`
	Quantity          *int    `json:"quantity,omitempty"`
	ExpiryDate        *string `json:"expiry_date,omitempty"`
	LowStockThreshold *int    `json:"low_stock_threshold,omitempty"`
}
