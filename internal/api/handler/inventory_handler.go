package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// InventoryHandler proxies the stock catalogue.
type InventoryHandler struct {
	backend ports.InventoryAPI
}

func NewInventoryHandler(backend ports.InventoryAPI) *InventoryHandler {
	return &InventoryHandler{backend: backend}
}

type createInventoryItemRequest struct {
	Name              string  `json:"name"     validate:"required"`
	Quantity          int     `json:"quantity" validate:"gte=0"`
	ExpiryDate        *string `json:"expiry_date"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
}

func (r *createInventoryItemRequest) input() domain.InventoryItemInput {
	return domain.InventoryItemInput{
		Name:              &r.Name,
		Quantity:          &r.Quantity,
		ExpiryDate:        r.ExpiryDate,
		LowStockThreshold: r.LowStockThreshold,
	}
}

// @Summary  List inventory
// @Tags     inventory
// @Produce  json
// @Success  200  {object}  domain.Page[domain.InventoryItem]
// @Router   /inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	return proxyList(c, h.backend.ListInventory)
}

// @Summary  Get an inventory item
// @Tags     inventory
// @Produce  json
// @Success  200  {object}  domain.InventoryItem
// @Router   /inventory/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	return proxyGet(c, h.backend.GetInventoryItem)
}

// @Summary  Add an inventory item
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Success  201  {object}  domain.InventoryItem
// @Router   /inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	req, err := bindCreate[createInventoryItemRequest](c)
	if err != nil {
		return err
	}
	return proxyCreate(c, h.backend.CreateInventoryItem, req.input())
}

// @Summary  Update an inventory item
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Success  200  {object}  domain.InventoryItem
// @Router   /inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	return proxyUpdate(c, h.backend.UpdateInventoryItem)
}

// @Summary  Remove an inventory item
// @Tags     inventory
// @Success  204  "deleted"
// @Router   /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	return proxyDelete(c, h.backend.DeleteInventoryItem)
}
