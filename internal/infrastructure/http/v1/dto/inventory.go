package dto

import (
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
)

// InventoryResponse contains the stock balance for one product.
type InventoryResponse struct {
	ProductID string    `json:"productId"`
	Quantity  int64     `json:"quantity"`
	Sales     int64     `json:"sales"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromInventory creates InventoryResponse from an Inventory balance.
func FromInventory(inv *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ProductID: inv.ProductID.String(),
		Quantity:  inv.Quantity.Int64(),
		Sales:     inv.Sales.Int64(),
		UpdatedAt: inv.UpdatedAt,
	}
}
