// Package inventory provides the stock entry ledger and the per-product
// inventory balance built from it.
package inventory

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

// Repository defines operations for the entry ledger and inventory balance.
type Repository interface {
	// Entry ledger

	// CreateEntry appends a ledger entry.
	CreateEntry(ctx context.Context, entry entity.Entry) error

	// GetEntry retrieves a ledger entry by ID.
	GetEntry(ctx context.Context, entryID id.ID) (entity.Entry, error)

	// UpdateEntryQuantity rewrites the quantity of an entry (kept in sync
	// with its parent sale/return).
	UpdateEntryQuantity(ctx context.Context, entryID id.ID, quantity types.Quantity) error

	// DeleteEntry removes a ledger entry (only together with its parent
	// record).
	DeleteEntry(ctx context.Context, entryID id.ID) error

	// Balance

	// InitBalance creates the inventory row for a new product.
	InitBalance(ctx context.Context, productID id.ID, quantity types.Quantity) error

	// GetBalance returns the current balance for a product.
	GetBalance(ctx context.Context, productID id.ID) (entity.Inventory, error)

	// GetBalanceForUpdate returns the balance with a row lock, so stock
	// checks and the following delta are atomic.
	GetBalanceForUpdate(ctx context.Context, productID id.ID) (entity.Inventory, error)

	// ApplyDelta adjusts stock on hand and the cumulative sales counter.
	ApplyDelta(ctx context.Context, productID id.ID, quantityDelta, salesDelta types.Quantity) error
}
