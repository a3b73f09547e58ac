package entity

import (
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

// EntryType tags a stock-movement entry as a sale or a return.
type EntryType string

const (
	// EntryTypeSale decreases stock on hand and advances the cumulative
	// sales counter.
	EntryTypeSale EntryType = "sale"
	// EntryTypeReturn puts sold units back on hand.
	EntryTypeReturn EntryType = "return"
)

// Entry is one row of the append-only stock-movement ledger.
// Every Sale or Return document owns exactly one Entry; the pair is
// created, updated and deleted together in the same transaction.
type Entry struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// ProductID references the moved product
	ProductID id.ID `db:"product_id" json:"productId"`

	// Quantity is the moved unit count (always positive; direction comes
	// from Type)
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Type: sale or return
	Type EntryType `db:"type" json:"type"`

	// CreatedAt is when the entry was recorded
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewEntry creates a new ledger entry.
func NewEntry(productID id.ID, quantity types.Quantity, entryType EntryType) Entry {
	return Entry{
		ID:        id.New(),
		ProductID: productID,
		Quantity:  quantity,
		Type:      entryType,
		CreatedAt: time.Now().UTC(),
	}
}

// SignedQuantity returns the quantity with sign applied to stock on hand.
// Sale = negative (stock leaves), return = positive (stock comes back).
func (e *Entry) SignedQuantity() types.Quantity {
	if e.Type == EntryTypeSale {
		return e.Quantity.Neg()
	}
	return e.Quantity
}

// Inventory is the per-product stock balance, maintained alongside the
// entry ledger: units on hand plus the cumulative count of units ever
// sold. The sales counter only grows; the over-return guard compares
// against it.
type Inventory struct {
	ProductID id.ID          `db:"product_id" json:"productId"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	Sales     types.Quantity `db:"sales" json:"sales"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}
