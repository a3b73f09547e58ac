// Package rollup recomputes the derived financial fields stored on
// customers: lifetime sales amount, paid, due, returned value and
// profit. The recompute is always a full scan over every sale and
// return record; no incremental variant exists, so re-running it is
// idempotent and concurrent runs converge to the same snapshot.
package rollup

import (
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

// Totals holds the five derived fields persisted onto a customer.
type Totals struct {
	// Amount is the lifetime sales total.
	Amount types.Amount `json:"amount"`
	// Paid is the lifetime amount the customer has paid.
	Paid types.Amount `json:"paid"`
	// Due = Amount - Paid.
	Due types.Amount `json:"due"`
	// ReturnAmount is the lifetime returned value.
	ReturnAmount types.Amount `json:"returnAmount"`
	// Profit = Amount - ReturnAmount.
	Profit types.Amount `json:"profit"`
}

// SaleRecord is the slice of a sale the rollup needs.
type SaleRecord struct {
	CustomerID id.ID
	Amount     types.Amount
	Paid       types.Amount
}

// ReturnRecord is the slice of a return the rollup needs.
type ReturnRecord struct {
	CustomerID id.ID
	Amount     types.Amount
}

// Snapshot is an immutable view of the record sets the rollup derives
// from. Customers lists every customer identity, including those with
// no records: their totals are recomputed to zero.
type Snapshot struct {
	Customers []id.ID
	Sales     []SaleRecord
	Returns   []ReturnRecord
}

// Compute derives per-customer totals from a full snapshot.
//
// Records are grouped by customer in a single pass over sales and
// returns, then the dependent fields (due, profit) are derived once per
// customer after the full iteration. The result is independent of
// record order and of customers that appear in records but not in the
// customer list (stale references are dropped, matching a full-scan
// recompute over current data).
func Compute(snap Snapshot) map[id.ID]Totals {
	known := make(map[id.ID]bool, len(snap.Customers))
	for _, customerID := range snap.Customers {
		known[customerID] = true
	}

	totals := make(map[id.ID]Totals, len(snap.Customers))

	for _, sale := range snap.Sales {
		if !known[sale.CustomerID] {
			continue
		}
		t := totals[sale.CustomerID]
		t.Amount += sale.Amount
		t.Paid += sale.Paid
		totals[sale.CustomerID] = t
	}

	for _, ret := range snap.Returns {
		if !known[ret.CustomerID] {
			continue
		}
		t := totals[ret.CustomerID]
		t.ReturnAmount += ret.Amount
		totals[ret.CustomerID] = t
	}

	// Derive due and profit after the sums are complete, and make sure
	// every known customer gets an (possibly all-zero) entry so stale
	// values are overwritten on persist.
	for _, customerID := range snap.Customers {
		t := totals[customerID]
		t.Due = t.Amount - t.Paid
		t.Profit = t.Amount - t.ReturnAmount
		totals[customerID] = t
	}

	return totals
}
