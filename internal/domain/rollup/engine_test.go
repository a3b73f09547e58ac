package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

func TestCompute_DerivedFields(t *testing.T) {
	customerID := id.New()

	snap := Snapshot{
		Customers: []id.ID{customerID},
		Sales: []SaleRecord{
			{CustomerID: customerID, Amount: 100, Paid: 80},
			{CustomerID: customerID, Amount: 200, Paid: 180},
		},
		Returns: []ReturnRecord{
			{CustomerID: customerID, Amount: 50},
		},
	}

	totals := Compute(snap)

	got := totals[customerID]
	assert.Equal(t, types.Amount(300), got.Amount)
	assert.Equal(t, types.Amount(260), got.Paid)
	assert.Equal(t, types.Amount(40), got.Due)
	assert.Equal(t, types.Amount(50), got.ReturnAmount)
	assert.Equal(t, types.Amount(250), got.Profit)
}

func TestCompute_OrderIndependent(t *testing.T) {
	a, b := id.New(), id.New()

	forward := Snapshot{
		Customers: []id.ID{a, b},
		Sales: []SaleRecord{
			{CustomerID: a, Amount: 10, Paid: 10},
			{CustomerID: b, Amount: 20, Paid: 5},
			{CustomerID: a, Amount: 30, Paid: 0},
		},
		Returns: []ReturnRecord{
			{CustomerID: b, Amount: 15},
			{CustomerID: a, Amount: 5},
		},
	}

	reversed := Snapshot{
		Customers: []id.ID{b, a},
		Sales: []SaleRecord{
			{CustomerID: a, Amount: 30, Paid: 0},
			{CustomerID: b, Amount: 20, Paid: 5},
			{CustomerID: a, Amount: 10, Paid: 10},
		},
		Returns: []ReturnRecord{
			{CustomerID: a, Amount: 5},
			{CustomerID: b, Amount: 15},
		},
	}

	assert.Equal(t, Compute(forward), Compute(reversed))
}

func TestCompute_Idempotent(t *testing.T) {
	customerID := id.New()
	snap := Snapshot{
		Customers: []id.ID{customerID},
		Sales:     []SaleRecord{{CustomerID: customerID, Amount: 70, Paid: 70}},
	}

	first := Compute(snap)
	second := Compute(snap)

	assert.Equal(t, first, second)
}

func TestCompute_RecordlessCustomerResetsToZero(t *testing.T) {
	withRecords, without := id.New(), id.New()

	snap := Snapshot{
		Customers: []id.ID{withRecords, without},
		Sales:     []SaleRecord{{CustomerID: withRecords, Amount: 100, Paid: 100}},
	}

	totals := Compute(snap)

	// The recordless customer still gets an entry, so a stale nonzero
	// value in the database is overwritten on persist.
	got, ok := totals[without]
	assert.True(t, ok)
	assert.Equal(t, Totals{}, got)
}

func TestCompute_DropsStaleCustomerReferences(t *testing.T) {
	known := id.New()
	unknown := id.New()

	snap := Snapshot{
		Customers: []id.ID{known},
		Sales: []SaleRecord{
			{CustomerID: known, Amount: 10, Paid: 10},
			{CustomerID: unknown, Amount: 999, Paid: 999},
		},
		Returns: []ReturnRecord{
			{CustomerID: unknown, Amount: 999},
		},
	}

	totals := Compute(snap)

	assert.Len(t, totals, 1)
	assert.Equal(t, types.Amount(10), totals[known].Amount)
}

func TestCompute_NegativeDueWhenOverpaid(t *testing.T) {
	customerID := id.New()
	snap := Snapshot{
		Customers: []id.ID{customerID},
		Sales:     []SaleRecord{{CustomerID: customerID, Amount: 100, Paid: 150}},
	}

	totals := Compute(snap)

	assert.Equal(t, types.Amount(-50), totals[customerID].Due)
}
