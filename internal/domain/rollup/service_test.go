package rollup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

type fakeLoader struct {
	snap Snapshot
	err  error
}

func (f *fakeLoader) LoadRollupSnapshot(_ context.Context) (Snapshot, error) {
	return f.snap, f.err
}

type fakePersister struct {
	written map[id.ID]Totals
	failFor map[id.ID]error
}

func newFakePersister() *fakePersister {
	return &fakePersister{
		written: make(map[id.ID]Totals),
		failFor: make(map[id.ID]error),
	}
}

func (f *fakePersister) PersistRollup(_ context.Context, customerID id.ID, totals Totals) error {
	if err := f.failFor[customerID]; err != nil {
		return err
	}
	f.written[customerID] = totals
	return nil
}

func TestService_Recompute(t *testing.T) {
	customerID := id.New()
	loader := &fakeLoader{snap: Snapshot{
		Customers: []id.ID{customerID},
		Sales:     []SaleRecord{{CustomerID: customerID, Amount: 120, Paid: 100}},
		Returns:   []ReturnRecord{{CustomerID: customerID, Amount: 20}},
	}}
	persister := newFakePersister()

	service := NewService(loader, persister)
	err := service.Recompute(context.Background())
	require.NoError(t, err)

	got := persister.written[customerID]
	assert.Equal(t, types.Amount(120), got.Amount)
	assert.Equal(t, types.Amount(20), got.Due)
	assert.Equal(t, types.Amount(100), got.Profit)
}

func TestService_Recompute_LoaderError(t *testing.T) {
	loader := &fakeLoader{err: errors.New("connection refused")}
	service := NewService(loader, newFakePersister())

	err := service.Recompute(context.Background())
	assert.Error(t, err)
}

func TestService_Recompute_ContinuesPastPersistFailure(t *testing.T) {
	failing, healthy := id.New(), id.New()
	loader := &fakeLoader{snap: Snapshot{
		Customers: []id.ID{failing, healthy},
		Sales: []SaleRecord{
			{CustomerID: failing, Amount: 10, Paid: 10},
			{CustomerID: healthy, Amount: 20, Paid: 20},
		},
	}}

	persister := newFakePersister()
	persister.failFor[failing] = errors.New("write failed")

	service := NewService(loader, persister)
	err := service.Recompute(context.Background())

	// The first failure is surfaced, but the healthy customer was still
	// persisted in the same cycle.
	assert.Error(t, err)
	assert.Contains(t, persister.written, healthy)
	assert.NotContains(t, persister.written, failing)
}
