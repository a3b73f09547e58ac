package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

type fakeRepo struct {
	balances map[id.ID]*entity.Inventory
	entries  map[id.ID]entity.Entry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		balances: make(map[id.ID]*entity.Inventory),
		entries:  make(map[id.ID]entity.Entry),
	}
}

func (r *fakeRepo) CreateEntry(_ context.Context, entry entity.Entry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeRepo) GetEntry(_ context.Context, entryID id.ID) (entity.Entry, error) {
	e, ok := r.entries[entryID]
	if !ok {
		return entity.Entry{}, apperror.NewNotFound("entry", entryID)
	}
	return e, nil
}

func (r *fakeRepo) UpdateEntryQuantity(_ context.Context, entryID id.ID, quantity types.Quantity) error {
	e, ok := r.entries[entryID]
	if !ok {
		return apperror.NewNotFound("entry", entryID)
	}
	e.Quantity = quantity
	r.entries[entryID] = e
	return nil
}

func (r *fakeRepo) DeleteEntry(_ context.Context, entryID id.ID) error {
	if _, ok := r.entries[entryID]; !ok {
		return apperror.NewNotFound("entry", entryID)
	}
	delete(r.entries, entryID)
	return nil
}

func (r *fakeRepo) InitBalance(_ context.Context, productID id.ID, quantity types.Quantity) error {
	r.balances[productID] = &entity.Inventory{ProductID: productID, Quantity: quantity}
	return nil
}

func (r *fakeRepo) GetBalance(_ context.Context, productID id.ID) (entity.Inventory, error) {
	bal, ok := r.balances[productID]
	if !ok {
		return entity.Inventory{}, apperror.NewNotFound("inventory", productID)
	}
	return *bal, nil
}

func (r *fakeRepo) GetBalanceForUpdate(ctx context.Context, productID id.ID) (entity.Inventory, error) {
	return r.GetBalance(ctx, productID)
}

func (r *fakeRepo) ApplyDelta(_ context.Context, productID id.ID, quantityDelta, salesDelta types.Quantity) error {
	bal, ok := r.balances[productID]
	if !ok {
		return apperror.NewNotFound("inventory", productID)
	}
	bal.Quantity += quantityDelta
	bal.Sales += salesDelta
	return nil
}

func seed(repo *fakeRepo, onHand, sold types.Quantity) id.ID {
	productID := id.New()
	repo.balances[productID] = &entity.Inventory{ProductID: productID, Quantity: onHand, Sales: sold}
	return productID
}

func TestCheckAndReserveStock(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		onHand    types.Quantity
		requested types.Quantity
		wantCode  string
	}{
		{name: "enough stock", onHand: 10, requested: 10},
		{name: "partial fit", onHand: 10, requested: 3},
		{name: "not enough", onHand: 2, requested: 3, wantCode: apperror.CodeInsufficientStock},
		{name: "zero stock", onHand: 0, requested: 1, wantCode: apperror.CodeInsufficientStock},
		{name: "negative stock", onHand: -1, requested: 1, wantCode: apperror.CodeInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			productID := seed(repo, tt.onHand, 0)
			service := NewService(repo)

			_, err := service.CheckAndReserveStock(ctx, "P-001", productID, tt.requested)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestCheckReturnable(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	productID := seed(repo, 0, 5)
	service := NewService(repo)

	_, err := service.CheckReturnable(ctx, "P-001", productID, 5)
	assert.NoError(t, err)

	_, err = service.CheckReturnable(ctx, "P-001", productID, 6)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeOverReturn, appErr.Code)
}

func TestRecordSale_MovesBalanceBothWays(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	productID := seed(repo, 10, 0)
	service := NewService(repo)

	entryID, err := service.RecordSale(ctx, productID, 4)
	require.NoError(t, err)
	assert.False(t, id.IsNil(entryID))

	bal := repo.balances[productID]
	assert.Equal(t, types.Quantity(6), bal.Quantity)
	assert.Equal(t, types.Quantity(4), bal.Sales)

	entry := repo.entries[entryID]
	assert.Equal(t, entity.EntryTypeSale, entry.Type)
}

func TestRecordReturn_LeavesSoldCounterAlone(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	productID := seed(repo, 1, 7)
	service := NewService(repo)

	entryID, err := service.RecordReturn(ctx, productID, 2)
	require.NoError(t, err)

	bal := repo.balances[productID]
	assert.Equal(t, types.Quantity(3), bal.Quantity)
	assert.Equal(t, types.Quantity(7), bal.Sales)

	entry := repo.entries[entryID]
	assert.Equal(t, entity.EntryTypeReturn, entry.Type)
}

func TestAmendSale(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	productID := seed(repo, 10, 0)
	service := NewService(repo)

	entryID, err := service.RecordSale(ctx, productID, 4)
	require.NoError(t, err)

	err = service.AmendSale(ctx, entryID, productID, 4, 6)
	require.NoError(t, err)

	bal := repo.balances[productID]
	assert.Equal(t, types.Quantity(4), bal.Quantity)
	assert.Equal(t, types.Quantity(6), bal.Sales)
	assert.Equal(t, types.Quantity(6), repo.entries[entryID].Quantity)

	err = service.AmendSale(ctx, entryID, productID, 6, 1)
	require.NoError(t, err)

	bal = repo.balances[productID]
	assert.Equal(t, types.Quantity(9), bal.Quantity)
	assert.Equal(t, types.Quantity(1), bal.Sales)
}

func TestRevokeSale(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	productID := seed(repo, 10, 0)
	service := NewService(repo)

	entryID, err := service.RecordSale(ctx, productID, 4)
	require.NoError(t, err)

	err = service.RevokeSale(ctx, entryID, productID, 4)
	require.NoError(t, err)

	bal := repo.balances[productID]
	assert.Equal(t, types.Quantity(10), bal.Quantity)
	assert.Equal(t, types.Quantity(0), bal.Sales)
	assert.Empty(t, repo.entries)
}

func TestRevokeReturn(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	productID := seed(repo, 5, 9)
	service := NewService(repo)

	entryID, err := service.RecordReturn(ctx, productID, 3)
	require.NoError(t, err)

	err = service.RevokeReturn(ctx, entryID, productID, 3)
	require.NoError(t, err)

	bal := repo.balances[productID]
	assert.Equal(t, types.Quantity(5), bal.Quantity)
	assert.Equal(t, types.Quantity(9), bal.Sales)
	assert.Empty(t, repo.entries)
}

func TestInitProduct_RejectsNegativeOpening(t *testing.T) {
	service := NewService(newFakeRepo())

	err := service.InitProduct(context.Background(), id.New(), -1)
	assert.Error(t, err)
}
