package sales_return

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/customer"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/product"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/registers/inventory"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
)

// --- Fakes ---

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReturnRepo struct {
	returns map[id.ID]*Return
}

func newFakeReturnRepo() *fakeReturnRepo {
	return &fakeReturnRepo{returns: make(map[id.ID]*Return)}
}

func (r *fakeReturnRepo) Create(_ context.Context, doc *Return) error {
	cp := *doc
	r.returns[doc.ID] = &cp
	return nil
}

func (r *fakeReturnRepo) Update(_ context.Context, doc *Return) error {
	if _, ok := r.returns[doc.ID]; !ok {
		return apperror.NewNotFound("return", doc.ID)
	}
	cp := *doc
	r.returns[doc.ID] = &cp
	return nil
}

func (r *fakeReturnRepo) GetByID(_ context.Context, returnID id.ID) (*Return, error) {
	doc, ok := r.returns[returnID]
	if !ok {
		return nil, apperror.NewNotFound("return", returnID)
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeReturnRepo) List(_ context.Context, _ ListFilter) (ListResult, error) {
	return ListResult{}, nil
}

func (r *fakeReturnRepo) Delete(_ context.Context, returnID id.ID) error {
	if _, ok := r.returns[returnID]; !ok {
		return apperror.NewNotFound("return", returnID)
	}
	delete(r.returns, returnID)
	return nil
}

func (r *fakeReturnRepo) LoadRollupRecords(_ context.Context) ([]rollup.ReturnRecord, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*product.Product
}

func (r *fakeProductRepo) Create(_ context.Context, _ *product.Product) error { return nil }
func (r *fakeProductRepo) Update(_ context.Context, _ *product.Product) error { return nil }

func (r *fakeProductRepo) GetByID(_ context.Context, productID id.ID) (*product.Product, error) {
	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("product", productID)
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*product.Product, error) {
	p, ok := r.products[code]
	if !ok {
		return nil, apperror.NewNotFound("product", code)
	}
	return p, nil
}

func (r *fakeProductRepo) List(_ context.Context, _ product.ListFilter) (product.ListResult, error) {
	return product.ListResult{}, nil
}

func (r *fakeProductRepo) SetDeletionMark(_ context.Context, _ id.ID, _ bool) error { return nil }

type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ *customer.Customer) error { return nil }
func (r *fakeCustomerRepo) Update(_ context.Context, _ *customer.Customer) error { return nil }

func (r *fakeCustomerRepo) GetByID(_ context.Context, customerID id.ID) (*customer.Customer, error) {
	for _, c := range r.customers {
		if c.ID == customerID {
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("customer", customerID)
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*customer.Customer, error) {
	c, ok := r.customers[phone]
	if !ok {
		return nil, apperror.NewNotFound("customer", phone)
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ customer.ListFilter) (customer.ListResult, error) {
	return customer.ListResult{}, nil
}

func (r *fakeCustomerRepo) SetDeletionMark(_ context.Context, _ id.ID, _ bool) error { return nil }

func (r *fakeCustomerRepo) PersistRollup(_ context.Context, _ id.ID, _ rollup.Totals) error {
	return nil
}

type fakeInventoryRepo struct {
	balances map[id.ID]*entity.Inventory
	entries  map[id.ID]entity.Entry
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{
		balances: make(map[id.ID]*entity.Inventory),
		entries:  make(map[id.ID]entity.Entry),
	}
}

func (r *fakeInventoryRepo) CreateEntry(_ context.Context, entry entity.Entry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeInventoryRepo) GetEntry(_ context.Context, entryID id.ID) (entity.Entry, error) {
	e, ok := r.entries[entryID]
	if !ok {
		return entity.Entry{}, apperror.NewNotFound("entry", entryID)
	}
	return e, nil
}

func (r *fakeInventoryRepo) UpdateEntryQuantity(_ context.Context, entryID id.ID, quantity types.Quantity) error {
	e, ok := r.entries[entryID]
	if !ok {
		return apperror.NewNotFound("entry", entryID)
	}
	e.Quantity = quantity
	r.entries[entryID] = e
	return nil
}

func (r *fakeInventoryRepo) DeleteEntry(_ context.Context, entryID id.ID) error {
	if _, ok := r.entries[entryID]; !ok {
		return apperror.NewNotFound("entry", entryID)
	}
	delete(r.entries, entryID)
	return nil
}

func (r *fakeInventoryRepo) InitBalance(_ context.Context, productID id.ID, quantity types.Quantity) error {
	r.balances[productID] = &entity.Inventory{ProductID: productID, Quantity: quantity}
	return nil
}

func (r *fakeInventoryRepo) GetBalance(_ context.Context, productID id.ID) (entity.Inventory, error) {
	bal, ok := r.balances[productID]
	if !ok {
		return entity.Inventory{}, apperror.NewNotFound("inventory", productID)
	}
	return *bal, nil
}

func (r *fakeInventoryRepo) GetBalanceForUpdate(ctx context.Context, productID id.ID) (entity.Inventory, error) {
	return r.GetBalance(ctx, productID)
}

func (r *fakeInventoryRepo) ApplyDelta(_ context.Context, productID id.ID, quantityDelta, salesDelta types.Quantity) error {
	bal, ok := r.balances[productID]
	if !ok {
		return apperror.NewNotFound("inventory", productID)
	}
	bal.Quantity += quantityDelta
	bal.Sales += salesDelta
	return nil
}

type fakePublisher struct {
	events []rollup.Event
}

func (p *fakePublisher) Publish(_ context.Context, event rollup.Event) error {
	p.events = append(p.events, event)
	return nil
}

// --- Fixture ---

type fixture struct {
	service   *Service
	repo      *fakeReturnRepo
	invRepo   *fakeInventoryRepo
	publisher *fakePublisher
	customer  *customer.Customer
	product   *product.Product
}

// newFixture seeds one product with the given on-hand stock and
// cumulative sold counter.
func newFixture(t *testing.T, onHand, sold types.Quantity) *fixture {
	t.Helper()

	cust := customer.New("Sara Malik", "03219876543")
	prod := product.New("P-002", "Sunflower Oil 1L", 580)

	invRepo := newFakeInventoryRepo()
	invRepo.balances[prod.ID] = &entity.Inventory{ProductID: prod.ID, Quantity: onHand, Sales: sold}

	txm := fakeTxManager{}
	stockService := inventory.NewService(invRepo)
	productService := product.NewService(&fakeProductRepo{products: map[string]*product.Product{prod.Code: prod}}, stockService, txm)
	customerService := customer.NewService(&fakeCustomerRepo{customers: map[string]*customer.Customer{cust.Phone: cust}}, txm)

	repo := newFakeReturnRepo()
	publisher := &fakePublisher{}

	return &fixture{
		service:   NewService(repo, productService, customerService, stockService, publisher, txm),
		repo:      repo,
		invRepo:   invRepo,
		publisher: publisher,
		customer:  cust,
		product:   prod,
	}
}

// --- Tests ---

func TestService_Create(t *testing.T) {
	f := newFixture(t, 2, 10)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      3,
		Rate:          50,
	})
	require.NoError(t, err)

	assert.Equal(t, types.Amount(150), doc.Amount)
	assert.False(t, id.IsNil(doc.EntryID))

	entry, err := f.invRepo.GetEntry(ctx, doc.EntryID)
	require.NoError(t, err)
	assert.Equal(t, entity.EntryTypeReturn, entry.Type)

	// Units come back on hand; the sold counter never shrinks.
	bal := f.invRepo.balances[f.product.ID]
	assert.Equal(t, types.Quantity(5), bal.Quantity)
	assert.Equal(t, types.Quantity(10), bal.Sales)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, rollup.EventReturnWritten, f.publisher.events[0].EventType)
}

func TestService_Create_AmountStoredAsSupplied(t *testing.T) {
	f := newFixture(t, 2, 10)
	ctx := context.Background()

	// A credited value that does not divide evenly by the quantity.
	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      3,
		Amount:        50,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Amount(50), doc.Amount)

	stored, err := f.repo.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, types.Amount(50), stored.Amount)
}

func TestService_Update_AmountStoredAsSupplied(t *testing.T) {
	f := newFixture(t, 0, 10)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      3,
		Amount:        50,
	})
	require.NoError(t, err)

	updated, err := f.service.Update(ctx, doc.ID, UpdateInput{
		Quantity: 2,
		Amount:   75,
		Version:  doc.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Amount(75), updated.Amount)
}

func TestService_Create_OverReturn(t *testing.T) {
	f := newFixture(t, 100, 2)

	_, err := f.service.Create(context.Background(), CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      3,
		Rate:          50,
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeOverReturn, appErr.Code)

	assert.Empty(t, f.repo.returns)
	assert.Empty(t, f.invRepo.entries)
	assert.Empty(t, f.publisher.events)
}

func TestService_Create_NothingSoldYet(t *testing.T) {
	f := newFixture(t, 50, 0)

	_, err := f.service.Create(context.Background(), CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      1,
		Rate:          50,
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeOverReturn, appErr.Code)
}

func TestService_Update_IncreaseGuarded(t *testing.T) {
	f := newFixture(t, 0, 5)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      4,
		Rate:          50,
	})
	require.NoError(t, err)

	// Only 5 ever sold; growing the return past that must fail.
	_, err = f.service.Update(ctx, doc.ID, UpdateInput{
		Quantity: 6,
		Rate:     50,
		Version:  doc.Version,
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeOverReturn, appErr.Code)

	updated, err := f.service.Update(ctx, doc.ID, UpdateInput{
		Quantity: 5,
		Rate:     50,
		Version:  doc.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Amount(250), updated.Amount)

	bal := f.invRepo.balances[f.product.ID]
	assert.Equal(t, types.Quantity(5), bal.Quantity)
	assert.Equal(t, types.Quantity(5), bal.Sales)
}

func TestService_Delete_TakesUnitsOffHand(t *testing.T) {
	f := newFixture(t, 1, 8)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      2,
		Rate:          50,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Quantity(3), f.invRepo.balances[f.product.ID].Quantity)

	err = f.service.Delete(ctx, doc.ID)
	require.NoError(t, err)

	assert.Empty(t, f.repo.returns)
	assert.Empty(t, f.invRepo.entries)

	bal := f.invRepo.balances[f.product.ID]
	assert.Equal(t, types.Quantity(1), bal.Quantity)
	assert.Equal(t, types.Quantity(8), bal.Sales)

	assert.Len(t, f.publisher.events, 2)
}
