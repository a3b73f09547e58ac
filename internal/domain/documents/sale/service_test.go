package sale

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

type fakeSaleRepo struct {
	sales map[id.ID]*Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[id.ID]*Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, s *Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Update(_ context.Context, s *Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return apperror.NewNotFound("sale", s.ID)
	}
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, saleID id.ID) (*Sale, error) {
	s, ok := r.sales[saleID]
	if !ok {
		return nil, apperror.NewNotFound("sale", saleID)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ ListFilter) (ListResult, error) {
	return ListResult{}, nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, saleID id.ID) error {
	if _, ok := r.sales[saleID]; !ok {
		return apperror.NewNotFound("sale", saleID)
	}
	delete(r.sales, saleID)
	return nil
}

func (r *fakeSaleRepo) LoadRollupRecords(_ context.Context) ([]rollup.SaleRecord, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*product.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error { return nil }
func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error { return nil }

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

func (r *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error { return nil }
func (r *fakeCustomerRepo) Update(_ context.Context, c *customer.Customer) error { return nil }

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
	repo      *fakeSaleRepo
	invRepo   *fakeInventoryRepo
	publisher *fakePublisher
	customer  *customer.Customer
	product   *product.Product
}

func newFixture(t *testing.T, stock types.Quantity) *fixture {
	t.Helper()

	cust := customer.New("Ahmed Khan", "03001234567")
	prod := product.New("P-001", "Basmati Rice 5kg", 1450)

	invRepo := newFakeInventoryRepo()
	invRepo.balances[prod.ID] = &entity.Inventory{ProductID: prod.ID, Quantity: stock}

	txm := fakeTxManager{}
	stockService := inventory.NewService(invRepo)
	productService := product.NewService(&fakeProductRepo{products: map[string]*product.Product{prod.Code: prod}}, stockService, txm)
	customerService := customer.NewService(&fakeCustomerRepo{customers: map[string]*customer.Customer{cust.Phone: cust}}, txm)

	repo := newFakeSaleRepo()
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
	f := newFixture(t, 10)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      4,
		Rate:          100,
		ShippingCost:  20,
		Discount:      10,
		Paid:          300,
	})
	require.NoError(t, err)

	assert.Equal(t, types.Amount(410), doc.Amount)
	assert.Equal(t, f.customer.ID, doc.CustomerID)
	assert.False(t, id.IsNil(doc.EntryID))

	// Ledger entry and balance moved with the document.
	entry, err := f.invRepo.GetEntry(ctx, doc.EntryID)
	require.NoError(t, err)
	assert.Equal(t, entity.EntryTypeSale, entry.Type)
	assert.Equal(t, types.Quantity(4), entry.Quantity)

	bal := f.invRepo.balances[f.product.ID]
	assert.Equal(t, types.Quantity(6), bal.Quantity)
	assert.Equal(t, types.Quantity(4), bal.Sales)

	// A rollup event went out in the same transaction.
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, rollup.EventSaleWritten, f.publisher.events[0].EventType)
}

func TestService_Create_InsufficientStock(t *testing.T) {
	f := newFixture(t, 3)

	_, err := f.service.Create(context.Background(), CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      5,
		Rate:          100,
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)

	// Nothing was written.
	assert.Empty(t, f.repo.sales)
	assert.Empty(t, f.invRepo.entries)
	assert.Empty(t, f.publisher.events)
	assert.Equal(t, types.Quantity(3), f.invRepo.balances[f.product.ID].Quantity)
}

func TestService_Create_ZeroStockRejected(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.service.Create(context.Background(), CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      1,
		Rate:          100,
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
}

func TestService_Create_UnknownCustomer(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.service.Create(context.Background(), CreateInput{
		CustomerPhone: "00000000000",
		ProductCode:   f.product.Code,
		Quantity:      1,
		Rate:          100,
	})

	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Update_QuantityIncreaseGuarded(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      3,
		Rate:          100,
	})
	require.NoError(t, err)

	// 2 units left on hand; asking for 3 more must fail.
	_, err = f.service.Update(ctx, doc.ID, UpdateInput{
		Quantity: 6,
		Rate:     100,
		Version:  doc.Version,
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)

	// An increase within stock succeeds and moves the balance.
	updated, err := f.service.Update(ctx, doc.ID, UpdateInput{
		Quantity: 5,
		Rate:     100,
		Version:  doc.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Amount(500), updated.Amount)

	bal := f.invRepo.balances[f.product.ID]
	assert.Equal(t, types.Quantity(0), bal.Quantity)
	assert.Equal(t, types.Quantity(5), bal.Sales)

	entry, err := f.invRepo.GetEntry(ctx, doc.EntryID)
	require.NoError(t, err)
	assert.Equal(t, types.Quantity(5), entry.Quantity)
}

func TestService_Update_QuantityDecreaseRestoresStock(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      8,
		Rate:          100,
	})
	require.NoError(t, err)

	_, err = f.service.Update(ctx, doc.ID, UpdateInput{
		Quantity: 2,
		Rate:     100,
		Version:  doc.Version,
	})
	require.NoError(t, err)

	bal := f.invRepo.balances[f.product.ID]
	assert.Equal(t, types.Quantity(8), bal.Quantity)
	assert.Equal(t, types.Quantity(2), bal.Sales)
}

func TestService_Delete_RestoresStock(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	doc, err := f.service.Create(ctx, CreateInput{
		CustomerPhone: f.customer.Phone,
		ProductCode:   f.product.Code,
		Quantity:      4,
		Rate:          100,
	})
	require.NoError(t, err)

	err = f.service.Delete(ctx, doc.ID)
	require.NoError(t, err)

	// Document and entry are gone, balance fully unwound.
	assert.Empty(t, f.repo.sales)
	assert.Empty(t, f.invRepo.entries)

	bal := f.invRepo.balances[f.product.ID]
	assert.Equal(t, types.Quantity(10), bal.Quantity)
	assert.Equal(t, types.Quantity(0), bal.Sales)

	// Create + delete both published rollup events.
	assert.Len(t, f.publisher.events, 2)
}
