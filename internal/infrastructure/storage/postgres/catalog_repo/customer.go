package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/customer"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
)

const customerTable = "cat_customers"

// Compile-time check that CustomerRepo implements customer.Repository.
var _ customer.Repository = (*CustomerRepo)(nil)

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
	txManager *postgres.TxManager
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txManager *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*customer.Customer](
			txManager,
			customerTable,
			postgres.ExtractDBColumns[customer.Customer](),
			func() *customer.Customer { return &customer.Customer{} },
		),
		txManager: txManager,
	}
}

// GetByPhone retrieves a customer by the unique phone natural key.
func (r *CustomerRepo) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"phone": phone}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("customer", phone)
		}
		return nil, err
	}
	return c, nil
}

// Update writes only the editable fields. The derived rollup columns
// are owned by PersistRollup and never touched here.
func (r *CustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	q := r.Builder().
		Update(customerTable).
		Set("name", c.Name).
		Set("phone", c.Phone).
		Set("address", c.Address).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": c.ID}).
		Where(squirrel.Eq{"version": c.Version}) // optimistic lock

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", customerTable, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(customerTable, c.ID)
	}

	return nil
}

// PersistRollup overwrites the five derived fields. No optimistic lock
// and no version bump: a recompute always writes the latest full-scan
// snapshot.
func (r *CustomerRepo) PersistRollup(ctx context.Context, customerID id.ID, totals rollup.Totals) error {
	q := r.Builder().
		Update(customerTable).
		Set("amount", totals.Amount).
		Set("paid", totals.Paid).
		Set("due", totals.Due).
		Set("return_amount", totals.ReturnAmount).
		Set("profit", totals.Profit).
		Where(squirrel.Eq{"id": customerID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build rollup update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("persist rollup: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(customerTable, customerID.String())
	}

	return nil
}

// List retrieves customers with filtering.
func (r *CustomerRepo) List(ctx context.Context, filter customer.ListFilter) (customer.ListResult, error) {
	items, total, err := r.list(ctx, listOptions{
		search:         filter.Search,
		searchCols:     []string{"name", "phone"},
		includeDeleted: filter.IncludeDeleted,
		limit:          filter.Limit,
		offset:         filter.Offset,
	})
	if err != nil {
		return customer.ListResult{}, err
	}

	return customer.ListResult{Items: items, TotalCount: total}, nil
}
