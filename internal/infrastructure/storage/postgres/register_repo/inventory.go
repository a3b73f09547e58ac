// Package register_repo provides PostgreSQL implementations for
// register repositories.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/registers/inventory"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
)

const (
	entryTable   = "reg_entries"
	balanceTable = "reg_inventory"
)

// Compile-time check that InventoryRepo implements inventory.Repository.
var _ inventory.Repository = (*InventoryRepo)(nil)

// InventoryRepo implements inventory.Repository on top of two tables:
// the append-only entry ledger and the per-product balance row.
type InventoryRepo struct {
	txManager *postgres.TxManager
}

// NewInventoryRepo creates a new inventory repository.
func NewInventoryRepo(txManager *postgres.TxManager) *InventoryRepo {
	return &InventoryRepo{txManager: txManager}
}

// Builder returns a new squirrel builder with PostgreSQL placeholders.
func (r *InventoryRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// --- Entry ledger ---

// CreateEntry appends a ledger entry.
func (r *InventoryRepo) CreateEntry(ctx context.Context, entry entity.Entry) error {
	q := r.Builder().
		Insert(entryTable).
		Columns("id", "product_id", "quantity", "type", "created_at").
		Values(entry.ID, entry.ProductID, entry.Quantity, entry.Type, entry.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert entry: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetEntry retrieves a ledger entry by ID.
func (r *InventoryRepo) GetEntry(ctx context.Context, entryID id.ID) (entity.Entry, error) {
	var entry entity.Entry

	q := r.Builder().
		Select("id", "product_id", "quantity", "type", "created_at").
		From(entryTable).
		Where(squirrel.Eq{"id": entryID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return entry, fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &entry, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entry, apperror.NewNotFound("entry", entryID.String())
		}
		return entry, fmt.Errorf("get entry: %w", err)
	}

	return entry, nil
}

// UpdateEntryQuantity rewrites the quantity of an entry.
func (r *InventoryRepo) UpdateEntryQuantity(ctx context.Context, entryID id.ID, quantity types.Quantity) error {
	q := r.Builder().
		Update(entryTable).
		Set("quantity", quantity).
		Where(squirrel.Eq{"id": entryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update entry: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("entry", entryID.String())
	}
	return nil
}

// DeleteEntry removes a ledger entry.
func (r *InventoryRepo) DeleteEntry(ctx context.Context, entryID id.ID) error {
	q := r.Builder().
		Delete(entryTable).
		Where(squirrel.Eq{"id": entryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete entry: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("entry", entryID.String())
	}
	return nil
}

// --- Balance ---

// InitBalance creates the inventory row for a new product.
func (r *InventoryRepo) InitBalance(ctx context.Context, productID id.ID, quantity types.Quantity) error {
	q := r.Builder().
		Insert(balanceTable).
		Columns("product_id", "quantity", "sales", "updated_at").
		Values(productID, quantity, 0, squirrel.Expr("NOW()"))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert balance: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert balance: %w", err)
	}
	return nil
}

// GetBalance returns the current balance for a product.
func (r *InventoryRepo) GetBalance(ctx context.Context, productID id.ID) (entity.Inventory, error) {
	return r.getBalance(ctx, productID, false)
}

// GetBalanceForUpdate returns the balance with a FOR UPDATE row lock.
// The lock is released when the surrounding transaction ends.
func (r *InventoryRepo) GetBalanceForUpdate(ctx context.Context, productID id.ID) (entity.Inventory, error) {
	return r.getBalance(ctx, productID, true)
}

func (r *InventoryRepo) getBalance(ctx context.Context, productID id.ID, forUpdate bool) (entity.Inventory, error) {
	var bal entity.Inventory

	q := r.Builder().
		Select("product_id", "quantity", "sales", "updated_at").
		From(balanceTable).
		Where(squirrel.Eq{"product_id": productID})

	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return bal, fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &bal, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return bal, apperror.NewNotFound("inventory", productID.String())
		}
		return bal, fmt.Errorf("get balance: %w", err)
	}

	return bal, nil
}

// ApplyDelta adjusts stock on hand and the cumulative sales counter.
func (r *InventoryRepo) ApplyDelta(ctx context.Context, productID id.ID, quantityDelta, salesDelta types.Quantity) error {
	q := r.Builder().
		Update(balanceTable).
		Set("quantity", squirrel.Expr("quantity + ?", quantityDelta)).
		Set("sales", squirrel.Expr("sales + ?", salesDelta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"product_id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build balance delta: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("apply balance delta: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("inventory", productID.String())
	}
	return nil
}
