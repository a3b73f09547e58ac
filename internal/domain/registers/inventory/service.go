package inventory

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

// Service maintains the entry ledger and the inventory balance. All
// mutating methods expect to run inside the caller's transaction so
// entries, balances and the parent documents move together.
type Service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// InitProduct creates the inventory row for a newly created product with
// its opening stock.
func (s *Service) InitProduct(ctx context.Context, productID id.ID, quantity types.Quantity) error {
	if quantity < 0 {
		return apperror.NewValidation("opening quantity cannot be negative").
			WithDetail("quantity", quantity)
	}
	return s.repo.InitBalance(ctx, productID, quantity)
}

// GetByProduct returns the current balance for a product.
func (s *Service) GetByProduct(ctx context.Context, productID id.ID) (entity.Inventory, error) {
	return s.repo.GetBalance(ctx, productID)
}

// CheckAndReserveStock locks the product's balance row and verifies the
// requested quantity is available. The lock is held until the caller's
// transaction commits, so no concurrent sale can consume the same units.
func (s *Service) CheckAndReserveStock(ctx context.Context, productCode string, productID id.ID, quantity types.Quantity) (entity.Inventory, error) {
	bal, err := s.repo.GetBalanceForUpdate(ctx, productID)
	if err != nil {
		return entity.Inventory{}, err
	}

	if bal.Quantity <= 0 || bal.Quantity < quantity {
		return entity.Inventory{}, apperror.NewInsufficientStock(productCode, int64(quantity), int64(bal.Quantity))
	}

	return bal, nil
}

// CheckReturnable locks the product's balance row and verifies the
// product has been sold at least the requested quantity. Cumulative
// sales never shrink on returns, so the guard compares against the
// all-time sold counter.
func (s *Service) CheckReturnable(ctx context.Context, productCode string, productID id.ID, quantity types.Quantity) (entity.Inventory, error) {
	bal, err := s.repo.GetBalanceForUpdate(ctx, productID)
	if err != nil {
		return entity.Inventory{}, err
	}

	if bal.Sales < quantity {
		return entity.Inventory{}, apperror.NewOverReturn(productCode, int64(quantity), int64(bal.Sales))
	}

	return bal, nil
}

// RecordSale appends a sale entry and moves the balance: stock on hand
// goes down, cumulative sales go up. Returns the new entry's ID so the
// owning document can keep the link.
func (s *Service) RecordSale(ctx context.Context, productID id.ID, quantity types.Quantity) (id.ID, error) {
	entry := entity.NewEntry(productID, quantity, entity.EntryTypeSale)
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return id.Nil(), err
	}
	if err := s.repo.ApplyDelta(ctx, productID, -quantity, quantity); err != nil {
		return id.Nil(), err
	}

	logger.Debug(ctx, "sale entry recorded",
		"entry_id", entry.ID,
		"product_id", productID,
		"quantity", quantity,
	)
	return entry.ID, nil
}

// RecordReturn appends a return entry and restores stock on hand.
// The cumulative sales counter is left alone.
func (s *Service) RecordReturn(ctx context.Context, productID id.ID, quantity types.Quantity) (id.ID, error) {
	entry := entity.NewEntry(productID, quantity, entity.EntryTypeReturn)
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return id.Nil(), err
	}
	if err := s.repo.ApplyDelta(ctx, productID, quantity, 0); err != nil {
		return id.Nil(), err
	}

	logger.Debug(ctx, "return entry recorded",
		"entry_id", entry.ID,
		"product_id", productID,
		"quantity", quantity,
	)
	return entry.ID, nil
}

// AmendSale rewrites a sale entry's quantity and applies the balance
// difference. oldQuantity is the quantity currently on the entry.
func (s *Service) AmendSale(ctx context.Context, entryID, productID id.ID, oldQuantity, newQuantity types.Quantity) error {
	if err := s.repo.UpdateEntryQuantity(ctx, entryID, newQuantity); err != nil {
		return err
	}
	diff := newQuantity - oldQuantity
	return s.repo.ApplyDelta(ctx, productID, -diff, diff)
}

// AmendReturn rewrites a return entry's quantity and applies the balance
// difference.
func (s *Service) AmendReturn(ctx context.Context, entryID, productID id.ID, oldQuantity, newQuantity types.Quantity) error {
	if err := s.repo.UpdateEntryQuantity(ctx, entryID, newQuantity); err != nil {
		return err
	}
	return s.repo.ApplyDelta(ctx, productID, newQuantity-oldQuantity, 0)
}

// RevokeSale deletes a sale entry and puts its units back on hand,
// unwinding the cumulative sales counter as well.
func (s *Service) RevokeSale(ctx context.Context, entryID, productID id.ID, quantity types.Quantity) error {
	if err := s.repo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	return s.repo.ApplyDelta(ctx, productID, quantity, -quantity)
}

// RevokeReturn deletes a return entry and takes its units off hand
// again.
func (s *Service) RevokeReturn(ctx context.Context, entryID, productID id.ID, quantity types.Quantity) error {
	if err := s.repo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	return s.repo.ApplyDelta(ctx, productID, -quantity, 0)
}
