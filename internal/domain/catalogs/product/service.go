package product

import (
	"context"
	"fmt"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/tx"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/registers/inventory"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

// Service provides business operations for the Product catalog.
type Service struct {
	repo      Repository
	stock     *inventory.Service
	txManager tx.Manager
}

// NewService creates a new Product service.
func NewService(repo Repository, stock *inventory.Service, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		stock:     stock,
		txManager: txManager,
	}
}

// Create creates a product together with its inventory row.
// openingQuantity seeds the stock on hand.
func (s *Service) Create(ctx context.Context, p *Product, openingQuantity types.Quantity) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if openingQuantity.IsNegative() {
		return apperror.NewValidation("opening quantity must not be negative").
			WithDetail("field", "openingQuantity")
	}

	if err := s.checkCodeUnique(ctx, p.Code, p.ID); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		if err := s.stock.InitProduct(ctx, p.ID, openingQuantity); err != nil {
			return fmt.Errorf("init inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "product created", "id", p.ID, "code", p.Code)
	return nil
}

// Update updates product fields. The code stays unique.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkCodeUnique(ctx, p.Code, p.ID); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, p)
	})
}

// GetByID retrieves a product by ID.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

// GetByCode resolves a product by its code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Product, error) {
	return s.repo.GetByCode(ctx, code)
}

// List retrieves products with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	return s.repo.List(ctx, filter)
}

// Delete soft-deletes a product.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	return s.repo.SetDeletionMark(ctx, productID, true)
}

func (s *Service) checkCodeUnique(ctx context.Context, code string, excludeID id.ID) error {
	existing, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return apperror.NewDuplicate("product", "code", code)
	}
	return nil
}
