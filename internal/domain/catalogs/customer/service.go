package customer

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/tx"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

// Service provides business operations for the Customer catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Customer service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Create creates a customer. Phone must be unique.
func (s *Service) Create(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkPhoneUnique(ctx, c.Phone, c.ID); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "customer created", "id", c.ID, "phone", c.Phone)
	return nil
}

// Update updates the editable customer fields.
func (s *Service) Update(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkPhoneUnique(ctx, c.Phone, c.ID); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, c)
	})
}

// GetByID retrieves a customer by ID.
func (s *Service) GetByID(ctx context.Context, customerID id.ID) (*Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}

// GetByPhone resolves a customer by phone number.
func (s *Service) GetByPhone(ctx context.Context, phone string) (*Customer, error) {
	return s.repo.GetByPhone(ctx, phone)
}

// List retrieves customers with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	return s.repo.List(ctx, filter)
}

// Delete soft-deletes a customer.
func (s *Service) Delete(ctx context.Context, customerID id.ID) error {
	return s.repo.SetDeletionMark(ctx, customerID, true)
}

func (s *Service) checkPhoneUnique(ctx context.Context, phone string, excludeID id.ID) error {
	existing, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return apperror.NewDuplicate("customer", "phone", phone)
	}
	return nil
}
