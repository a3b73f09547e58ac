package sales_return

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/tx"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/customer"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/product"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/registers/inventory"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

// CreateInput carries the return form fields, addressed by natural keys
// like the sale form.
type CreateInput struct {
	CustomerPhone string
	ProductCode   string
	Quantity      types.Quantity

	// Amount is the value credited back; when zero it derives as
	// quantity*rate
	Amount types.Amount
	Rate   types.Amount

	// Date is the return date; zero means now
	Date    time.Time
	Comment string
}

// UpdateInput carries the editable return fields.
type UpdateInput struct {
	Quantity types.Quantity
	Amount   types.Amount
	Rate     types.Amount
	Date     time.Time
	Comment  string

	// Version is the expected current version (optimistic locking)
	Version int
}

// Service orchestrates return transactions. A return may not exceed the
// product's cumulative recorded sales; the guard runs under the same
// row lock as the balance delta.
type Service struct {
	repo      Repository
	products  *product.Service
	customers *customer.Service
	stock     *inventory.Service
	publisher rollup.Publisher
	txManager tx.Manager
}

// NewService creates a new Return service.
func NewService(
	repo Repository,
	products *product.Service,
	customers *customer.Service,
	stock *inventory.Service,
	publisher rollup.Publisher,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		customers: customers,
		stock:     stock,
		publisher: publisher,
		txManager: txManager,
	}
}

// Create records a return: document, ledger entry, balance restore and
// outbox event in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Return, error) {
	cust, err := s.customers.GetByPhone(ctx, input.CustomerPhone)
	if err != nil {
		return nil, err
	}
	prod, err := s.products.GetByCode(ctx, input.ProductCode)
	if err != nil {
		return nil, err
	}

	amount := ResolveAmount(input.Quantity, input.Amount, input.Rate)
	doc := New(cust.ID, prod.ID, input.Quantity, amount, input.Rate)
	if !input.Date.IsZero() {
		doc.Date = input.Date
	}
	doc.Comment = input.Comment

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.stock.CheckReturnable(ctx, prod.Code, prod.ID, doc.Quantity); err != nil {
			return err
		}

		entryID, err := s.stock.RecordReturn(ctx, prod.ID, doc.Quantity)
		if err != nil {
			return fmt.Errorf("record entry: %w", err)
		}
		doc.EntryID = entryID

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create return: %w", err)
		}

		return s.publisher.Publish(ctx, rollup.Event{
			AggregateType: "Return",
			AggregateID:   doc.ID,
			EventType:     rollup.EventReturnWritten,
			Payload:       map[string]any{"customerId": doc.CustomerID},
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "return created",
		"id", doc.ID,
		"customer_id", doc.CustomerID,
		"product_id", doc.ProductID,
		"amount", doc.Amount,
	)
	return doc, nil
}

// Update amends a return. A quantity increase re-runs the over-return
// guard against the full new quantity.
func (s *Service) Update(ctx context.Context, returnID id.ID, input UpdateInput) (*Return, error) {
	var doc *Return

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetByID(ctx, returnID)
		if err != nil {
			return err
		}

		oldQuantity := doc.Quantity

		doc.Quantity = input.Quantity
		doc.Rate = input.Rate
		doc.Amount = ResolveAmount(input.Quantity, input.Amount, input.Rate)
		if !input.Date.IsZero() {
			doc.Date = input.Date
		}
		doc.Comment = input.Comment
		doc.SetVersion(input.Version)

		if err := doc.Validate(ctx); err != nil {
			return err
		}

		prod, err := s.products.GetByID(ctx, doc.ProductID)
		if err != nil {
			return err
		}

		// The sold counter is untouched by returns, so the full new
		// quantity is re-checked against it, not just the increase.
		if doc.Quantity > oldQuantity {
			if _, err := s.stock.CheckReturnable(ctx, prod.Code, prod.ID, doc.Quantity); err != nil {
				return err
			}
		}
		if err := s.stock.AmendReturn(ctx, doc.EntryID, doc.ProductID, oldQuantity, doc.Quantity); err != nil {
			return fmt.Errorf("amend entry: %w", err)
		}

		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}

		return s.publisher.Publish(ctx, rollup.Event{
			AggregateType: "Return",
			AggregateID:   doc.ID,
			EventType:     rollup.EventReturnWritten,
			Payload:       map[string]any{"customerId": doc.CustomerID},
		})
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Delete removes a return together with its ledger entry, taking the
// returned units off hand again.
func (s *Service) Delete(ctx context.Context, returnID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetByID(ctx, returnID)
		if err != nil {
			return err
		}

		// The document references its entry, so it goes first.
		if err := s.repo.Delete(ctx, returnID); err != nil {
			return err
		}

		if err := s.stock.RevokeReturn(ctx, doc.EntryID, doc.ProductID, doc.Quantity); err != nil {
			return fmt.Errorf("revoke entry: %w", err)
		}

		return s.publisher.Publish(ctx, rollup.Event{
			AggregateType: "Return",
			AggregateID:   returnID,
			EventType:     rollup.EventReturnWritten,
			Payload:       map[string]any{"customerId": doc.CustomerID, "deleted": true},
		})
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "return deleted", "id", returnID)
	return nil
}

// GetByID retrieves a return by ID.
func (s *Service) GetByID(ctx context.Context, returnID id.ID) (*Return, error) {
	return s.repo.GetByID(ctx, returnID)
}

// List retrieves returns with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	return s.repo.List(ctx, filter)
}
