package sale

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

// CreateInput carries the sale form fields. The customer and product are
// addressed by their natural keys the way the sales form captures them.
type CreateInput struct {
	CustomerPhone string
	ProductCode   string
	Quantity      types.Quantity
	Rate          types.Amount
	ShippingCost  types.Amount
	Discount      types.Amount
	Paid          types.Amount
	Date          time.Time
	Comment       string
}

// UpdateInput carries the editable sale fields.
type UpdateInput struct {
	Quantity     types.Quantity
	Rate         types.Amount
	ShippingCost types.Amount
	Discount     types.Amount
	Paid         types.Amount
	Date         time.Time
	Comment      string

	// Version is the expected current version (optimistic locking)
	Version int
}

// Service orchestrates sale transactions: the document, its ledger
// entry, the inventory balance and the rollup trigger move in one
// database transaction.
type Service struct {
	repo      Repository
	products  *product.Service
	customers *customer.Service
	stock     *inventory.Service
	publisher rollup.Publisher
	txManager tx.Manager
}

// NewService creates a new Sale service.
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

// Create records a sale. The stock guard runs under a row lock inside
// the transaction, so either everything is written (sale, entry,
// balance delta, outbox event) or nothing is.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Sale, error) {
	cust, err := s.customers.GetByPhone(ctx, input.CustomerPhone)
	if err != nil {
		return nil, err
	}
	prod, err := s.products.GetByCode(ctx, input.ProductCode)
	if err != nil {
		return nil, err
	}

	doc := New(cust.ID, prod.ID, input.Quantity, input.Rate, input.ShippingCost, input.Discount, input.Paid)
	if !input.Date.IsZero() {
		doc.Date = input.Date
	}
	doc.Comment = input.Comment

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.stock.CheckAndReserveStock(ctx, prod.Code, prod.ID, doc.Quantity); err != nil {
			return err
		}

		entryID, err := s.stock.RecordSale(ctx, prod.ID, doc.Quantity)
		if err != nil {
			return fmt.Errorf("record entry: %w", err)
		}
		doc.EntryID = entryID

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}

		return s.publisher.Publish(ctx, rollup.Event{
			AggregateType: "Sale",
			AggregateID:   doc.ID,
			EventType:     rollup.EventSaleWritten,
			Payload:       map[string]any{"customerId": doc.CustomerID},
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale created",
		"id", doc.ID,
		"customer_id", doc.CustomerID,
		"product_id", doc.ProductID,
		"amount", doc.Amount,
	)
	return doc, nil
}

// Update amends a sale. A quantity increase re-runs the stock guard for
// the additional units; the ledger entry is rewritten to match.
func (s *Service) Update(ctx context.Context, saleID id.ID, input UpdateInput) (*Sale, error) {
	var doc *Sale

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetByID(ctx, saleID)
		if err != nil {
			return err
		}

		oldQuantity := doc.Quantity

		doc.Quantity = input.Quantity
		doc.Rate = input.Rate
		doc.ShippingCost = input.ShippingCost
		doc.Discount = input.Discount
		doc.Paid = input.Paid
		if !input.Date.IsZero() {
			doc.Date = input.Date
		}
		doc.Comment = input.Comment
		doc.SetVersion(input.Version)
		doc.RecalcAmount()

		if err := doc.Validate(ctx); err != nil {
			return err
		}

		prod, err := s.products.GetByID(ctx, doc.ProductID)
		if err != nil {
			return err
		}

		if doc.Quantity > oldQuantity {
			if _, err := s.stock.CheckAndReserveStock(ctx, prod.Code, prod.ID, doc.Quantity-oldQuantity); err != nil {
				return err
			}
		}
		if err := s.stock.AmendSale(ctx, doc.EntryID, doc.ProductID, oldQuantity, doc.Quantity); err != nil {
			return fmt.Errorf("amend entry: %w", err)
		}

		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}

		return s.publisher.Publish(ctx, rollup.Event{
			AggregateType: "Sale",
			AggregateID:   doc.ID,
			EventType:     rollup.EventSaleWritten,
			Payload:       map[string]any{"customerId": doc.CustomerID},
		})
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Delete removes a sale together with its ledger entry. Stock on hand
// is restored and the cumulative sales counter unwound.
func (s *Service) Delete(ctx context.Context, saleID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetByID(ctx, saleID)
		if err != nil {
			return err
		}

		// The document references its entry, so it goes first.
		if err := s.repo.Delete(ctx, saleID); err != nil {
			return err
		}

		if err := s.stock.RevokeSale(ctx, doc.EntryID, doc.ProductID, doc.Quantity); err != nil {
			return fmt.Errorf("revoke entry: %w", err)
		}

		return s.publisher.Publish(ctx, rollup.Event{
			AggregateType: "Sale",
			AggregateID:   saleID,
			EventType:     rollup.EventSaleWritten,
			Payload:       map[string]any{"customerId": doc.CustomerID, "deleted": true},
		})
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale deleted", "id", saleID)
	return nil
}

// GetByID retrieves a sale by ID.
func (s *Service) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	return s.repo.GetByID(ctx, saleID)
}

// List retrieves sales with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	return s.repo.List(ctx, filter)
}
