package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/product"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// Compile-time check that ProductRepo implements product.Repository.
var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// GetByCode retrieves a product by its unique code.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"code": code}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	p, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", code)
		}
		return nil, err
	}
	return p, nil
}

// List retrieves products with filtering.
func (r *ProductRepo) List(ctx context.Context, filter product.ListFilter) (product.ListResult, error) {
	items, total, err := r.list(ctx, listOptions{
		search:         filter.Search,
		searchCols:     []string{"name", "code"},
		includeDeleted: filter.IncludeDeleted,
		limit:          filter.Limit,
		offset:         filter.Offset,
	})
	if err != nil {
		return product.ListResult{}, err
	}

	return product.ListResult{Items: items, TotalCount: total}, nil
}
