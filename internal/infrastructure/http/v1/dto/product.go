package dto

import (
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/product"
)

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Code            string `json:"code" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Rate            int64  `json:"rate" binding:"omitempty,min=0"`
	OpeningQuantity int64  `json:"openingQuantity" binding:"omitempty,min=0"`
}

// ToEntity converts the request into a Product.
func (r CreateProductRequest) ToEntity() *product.Product {
	return product.New(r.Code, r.Name, types.Amount(r.Rate))
}

// UpdateProductRequest for updating products.
type UpdateProductRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Rate    int64  `json:"rate" binding:"omitempty,min=0"`
	Version int    `json:"version" binding:"required,min=1"`
}

// ApplyTo writes the editable fields onto an existing Product.
func (r UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Rate = types.Amount(r.Rate)
	p.SetVersion(r.Version)
}

// ProductResponse contains product fields.
type ProductResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Rate         int64  `json:"rate"`
	DeletionMark bool   `json:"deletionMark"`
	Version      int    `json:"version"`
}

// FromProduct creates ProductResponse from a Product.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID.String(),
		Code:         p.Code,
		Name:         p.Name,
		Rate:         p.Rate.Int64(),
		DeletionMark: p.DeletionMark,
		Version:      p.Version,
	}
}

// FromProducts maps a product slice to responses.
func FromProducts(items []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProduct(p))
	}
	return out
}
