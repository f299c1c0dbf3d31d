package dto

import (
	"time"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
// Decimal range checks (non-negative price and costs) live in the service,
// since validator tags cannot inspect decimal.Decimal values.
type CreateProductRequest struct {
	Name              string           `json:"name" binding:"required,max=255"`
	Description       *string          `json:"description"`
	Price             decimal.Decimal  `json:"price" binding:"required"`
	CurrencyID        int64            `json:"currencyID" binding:"required,gt=0"`
	TaxCost           *decimal.Decimal `json:"taxCost"`
	ManufacturingCost *decimal.Decimal `json:"manufacturingCost"`
}

// UpdateProductRequest defines a partial product update. Only non-nil fields
// are applied; a present-but-null description clears it.
type UpdateProductRequest struct {
	Name              *string          `json:"name" binding:"omitempty,max=255"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	CurrencyID        *int64           `json:"currencyID" binding:"omitempty,gt=0"`
	TaxCost           *decimal.Decimal `json:"taxCost"`
	ManufacturingCost *decimal.Decimal `json:"manufacturingCost"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID         int64             `json:"productID"`
	Name              string            `json:"name"`
	Description       *string           `json:"description,omitempty"`
	Price             decimal.Decimal   `json:"price"`
	CurrencyID        int64             `json:"currencyID"`
	TaxCost           *decimal.Decimal  `json:"taxCost,omitempty"`
	ManufacturingCost *decimal.Decimal  `json:"manufacturingCost,omitempty"`
	Currency          *CurrencyResponse `json:"currency,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// PageMeta describes one page of a listing.
type PageMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	LastPage    int   `json:"lastPage"`
	Total       int64 `json:"total"`
}

// ListProductsResponse is one page of products plus paging metadata.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Meta     PageMeta          `json:"meta"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ProductID:         p.ProductID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		CurrencyID:        p.CurrencyID,
		TaxCost:           p.TaxCost,
		ManufacturingCost: p.ManufacturingCost,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Currency != nil {
		curr := ToCurrencyResponse(p.Currency)
		resp.Currency = &curr
	}
	return resp
}

// ToListProductResponse converts a slice of domain Products to response DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
