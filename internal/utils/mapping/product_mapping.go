package mapping

import (
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/pricehub/product_pricing_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:         d.ProductID,
		Name:              d.Name,
		Description:       d.Description,
		Price:             d.Price,
		CurrencyID:        d.CurrencyID,
		TaxCost:           d.TaxCost,
		ManufacturingCost: d.ManufacturingCost,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainProduct converts a model Product to a domain Product.
// The resolved base currency, when loaded, is attached separately.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:         m.ProductID,
		Name:              m.Name,
		Description:       m.Description,
		Price:             m.Price,
		CurrencyID:        m.CurrencyID,
		TaxCost:           m.TaxCost,
		ManufacturingCost: m.ManufacturingCost,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
