package mapping

import (
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/pricehub/product_pricing_app/internal/models"
)

// ToModelProductPrice converts a domain ProductPrice to a model ProductPrice
func ToModelProductPrice(d domain.ProductPrice) models.ProductPrice {
	return models.ProductPrice{
		ProductPriceID: d.ProductPriceID,
		ProductID:      d.ProductID,
		CurrencyID:     d.CurrencyID,
		Price:          d.Price,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainProductPrice converts a model ProductPrice to a domain ProductPrice
func ToDomainProductPrice(m models.ProductPrice) domain.ProductPrice {
	return domain.ProductPrice{
		ProductPriceID: m.ProductPriceID,
		ProductID:      m.ProductID,
		CurrencyID:     m.CurrencyID,
		Price:          m.Price,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
