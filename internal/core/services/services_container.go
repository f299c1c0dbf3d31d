package services

import (
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/pricehub/product_pricing_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Pricing = NewPricingService(repos.ProductRepo, repos.ProductPriceRepo, repos.CurrencyRepo)

	return container
}
