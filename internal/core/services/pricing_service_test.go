package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pricehub/product_pricing_app/internal/apperrors"
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/pricehub/product_pricing_app/internal/core/ports/services"
	"github.com/pricehub/product_pricing_app/internal/core/services"
	"github.com/pricehub/product_pricing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit, offset int, order string) ([]domain.Product, int64, error) {
	args := m.Called(ctx, limit, offset, order)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, productID int64, changes portsrepo.ProductChanges) (*domain.Product, error) {
	args := m.Called(ctx, productID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock ProductPriceRepository ---
type MockProductPriceRepository struct {
	mock.Mock
}

func (m *MockProductPriceRepository) ListPricesForProduct(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}

func (m *MockProductPriceRepository) SavePrice(ctx context.Context, price domain.ProductPrice) (*domain.ProductPrice, error) {
	args := m.Called(ctx, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductPrice), args.Error(1)
}

// --- Mock CurrencyRepository (reader only) ---
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReader) CurrencyExists(ctx context.Context, currencyID int64) (bool, error) {
	args := m.Called(ctx, currencyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyReader) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type PricingServiceTestSuite struct {
	suite.Suite
	mockProductRepo  *MockProductRepository
	mockPriceRepo    *MockProductPriceRepository
	mockCurrencyRepo *MockCurrencyReader
	service          portssvc.PricingSvcFacade

	usd domain.Currency
	eur domain.Currency
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockPriceRepo = new(MockProductPriceRepository)
	suite.mockCurrencyRepo = new(MockCurrencyReader)
	suite.service = services.NewPricingService(suite.mockProductRepo, suite.mockPriceRepo, suite.mockCurrencyRepo)

	suite.usd = domain.Currency{CurrencyID: 1, Name: "US Dollar", Symbol: "$", ExchangeRate: decimal.RequireFromString("1.0")}
	suite.eur = domain.Currency{CurrencyID: 2, Name: "Euro", Symbol: "€", ExchangeRate: decimal.RequireFromString("0.93")}
}

func (suite *PricingServiceTestSuite) widget() *domain.Product {
	usd := suite.usd
	return &domain.Product{
		ProductID:  42,
		Name:       "Widget",
		Price:      decimal.RequireFromString("100"),
		CurrencyID: usd.CurrencyID,
		Currency:   &usd,
		Timestamps: domain.Timestamps{CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
}

// --- CreateProduct ---

func (suite *PricingServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	desc := "A fine widget"
	req := dto.CreateProductRequest{
		Name:        "Widget",
		Description: &desc,
		Price:       decimal.RequireFromString("100"),
		CurrencyID:  suite.usd.CurrencyID,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.usd.CurrencyID).Return(&suite.usd, nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == req.Name && p.Price.Equal(req.Price) && p.CurrencyID == req.CurrencyID && p.Description != nil && *p.Description == desc
	})).Return(&domain.Product{
		ProductID:   42,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CurrencyID:  req.CurrencyID,
	}, nil).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(42), created.ProductID)
	suite.Equal(req.Name, created.Name)
	suite.True(created.Price.Equal(req.Price))
	suite.Require().NotNil(created.Currency)
	suite.Equal(suite.usd.CurrencyID, created.Currency.CurrencyID)

	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestCreateProduct_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:       "Widget",
		Price:      decimal.RequireFromString("-1"),
		CurrencyID: suite.usd.CurrencyID,
	}

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByID", mock.Anything, mock.Anything)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestCreateProduct_NegativeTaxCost() {
	ctx := context.Background()
	tax := decimal.RequireFromString("-0.01")
	req := dto.CreateProductRequest{
		Name:       "Widget",
		Price:      decimal.RequireFromString("100"),
		CurrencyID: suite.usd.CurrencyID,
		TaxCost:    &tax,
	}

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PricingServiceTestSuite) TestCreateProduct_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:       "Widget",
		Price:      decimal.RequireFromString("100"),
		CurrencyID: 999,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestCreateProduct_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:       "Widget",
		Price:      decimal.RequireFromString("100"),
		CurrencyID: suite.usd.CurrencyID,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.usd.CurrencyID).Return(&suite.usd, nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).
		Return(nil, apperrors.ErrDuplicateName).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicateName)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

// --- GetProduct ---

func (suite *PricingServiceTestSuite) TestGetProduct_Success() {
	ctx := context.Background()
	expected := suite.widget()

	suite.mockProductRepo.On("FindProductByID", ctx, int64(42)).Return(expected, nil).Once()

	product, err := suite.service.GetProduct(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(expected, product)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestGetProduct_NotFound() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.GetProduct(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListProducts ---

func (suite *PricingServiceTestSuite) TestListProducts_DefaultsAndPaging() {
	ctx := context.Background()
	page := []domain.Product{*suite.widget()}

	// page 3, size 10 -> offset 20; unknown order falls back to desc
	suite.mockProductRepo.On("ListProducts", ctx, 10, 20, "desc").Return(page, int64(31), nil).Once()

	result, err := suite.service.ListProducts(ctx, 10, 3, "sideways")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(result.Products, 1)
	suite.Equal(int64(31), result.Total)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestListProducts_Empty() {
	ctx := context.Background()

	suite.mockProductRepo.On("ListProducts", ctx, 15, 0, "asc").Return([]domain.Product{}, int64(0), nil).Once()

	result, err := suite.service.ListProducts(ctx, 15, 1, "asc")

	suite.Require().NoError(err)
	suite.NotNil(result.Products)
	suite.Empty(result.Products)
	suite.Equal(int64(0), result.Total)
}

// --- UpdateProduct ---

func (suite *PricingServiceTestSuite) TestUpdateProduct_PriceOnly() {
	ctx := context.Background()
	existing := suite.widget()
	newPrice := decimal.RequireFromString("200")
	req := dto.UpdateProductRequest{Price: &newPrice}

	updated := *existing
	updated.Price = newPrice

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, existing.ProductID, mock.MatchedBy(func(c portsrepo.ProductChanges) bool {
		return c.Price != nil && c.Price.Equal(newPrice) &&
			c.Name == nil && !c.DescriptionSet && c.CurrencyID == nil &&
			c.TaxCost == nil && c.ManufacturingCost == nil
	})).Return(&updated, nil).Once()

	result, err := suite.service.UpdateProduct(ctx, existing.ProductID, req)

	suite.Require().NoError(err)
	suite.True(result.Price.Equal(newPrice))
	// untouched fields keep their stored values
	suite.Equal(existing.Name, result.Name)
	suite.Equal(existing.CurrencyID, result.CurrencyID)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByID", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestUpdateProduct_NotFound() {
	ctx := context.Background()
	newPrice := decimal.RequireFromString("200")

	suite.mockProductRepo.On("FindProductByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.UpdateProduct(ctx, 404, dto.UpdateProductRequest{Price: &newPrice})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestUpdateProduct_UnknownCurrency() {
	ctx := context.Background()
	existing := suite.widget()
	badCurrency := int64(999)

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, badCurrency).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{CurrencyID: &badCurrency})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestUpdateProduct_NoChanges() {
	ctx := context.Background()
	existing := suite.widget()

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()

	result, err := suite.service.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{})

	suite.Require().NoError(err)
	suite.Equal(existing, result)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

// --- DeleteProduct ---

func (suite *PricingServiceTestSuite) TestDeleteProduct_Success() {
	ctx := context.Background()

	suite.mockProductRepo.On("DeleteProduct", ctx, int64(42)).Return(nil).Once()

	err := suite.service.DeleteProduct(ctx, 42)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestDeleteProduct_NotFound() {
	ctx := context.Background()

	suite.mockProductRepo.On("DeleteProduct", ctx, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProduct(ctx, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetPrices ---

func (suite *PricingServiceTestSuite) TestGetPrices_Success() {
	ctx := context.Background()
	product := suite.widget()
	eur := suite.eur
	entries := []domain.ProductPrice{
		{ProductPriceID: 7, ProductID: product.ProductID, CurrencyID: eur.CurrencyID, Price: decimal.RequireFromString("93"), Currency: &eur},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockPriceRepo.On("ListPricesForProduct", ctx, product.ProductID).Return(entries, nil).Once()

	prices, err := suite.service.GetPrices(ctx, product.ProductID)

	suite.Require().NoError(err)
	suite.Require().Len(prices, 1)
	suite.True(prices[0].Price.Equal(decimal.RequireFromString("93")))
	suite.Equal(eur.CurrencyID, prices[0].CurrencyID)
}

func (suite *PricingServiceTestSuite) TestGetPrices_ProductNotFound() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	prices, err := suite.service.GetPrices(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(prices)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "ListPricesForProduct", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestGetPrices_EmptyLedger() {
	ctx := context.Background()
	product := suite.widget()

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockPriceRepo.On("ListPricesForProduct", ctx, product.ProductID).Return([]domain.ProductPrice{}, nil).Once()

	prices, err := suite.service.GetPrices(ctx, product.ProductID)

	suite.Require().NoError(err)
	suite.NotNil(prices)
	suite.Empty(prices)
}

// --- AddPrice ---

func (suite *PricingServiceTestSuite) TestAddPrice_Success() {
	ctx := context.Background()
	product := suite.widget()
	req := dto.AddPriceRequest{CurrencyID: suite.eur.CurrencyID, Price: decimal.RequireFromString("93")}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockCurrencyRepo.On("CurrencyExists", ctx, suite.eur.CurrencyID).Return(true, nil).Once()
	suite.mockPriceRepo.On("SavePrice", ctx, mock.MatchedBy(func(p domain.ProductPrice) bool {
		return p.ProductID == product.ProductID && p.CurrencyID == req.CurrencyID && p.Price.Equal(req.Price)
	})).Return(&domain.ProductPrice{
		ProductPriceID: 7,
		ProductID:      product.ProductID,
		CurrencyID:     req.CurrencyID,
		Price:          req.Price,
	}, nil).Once()

	created, err := suite.service.AddPrice(ctx, product.ProductID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(7), created.ProductPriceID)
	suite.True(created.Price.Equal(req.Price))
	suite.mockPriceRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestAddPrice_ProductNotFound() {
	ctx := context.Background()
	// product existence is checked before anything else, so even an invalid
	// price reports not-found here
	req := dto.AddPriceRequest{CurrencyID: suite.eur.CurrencyID, Price: decimal.RequireFromString("-5")}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.AddPrice(ctx, 404, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "CurrencyExists", mock.Anything, mock.Anything)
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "SavePrice", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestAddPrice_ZeroPrice() {
	ctx := context.Background()
	product := suite.widget()
	req := dto.AddPriceRequest{CurrencyID: suite.eur.CurrencyID, Price: decimal.Zero}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()

	created, err := suite.service.AddPrice(ctx, product.ProductID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "CurrencyExists", mock.Anything, mock.Anything)
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "SavePrice", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestAddPrice_UnknownCurrency() {
	ctx := context.Background()
	product := suite.widget()
	req := dto.AddPriceRequest{CurrencyID: 999, Price: decimal.RequireFromString("93")}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockCurrencyRepo.On("CurrencyExists", ctx, int64(999)).Return(false, nil).Once()

	created, err := suite.service.AddPrice(ctx, product.ProductID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "SavePrice", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestAddPrice_Duplicate() {
	ctx := context.Background()
	product := suite.widget()
	req := dto.AddPriceRequest{CurrencyID: suite.eur.CurrencyID, Price: decimal.RequireFromString("95")}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockCurrencyRepo.On("CurrencyExists", ctx, suite.eur.CurrencyID).Return(true, nil).Once()
	suite.mockPriceRepo.On("SavePrice", ctx, mock.AnythingOfType("domain.ProductPrice")).
		Return(nil, apperrors.ErrDuplicatePrice).Once()

	created, err := suite.service.AddPrice(ctx, product.ProductID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicatePrice)
	suite.mockPriceRepo.AssertExpectations(suite.T())
}

// TestAddPrice_DuplicateKeepsFirstEntry walks the widget scenario end to end:
// the EUR price is stored at 93, a second insert at 95 is rejected, and the
// ledger still reports 93.
func (suite *PricingServiceTestSuite) TestAddPrice_DuplicateKeepsFirstEntry() {
	ctx := context.Background()
	product := suite.widget()
	eur := suite.eur
	firstPrice := decimal.RequireFromString("93")

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil)
	suite.mockCurrencyRepo.On("CurrencyExists", ctx, eur.CurrencyID).Return(true, nil)

	stored := &domain.ProductPrice{
		ProductPriceID: 7, ProductID: product.ProductID, CurrencyID: eur.CurrencyID, Price: firstPrice, Currency: &eur,
	}
	suite.mockPriceRepo.On("SavePrice", ctx, mock.MatchedBy(func(p domain.ProductPrice) bool {
		return p.Price.Equal(firstPrice)
	})).Return(stored, nil).Once()
	suite.mockPriceRepo.On("SavePrice", ctx, mock.MatchedBy(func(p domain.ProductPrice) bool {
		return p.Price.Equal(decimal.RequireFromString("95"))
	})).Return(nil, apperrors.ErrDuplicatePrice).Once()
	suite.mockPriceRepo.On("ListPricesForProduct", ctx, product.ProductID).Return([]domain.ProductPrice{*stored}, nil)

	created, err := suite.service.AddPrice(ctx, product.ProductID, dto.AddPriceRequest{CurrencyID: eur.CurrencyID, Price: firstPrice})
	suite.Require().NoError(err)
	suite.True(created.Price.Equal(firstPrice))

	_, err = suite.service.AddPrice(ctx, product.ProductID, dto.AddPriceRequest{CurrencyID: eur.CurrencyID, Price: decimal.RequireFromString("95")})
	suite.Require().ErrorIs(err, apperrors.ErrDuplicatePrice)

	prices, err := suite.service.GetPrices(ctx, product.ProductID)
	suite.Require().NoError(err)
	suite.Require().Len(prices, 1)
	suite.True(prices[0].Price.Equal(firstPrice), "the first stored price must survive the rejected duplicate")
}

// --- ConvertedPrices ---

func (suite *PricingServiceTestSuite) TestConvertedPrices_Success() {
	ctx := context.Background()
	product := suite.widget() // 100 USD, USD rate 1.0

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency{suite.usd, suite.eur}, nil).Once()

	conversions, err := suite.service.ConvertedPrices(ctx, product.ProductID)

	suite.Require().NoError(err)
	suite.Require().Len(conversions, 1, "the base currency itself is skipped")
	suite.Equal(suite.eur.CurrencyID, conversions[0].Currency.CurrencyID)
	suite.True(conversions[0].Price.Equal(decimal.RequireFromString("93")),
		"expected 100 / 1.0 * 0.93 = 93, got %s", conversions[0].Price)
}

func (suite *PricingServiceTestSuite) TestConvertedPrices_ProductNotFound() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	conversions, err := suite.service.ConvertedPrices(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(conversions)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything)
}

// --- Repo error passthrough ---

func (suite *PricingServiceTestSuite) TestGetProduct_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockProductRepo.On("FindProductByID", ctx, int64(42)).Return(nil, expectedErr).Once()

	product, err := suite.service.GetProduct(ctx, 42)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
