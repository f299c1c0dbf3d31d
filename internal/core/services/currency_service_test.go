package services_test

import (
	"context"
	"testing"

	"github.com/pricehub/product_pricing_app/internal/apperrors"
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	portssvc "github.com/pricehub/product_pricing_app/internal/core/ports/services"
	"github.com/pricehub/product_pricing_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyReader
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyReader)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_Success() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyID: 1, Name: "US Dollar", Symbol: "$", ExchangeRate: decimal.RequireFromString("1.0")}

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(1)).Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{
		{CurrencyID: 1, Name: "US Dollar", Symbol: "$", ExchangeRate: decimal.RequireFromString("1.0")},
		{CurrencyID: 2, Name: "Euro", Symbol: "€", ExchangeRate: decimal.RequireFromString("0.93")},
	}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
