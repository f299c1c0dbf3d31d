package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pricehub/product_pricing_app/internal/apperrors"
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/pricehub/product_pricing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	ProductHandlerTestSuite // reuse router setup and serve helper
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	currencies := []domain.Currency{
		{CurrencyID: 1, Name: "US Dollar", Symbol: "$", ExchangeRate: decimal.RequireFromString("1.0")},
		{CurrencyID: 2, Name: "Euro", Symbol: "€", ExchangeRate: decimal.RequireFromString("0.93")},
	}

	suite.mockCurrencyService.On("ListCurrencies", mock.Anything).Return(currencies, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var env apiEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.Equal("ok", env.State)

	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("US Dollar", resp[0].Name)
	suite.Equal("Euro", resp[1].Name)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_Success() {
	currency := &domain.Currency{CurrencyID: 2, Name: "Euro", Symbol: "€", ExchangeRate: decimal.RequireFromString("0.93")}

	suite.mockCurrencyService.On("GetCurrencyByID", mock.Anything, int64(2)).Return(currency, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/currencies/2", nil)

	suite.Equal(http.StatusOK, w.Code)
	var env apiEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	var resp dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(int64(2), resp.CurrencyID)
	suite.True(resp.ExchangeRate.Equal(decimal.RequireFromString("0.93")))
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockCurrencyService.On("GetCurrencyByID", mock.Anything, int64(404)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/currencies/404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	var env apiEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.Equal("error", env.State)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_InvalidID() {
	w := suite.serve(http.MethodGet, "/api/v1/currencies/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "GetCurrencyByID", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
