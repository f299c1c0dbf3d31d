package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pricehub/product_pricing_app/internal/apperrors"
	portssvc "github.com/pricehub/product_pricing_app/internal/core/ports/services"
	"github.com/pricehub/product_pricing_app/internal/dto"
	"github.com/pricehub/product_pricing_app/internal/middleware"
)

// currencyHandler handles HTTP requests related to currencies.
// The registry is read-only over HTTP; seeding happens out of band.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyID", h.getCurrencyByID)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves all registered currencies with their reference exchange rates
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CurrencyResponse}
// @Failure 500 {object} dto.APIResponse "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to list currencies"))
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.OK("", dto.ToListCurrencyResponse(currencies)))
}

// getCurrencyByID godoc
// @Summary Get a currency by id
// @Description Retrieves details for a specific currency
// @Tags currencies
// @Produce json
// @Param currencyID path int true "Currency ID"
// @Success 200 {object} dto.APIResponse{data=dto.CurrencyResponse}
// @Failure 400 {object} dto.APIResponse "Invalid currency id"
// @Failure 404 {object} dto.APIResponse "Currency not found"
// @Failure 500 {object} dto.APIResponse "Failed to retrieve currency"
// @Router /currencies/{currencyID} [get]
func (h *currencyHandler) getCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyID, err := strconv.ParseInt(c.Param("currencyID"), 10, 64)
	if err != nil || currencyID < 1 {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid currency id"))
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found", slog.Int64("currency_id", currencyID))
			c.JSON(http.StatusNotFound, dto.Error("Currency not found"))
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve currency"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.ToCurrencyResponse(currency)))
}
