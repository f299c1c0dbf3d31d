package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricehub/product_pricing_app/internal/apperrors"
	portssvc "github.com/pricehub/product_pricing_app/internal/core/ports/services"
	"github.com/pricehub/product_pricing_app/internal/dto"
	"github.com/pricehub/product_pricing_app/internal/middleware"
)

// priceHandler handles HTTP requests related to a product's price ledger.
type priceHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newPriceHandler creates a new priceHandler.
func newPriceHandler(ps portssvc.PricingSvcFacade) *priceHandler {
	return &priceHandler{pricingService: ps}
}

// registerPriceRoutes registers routes related to product prices.
func registerPriceRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPriceHandler(pricingService)

	products := rg.Group("/products")
	{
		products.GET("/:productID/prices", h.getPrices)
		products.POST("/:productID/prices", h.addPrice)
		products.GET("/:productID/conversions", h.getConversions)
	}
}

// getPrices godoc
// @Summary List a product's prices
// @Description Retrieves all price ledger entries of a product with their currencies
// @Tags prices
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ProductPriceResponse}
// @Failure 400 {object} dto.APIResponse "Invalid product id"
// @Failure 404 {object} dto.APIResponse "Product not found"
// @Failure 500 {object} dto.APIResponse "Failed to list prices"
// @Router /products/{productID}/prices [get]
func (h *priceHandler) getPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	prices, err := h.pricingService.GetPrices(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found for price listing", slog.Int64("product_id", productID))
			c.JSON(http.StatusNotFound, dto.Error("Product not found"))
		} else {
			logger.Error("Failed to list prices from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to list prices"))
		}
		return
	}

	logger.Info("Prices listed successfully", slog.Int64("product_id", productID), slog.Int("count", len(prices)))
	c.JSON(http.StatusOK, dto.OK("", dto.ToListProductPriceResponse(prices)))
}

// addPrice godoc
// @Summary Add a price to a product
// @Description Stores the product's price in an additional currency; at most one price per currency
// @Tags prices
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param price body dto.AddPriceRequest true "Currency and price"
// @Success 201 {object} dto.APIResponse{data=dto.ProductPriceResponse}
// @Failure 400 {object} dto.APIResponse "Validation error or unknown currency"
// @Failure 404 {object} dto.APIResponse "Product not found"
// @Failure 409 {object} dto.APIResponse "Price already exists for this currency"
// @Failure 500 {object} dto.APIResponse "Failed to add price"
// @Router /products/{productID}/prices [post]
func (h *priceHandler) addPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req dto.AddPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request format: "+err.Error()))
		return
	}

	logger.Info("Received request to add price",
		slog.Int64("product_id", productID), slog.Int64("currency_id", req.CurrencyID))

	created, err := h.pricingService.AddPrice(c.Request.Context(), productID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for price insert", slog.Int64("product_id", productID))
			c.JSON(http.StatusNotFound, dto.Error("Product not found"))
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, dto.Error("The specified currency does not exist"))
		case errors.Is(err, apperrors.ErrDuplicatePrice):
			logger.Warn("Duplicate price for product and currency",
				slog.Int64("product_id", productID), slog.Int64("currency_id", req.CurrencyID))
			c.JSON(http.StatusConflict, dto.Error("A price already exists for this product in the selected currency"))
		default:
			logger.Error("Failed to add price in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to add price"))
		}
		return
	}

	logger.Info("Price added successfully", slog.Int64("product_price_id", created.ProductPriceID))
	c.JSON(http.StatusCreated, dto.OK("Price added successfully", dto.ToProductPriceResponse(created)))
}

// getConversions godoc
// @Summary List informational conversions of a product's base price
// @Description Re-expresses the base price in every other registered currency using the stored reference rates
// @Tags prices
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ConvertedPriceResponse}
// @Failure 400 {object} dto.APIResponse "Invalid product id"
// @Failure 404 {object} dto.APIResponse "Product not found"
// @Failure 500 {object} dto.APIResponse "Failed to convert prices"
// @Router /products/{productID}/conversions [get]
func (h *priceHandler) getConversions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	conversions, err := h.pricingService.ConvertedPrices(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Error("Product not found"))
		} else {
			logger.Error("Failed to convert prices in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to convert prices"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.ToListConvertedPriceResponse(conversions)))
}
