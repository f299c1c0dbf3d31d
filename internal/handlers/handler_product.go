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
	"github.com/pricehub/product_pricing_app/internal/utils/pagination"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	pricingService  portssvc.PricingSvcFacade
	defaultPageSize int
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.PricingSvcFacade, defaultPageSize int) *productHandler {
	return &productHandler{
		pricingService:  ps,
		defaultPageSize: defaultPageSize,
	}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade, defaultPageSize int) {
	h := newProductHandler(pricingService, defaultPageSize)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// parseProductID extracts and validates the product id path parameter.
func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid product id"))
		return 0, false
	}
	return id, true
}

// listProducts godoc
// @Summary List products
// @Description Retrieves one page of products with their base currencies, newest first by default
// @Tags products
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param order query string false "Sort order by id: asc or desc" Enums(asc, desc)
// @Success 200 {object} dto.APIResponse{data=dto.ListProductsResponse}
// @Failure 500 {object} dto.APIResponse "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	order := c.DefaultQuery("order", "desc")
	page, pageSize = pagination.Normalize(page, pageSize, h.defaultPageSize)

	result, err := h.pricingService.ListProducts(c.Request.Context(), pageSize, page, order)
	if err != nil {
		logger.Error("Failed to list products from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to list products"))
		return
	}

	resp := dto.ListProductsResponse{
		Products: dto.ToListProductResponse(result.Products),
		Meta: dto.PageMeta{
			CurrentPage: page,
			PerPage:     pageSize,
			LastPage:    pagination.LastPage(result.Total, pageSize),
			Total:       result.Total,
		},
	}
	logger.Info("Products listed successfully", slog.Int("count", len(resp.Products)))
	c.JSON(http.StatusOK, dto.OK("", resp))
}

// getProduct godoc
// @Summary Get a product by id
// @Description Retrieves a single product with its resolved base currency
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProductResponse}
// @Failure 400 {object} dto.APIResponse "Invalid product id"
// @Failure 404 {object} dto.APIResponse "Product not found"
// @Failure 500 {object} dto.APIResponse "Failed to retrieve product"
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.pricingService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found", slog.Int64("product_id", productID))
			c.JSON(http.StatusNotFound, dto.Error("Product not found"))
		} else {
			logger.Error("Failed to get product from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve product"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.ToProductResponse(product)))
}

// createProduct godoc
// @Summary Create a new product
// @Description Creates a product with a canonical price in a base currency
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.APIResponse{data=dto.ProductResponse}
// @Failure 400 {object} dto.APIResponse "Validation error or unknown currency"
// @Failure 409 {object} dto.APIResponse "Product name already exists"
// @Failure 500 {object} dto.APIResponse "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request format: "+err.Error()))
		return
	}

	logger.Info("Received request to create product", slog.String("name", req.Name))

	created, err := h.pricingService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateName):
			logger.Warn("Attempted to create product with duplicate name", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, dto.Error("A product with this name already exists"))
		case errors.Is(err, apperrors.ErrInvalidReference):
			logger.Warn("Unknown base currency for product", slog.Int64("currency_id", req.CurrencyID))
			c.JSON(http.StatusBadRequest, dto.Error("The specified currency does not exist"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to create product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to create product"))
		}
		return
	}

	logger.Info("Product created successfully", slog.Int64("product_id", created.ProductID))
	c.JSON(http.StatusCreated, dto.OK("Product created successfully", dto.ToProductResponse(created)))
}

// updateProduct godoc
// @Summary Update a product
// @Description Applies a partial update; only supplied fields change
// @Tags products
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ProductResponse}
// @Failure 400 {object} dto.APIResponse "Validation error or unknown currency"
// @Failure 404 {object} dto.APIResponse "Product not found"
// @Failure 409 {object} dto.APIResponse "Product name already exists"
// @Failure 500 {object} dto.APIResponse "Failed to update product"
// @Router /products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request format: "+err.Error()))
		return
	}

	updated, err := h.pricingService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for update", slog.Int64("product_id", productID))
			c.JSON(http.StatusNotFound, dto.Error("Product not found"))
		case errors.Is(err, apperrors.ErrDuplicateName):
			c.JSON(http.StatusConflict, dto.Error("A product with this name already exists"))
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, dto.Error("The specified currency does not exist"))
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to update product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to update product"))
		}
		return
	}

	logger.Info("Product updated successfully", slog.Int64("product_id", productID))
	c.JSON(http.StatusOK, dto.OK("Product updated successfully", dto.ToProductResponse(updated)))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes a product together with all its price ledger entries
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid product id"
// @Failure 404 {object} dto.APIResponse "Product not found"
// @Failure 500 {object} dto.APIResponse "Failed to delete product"
// @Router /products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.pricingService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found for delete", slog.Int64("product_id", productID))
			c.JSON(http.StatusNotFound, dto.Error("Product not found"))
		} else {
			logger.Error("Failed to delete product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to delete product"))
		}
		return
	}

	logger.Info("Product deleted successfully", slog.Int64("product_id", productID))
	c.JSON(http.StatusOK, dto.OK("Product deleted successfully", nil))
}
