package rest

import (
	"context"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetProducts(ctx context.Context, categoryID *uint64) ([]domain.ProductListing, error)
}

type ProductHandler struct {
	productService ProductService
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		timeout:        10 * time.Second,
	}
}

// GetProducts answers GET /products, optionally filtered by ?category=<id>.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	var categoryID *uint64
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid category id"})
		}
		categoryID = &id
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetProducts(ctx, categoryID)
	if err != nil {
		logger.Error("Failed to find products", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, products)
}
