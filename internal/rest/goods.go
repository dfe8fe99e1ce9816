package rest

import (
	"context"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type GoodsService interface {
	GetAllGoods(ctx context.Context) ([]domain.Goods, error)
	GetGoodsByID(ctx context.Context, id uint64) (domain.Goods, error)
	CreateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error)
	UpdateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error)
	DeleteGoods(ctx context.Context, id uint64) error
}

type GoodsHandler struct {
	goodsService GoodsService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewGoodsHandler(goodsService GoodsService) *GoodsHandler {
	return &GoodsHandler{
		goodsService: goodsService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

// GoodsRequest is used for both create and full update.
type GoodsRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url" validate:"omitempty,max=255"`
}

func (r GoodsRequest) toGoods() *domain.Goods {
	return &domain.Goods{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}
}

func (h *GoodsHandler) GetAllGoods(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	goods, err := h.goodsService.GetAllGoods(ctx)
	if err != nil {
		logger.Error("Failed to find all goods", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, goods)
}

func (h *GoodsHandler) GetGoodsByID(c echo.Context) error {
	goodsID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid goods id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid goods id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	goods, err := h.goodsService.GetGoodsByID(ctx, goodsID)
	if err != nil {
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, goods)
}

func (h *GoodsHandler) CreateGoods(c echo.Context) error {
	var req GoodsRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate goods request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.goodsService.CreateGoods(ctx, req.toGoods())
	if err != nil {
		logger.Error("Failed to create goods", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusCreated, ResponseMessage{
		ID:      created.ID,
		Message: "Good created successfully",
	})
}

func (h *GoodsHandler) UpdateGoods(c echo.Context) error {
	goodsID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid goods id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid goods id"})
	}

	var req GoodsRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate goods request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	goods := req.toGoods()
	goods.ID = goodsID

	if _, err := h.goodsService.UpdateGoods(ctx, goods); err != nil {
		logger.Error("Failed to update goods", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "Good updated successfully"})
}

func (h *GoodsHandler) DeleteGoods(c echo.Context) error {
	goodsID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid goods id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid goods id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.goodsService.DeleteGoods(ctx, goodsID); err != nil {
		logger.Error("Failed to delete goods", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "Good deleted successfully"})
}
