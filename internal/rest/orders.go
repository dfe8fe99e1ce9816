package rest

import (
	"context"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, in domain.CreateOrderInput) (domain.CreateOrderResult, error)
		GetAllOrders(ctx context.Context) ([]domain.OrderDetail, error)
		GetOrdersByUser(ctx context.Context, userID uint64) ([]domain.Order, error)
		GetOrder(ctx context.Context, orderID uint64) (domain.Order, error)
		UpdateShippingStatus(ctx context.Context, orderID uint64, status string) error
	}

	CreateOrderRequest struct {
		UserID          *uint64            `json:"user_id" validate:"omitempty,gt=0"`
		TotalAmount     decimal.Decimal    `json:"total_amount"`
		PaymentMethod   string             `json:"payment_method" validate:"required,oneof=card bank"`
		ShippingAddress string             `json:"shipping_address" validate:"max=2000"`
		Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	OrderItemRequest struct {
		GoodsID  uint64          `json:"goods_id" validate:"required,gt=0"`
		Quantity int             `json:"quantity" validate:"required,gt=0"`
		Price    decimal.Decimal `json:"price"`
	}

	UpdateStatusRequest struct {
		ShippingStatus string `json:"shipping_status" validate:"required"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var request CreateOrderRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items := make([]domain.OrderItemInput, 0, len(request.Items))
	for _, it := range request.Items {
		items = append(items, domain.OrderItemInput{
			GoodsID:  it.GoodsID,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	result, err := h.ordersService.CreateOrder(ctx, domain.CreateOrderInput{
		UserID:          request.UserID,
		TotalAmount:     request.TotalAmount,
		PaymentMethod:   domain.PaymentMethod(request.PaymentMethod),
		ShippingAddress: request.ShippingAddress,
		Items:           items,
		IdempotencyKey:  strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey)),
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(errorResponse(err))
	}

	if result.Replayed {
		return c.JSON(http.StatusOK, ResponseMessage{
			ID:         result.ID,
			Message:    "Order created successfully",
			Idempotent: true,
		})
	}

	return c.JSON(http.StatusCreated, ResponseMessage{
		ID:      result.ID,
		Message: "Order created successfully",
	})
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) GetUserOrders(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		logger.Error("Invalid user id", "user_id", c.Param("userId"))
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetOrdersByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user orders", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		logger.Error("Invalid order id", "order_id", c.Param("id"))
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		logger.Error("Invalid order id", "order_id", c.Param("id"))
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid order id"})
	}

	var request UpdateStatusRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.UpdateShippingStatus(ctx, orderID, request.ShippingStatus); err != nil {
		logger.Error("Failed to update order status", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "Order status updated successfully"})
}
