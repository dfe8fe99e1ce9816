package orders

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"goodsStore/pkg/metrics"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	CreateOrderItem(ctx context.Context, item *domain.OrderItem) error
	GetAllOrders(ctx context.Context) ([]domain.OrderDetail, error)
	GetOrdersByUser(ctx context.Context, userID uint64) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (domain.Order, error)
	LockOrder(ctx context.Context, orderID uint64) (domain.Order, error)
	UpdateShippingStatus(ctx context.Context, orderID uint64, status domain.ShippingStatus) error
}

type StockRepository interface {
	DecreaseStock(ctx context.Context, goodsID uint64, quantity int) error
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (orderID uint64, reserved bool, err error)
	Complete(ctx context.Context, key string, orderID uint64) error
	Release(ctx context.Context, key string) error
}

type OrdersService struct {
	tx                Transactor
	orderRepo         OrdersRepository
	stockRepo         StockRepository
	idem              IdempotencyStore
	strictTransitions bool
}

type Option func(*OrdersService)

// WithIdempotencyStore enables Idempotency-Key handling on CreateOrder.
func WithIdempotencyStore(store IdempotencyStore) Option {
	return func(s *OrdersService) {
		s.idem = store
	}
}

// WithStrictTransitions makes UpdateShippingStatus enforce the lifecycle
// table in domain.CanTransition instead of accepting any valid status.
func WithStrictTransitions(strict bool) Option {
	return func(s *OrdersService) {
		s.strictTransitions = strict
	}
}

func NewOrdersService(tx Transactor, orderRepo OrdersRepository, stockRepo StockRepository, opts ...Option) *OrdersService {
	s := &OrdersService{
		tx:        tx,
		orderRepo: orderRepo,
		stockRepo: stockRepo,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateOrder writes the order header, its items and the stock decrements
// in one transaction. Nothing is kept when any step fails.
func (s *OrdersService) CreateOrder(ctx context.Context, in domain.CreateOrderInput) (domain.CreateOrderResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.CreateOrderResult{}, fmt.Errorf("context error: %w", err)
	}

	if err := validateOrder(in); err != nil {
		logger.Warn("Invalid order request", err)
		metrics.OrdersFailed.WithLabelValues("validation").Inc()
		return domain.CreateOrderResult{}, err
	}

	useIdem := s.idem != nil && in.IdempotencyKey != ""
	if useIdem {
		existingID, reserved, err := s.idem.Reserve(ctx, in.IdempotencyKey)
		switch {
		case errors.Is(err, domain.ErrIdempotencyInFlight):
			metrics.OrdersFailed.WithLabelValues("in_flight").Inc()
			return domain.CreateOrderResult{}, err
		case err != nil:
			// the database stays the source of truth, carry on without the key
			logger.Warn("Idempotency store unavailable", err)
			useIdem = false
		case !reserved:
			logger.Info("Order replayed from idempotency key", "order_id", existingID)
			metrics.OrdersReplayed.Inc()
			return domain.CreateOrderResult{ID: existingID, Replayed: true}, nil
		}
	}

	if sum := itemsTotal(in.Items); !sum.Equal(in.TotalAmount) {
		logger.Warn("Order total differs from item sum", "total_amount", in.TotalAmount.String(), "items_sum", sum.String())
	}

	start := time.Now()
	order := &domain.Order{
		UserID:          in.UserID,
		TotalAmount:     in.TotalAmount,
		PaymentMethod:   in.PaymentMethod,
		ShippingStatus:  domain.ShippingPending,
		ShippingAddress: in.ShippingAddress,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}

		// goods rows are locked in ascending id order and before the item
		// insert, whose FK check would otherwise take a shared lock first
		for _, it := range lockOrder(in.Items) {
			if err := s.stockRepo.DecreaseStock(ctx, it.GoodsID, it.Quantity); err != nil {
				return err
			}

			item := &domain.OrderItem{
				OrderID:  order.ID,
				GoodsID:  it.GoodsID,
				Quantity: it.Quantity,
				Price:    it.Price,
			}
			if err := s.orderRepo.CreateOrderItem(ctx, item); err != nil {
				return err
			}
		}

		return nil
	})
	metrics.OrderCreateLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if useIdem {
			if relErr := s.idem.Release(context.WithoutCancel(ctx), in.IdempotencyKey); relErr != nil {
				logger.Warn("Failed to release idempotency key", relErr)
			}
		}

		metrics.OrdersFailed.WithLabelValues(failureReason(err)).Inc()
		logger.Error("Failed to create order, transaction rolled back", err)
		return domain.CreateOrderResult{}, fmt.Errorf("failed to create order: %w", err)
	}

	if useIdem {
		if err := s.idem.Complete(context.WithoutCancel(ctx), in.IdempotencyKey, order.ID); err != nil {
			logger.Warn("Failed to store idempotency key", err, "order_id", order.ID)
		}
	}

	metrics.OrdersCreated.Inc()
	logger.Info("Order created", "order_id", order.ID, "items", len(in.Items))

	return domain.CreateOrderResult{ID: order.ID}, nil
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.OrderDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return nil, err
	}

	return orders, nil
}

func (s *OrdersService) GetOrdersByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.orderRepo.GetOrdersByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user orders", err, "user_id", userID)
		return nil, err
	}

	return orders, nil
}

func (s *OrdersService) GetOrder(ctx context.Context, orderID uint64) (domain.Order, error) {
	if orderID == 0 {
		return domain.Order{}, fmt.Errorf("%w: invalid order id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.GetOrder(ctx, orderID)
}

// UpdateShippingStatus sets the order's shipping status. Repeating the
// current status is a no-op.
func (s *OrdersService) UpdateShippingStatus(ctx context.Context, orderID uint64, rawStatus string) error {
	status, err := domain.ParseShippingStatus(rawStatus)
	if err != nil {
		return err
	}

	if orderID == 0 {
		return fmt.Errorf("%w: invalid order id", domain.ErrValidation)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.orderRepo.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}

		if current.ShippingStatus == status {
			return nil
		}

		if !domain.CanTransition(current.ShippingStatus, status) {
			if s.strictTransitions {
				return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.ShippingStatus, status)
			}
			logger.Warn("Shipping status moved outside the lifecycle table",
				"order_id", orderID, "from", string(current.ShippingStatus), "to", string(status))
		}

		return s.orderRepo.UpdateShippingStatus(ctx, orderID, status)
	})
	if err != nil {
		logger.Error("Failed to update order status", err, "order_id", orderID)
		return err
	}

	metrics.ShippingStatusUpdates.WithLabelValues(string(status)).Inc()
	logger.Info("Order status updated", "order_id", orderID, "status", string(status))

	return nil
}

func validateOrder(in domain.CreateOrderInput) error {
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", domain.ErrValidation)
	}

	if !in.PaymentMethod.Valid() {
		return fmt.Errorf("%w: payment_method must be card or bank", domain.ErrValidation)
	}

	if in.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total_amount cannot be negative", domain.ErrValidation)
	}

	for i, it := range in.Items {
		if it.GoodsID == 0 {
			return fmt.Errorf("%w: items[%d].goods_id is required", domain.ErrValidation, i)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity must be greater than 0", domain.ErrValidation, i)
		}
		if it.Price.IsNegative() {
			return fmt.Errorf("%w: items[%d].price cannot be negative", domain.ErrValidation, i)
		}
	}

	return nil
}

// lockOrder returns a copy of items sorted by goods id.
func lockOrder(items []domain.OrderItemInput) []domain.OrderItemInput {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.OrderItemInput) int {
		return cmp.Compare(a.GoodsID, b.GoodsID)
	})
	return sorted
}

func itemsTotal(items []domain.OrderItemInput) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "out_of_stock"
	case errors.Is(err, domain.ErrGoodsNotFound), errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
