package postgres

import (
	"context"
	"errors"
	"fmt"
	"goodsStore/domain"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

type orderRow struct {
	ID              uint64
	UserID          *uint64
	TotalAmount     decimal.Decimal
	PaymentMethod   string
	ShippingStatus  string
	ShippingAddress string
	CreatedAt       time.Time
	UserName        *string
	UserEmail       *string
}

func (r orderRow) toOrder() domain.Order {
	return domain.Order{
		ID:              r.ID,
		UserID:          r.UserID,
		TotalAmount:     r.TotalAmount,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		ShippingStatus:  domain.ShippingStatus(r.ShippingStatus),
		ShippingAddress: r.ShippingAddress,
		CreatedAt:       r.CreatedAt,
		Items:           []domain.OrderItem{},
	}
}

type orderItemRow struct {
	ID         uint64
	OrderID    uint64
	GoodsID    uint64
	Quantity   int
	Price      decimal.Decimal
	GoodsName  *string
	GoodsImage *string
}

// itemsQueryChunk keeps the IN list well below the bind parameter limit
// of postgres (65535) and mysql prepared statements.
const itemsQueryChunk = 1000

const orderColumns = "o.id, o.user_id, o.total_amount, o.payment_method, o.shipping_status, o.shipping_address, o.created_at"

func (r *OrdersRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	err := conn(ctx, r.DB).Omit(clause.Associations).Create(order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) CreateOrderItem(ctx context.Context, item *domain.OrderItem) error {
	err := conn(ctx, r.DB).Omit(clause.Associations).Create(item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("goods %d: %w", item.GoodsID, domain.ErrGoodsNotFound)
		}
		return fmt.Errorf("failed to insert order item: %w", err)
	}

	return nil
}

// GetAllOrders lists every order with its purchaser, newest first.
func (r *OrdersRepository) GetAllOrders(ctx context.Context) ([]domain.OrderDetail, error) {
	var rows []orderRow
	err := conn(ctx, r.DB).
		Table("goods_orders AS o").
		Select(orderColumns + ", u.name AS user_name, u.email AS user_email").
		Joins("LEFT JOIN users u ON o.user_id = u.id").
		Order("o.created_at DESC").Order("o.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders, err := r.withItems(ctx, rows)
	if err != nil {
		return nil, err
	}

	details := make([]domain.OrderDetail, 0, len(orders))
	for i, order := range orders {
		details = append(details, domain.OrderDetail{
			Order:     order,
			UserName:  rows[i].UserName,
			UserEmail: rows[i].UserEmail,
		})
	}

	return details, nil
}

func (r *OrdersRepository) GetOrdersByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var rows []orderRow
	err := conn(ctx, r.DB).
		Table("goods_orders AS o").
		Select(orderColumns).
		Where("o.user_id = ?", userID).
		Order("o.created_at DESC").Order("o.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query orders of user %d: %w", userID, err)
	}

	return r.withItems(ctx, rows)
}

func (r *OrdersRepository) GetOrder(ctx context.Context, orderID uint64) (domain.Order, error) {
	var rows []orderRow
	err := conn(ctx, r.DB).
		Table("goods_orders AS o").
		Select(orderColumns).
		Where("o.id = ?", orderID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to query order %d: %w", orderID, err)
	}
	if len(rows) == 0 {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	orders, err := r.withItems(ctx, rows)
	if err != nil {
		return domain.Order{}, err
	}

	return orders[0], nil
}

// LockOrder reads the order header with SELECT ... FOR UPDATE. Only
// meaningful inside a transaction.
func (r *OrdersRepository) LockOrder(ctx context.Context, orderID uint64) (domain.Order, error) {
	var order domain.Order
	err := conn(ctx, r.DB).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to lock order %d: %w", orderID, err)
	}

	return order, nil
}

func (r *OrdersRepository) UpdateShippingStatus(ctx context.Context, orderID uint64, status domain.ShippingStatus) error {
	result := conn(ctx, r.DB).
		Model(&domain.Order{}).
		Where("id = ?", orderID).
		Update("shipping_status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order %d: %w", orderID, result.Error)
	}

	return nil
}

func (r *OrdersRepository) withItems(ctx context.Context, rows []orderRow) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(rows))
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toOrder())
		ids = append(ids, row.ID)
	}

	items, err := r.itemsByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if its, ok := items[orders[i].ID]; ok {
			orders[i].Items = its
		}
	}

	return orders, nil
}

// itemsByOrder loads the line items of all given orders with one query per
// chunk of ids, joined with the goods name and image.
func (r *OrdersRepository) itemsByOrder(ctx context.Context, orderIDs []uint64) (map[uint64][]domain.OrderItem, error) {
	out := make(map[uint64][]domain.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	var rows []orderItemRow
	for chunk := range slices.Chunk(orderIDs, itemsQueryChunk) {
		var part []orderItemRow
		err := conn(ctx, r.DB).
			Table("goods_order_items AS i").
			Select("i.id, i.order_id, i.goods_id, i.quantity, i.price, g.name AS goods_name, g.image_url AS goods_image").
			Joins("LEFT JOIN goods g ON i.goods_id = g.id").
			Where("i.order_id IN ?", chunk).
			Order("i.id ASC").
			Scan(&part).Error
		if err != nil {
			return nil, fmt.Errorf("failed to query order items: %w", err)
		}
		rows = append(rows, part...)
	}

	for _, row := range rows {
		out[row.OrderID] = append(out[row.OrderID], domain.OrderItem{
			ID:         row.ID,
			OrderID:    row.OrderID,
			GoodsID:    row.GoodsID,
			Quantity:   row.Quantity,
			Price:      row.Price,
			GoodsName:  row.GoodsName,
			GoodsImage: row.GoodsImage,
		})
	}

	return out, nil
}
