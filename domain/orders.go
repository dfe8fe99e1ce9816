package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          *uint64         `gorm:"column:user_id;index" json:"user_id"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod   PaymentMethod   `gorm:"column:payment_method;type:varchar(16);not null;check:chk_orders_payment_method,payment_method IN ('card', 'bank')" json:"payment_method"`
	ShippingStatus  ShippingStatus  `gorm:"column:shipping_status;type:varchar(16);not null;default:pending;check:chk_orders_shipping_status,shipping_status IN ('pending', 'shipping', 'delivered', 'cancelled')" json:"shipping_status"`
	ShippingAddress string          `gorm:"column:shipping_address;type:text" json:"shipping_address"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	User  *User       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "goods_orders"
}

// OrderItem keeps the price the buyer paid, it is never re-read from goods.
type OrderItem struct {
	ID       uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  uint64          `gorm:"column:order_id;not null;index" json:"order_id"`
	GoodsID  uint64          `gorm:"column:goods_id;not null;index" json:"goods_id"`
	Quantity int             `gorm:"column:quantity;not null;check:chk_order_item_quantity,quantity > 0" json:"quantity"`
	Price    decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`

	Goods *Goods `gorm:"foreignKey:GoodsID;constraint:OnDelete:RESTRICT" json:"-"`

	// filled by the listing queries from the goods table
	GoodsName  *string `gorm:"-" json:"goods_name"`
	GoodsImage *string `gorm:"-" json:"goods_image"`
}

func (OrderItem) TableName() string {
	return "goods_order_items"
}

// OrderDetail is the admin listing row: the order plus the purchaser.
type OrderDetail struct {
	Order
	UserName  *string `json:"user_name,omitempty"`
	UserEmail *string `json:"user_email,omitempty"`
}

type (
	CreateOrderInput struct {
		UserID          *uint64
		TotalAmount     decimal.Decimal
		PaymentMethod   PaymentMethod
		ShippingAddress string
		Items           []OrderItemInput
		IdempotencyKey  string
	}

	OrderItemInput struct {
		GoodsID  uint64
		Quantity int
		Price    decimal.Decimal
	}

	CreateOrderResult struct {
		ID       uint64
		Replayed bool
	}
)
