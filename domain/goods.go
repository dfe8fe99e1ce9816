package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CREATE TABLE goods (
//     id          SERIAL PRIMARY KEY,
//     name        VARCHAR(255) NOT NULL,
//     description TEXT,
//     price       DECIMAL(10, 2) NOT NULL,
//     stock       INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
//     image_url   VARCHAR(255),
//     created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
// );

type Goods struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"column:stock;not null;default:0;check:chk_goods_stock,stock >= 0" json:"stock"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Goods) TableName() string {
	return "goods"
}
