package domain

import (
	"encoding/json"
	"time"
)

type Category struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// Product is a catalogue entry shown on the landing page. Details holds
// free-form JSON such as an exhibition date or location.
type Product struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  *uint64         `gorm:"column:category_id;index" json:"category_id"`
	Name        string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	Details     json.RawMessage `gorm:"column:details;type:json" json:"details"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductListing is a product joined with its category name.
type ProductListing struct {
	Product
	CategoryName *string `json:"category_name"`
}
