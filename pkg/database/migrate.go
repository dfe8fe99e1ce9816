package database

import (
	"fmt"
	"goodsStore/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables this service reads and writes.
// users is normally created by the auth service; AutoMigrate leaves an
// existing table's extra columns alone.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Goods{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Category{},
		&domain.Product{},
		&domain.Artist{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
