package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"goodsStore/domain"
	"time"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

type productRow struct {
	ID           uint64
	CategoryID   *uint64
	Name         string
	Description  string
	ImageURL     string
	Details      []byte
	CreatedAt    time.Time
	CategoryName *string
}

// FindAll lists products with their category name. A nil categoryID lists
// every product.
func (r *ProductRepository) FindAll(ctx context.Context, categoryID *uint64) ([]domain.ProductListing, error) {
	query := conn(ctx, r.DB).
		Table("products AS p").
		Select("p.id, p.category_id, p.name, p.description, p.image_url, p.details, p.created_at, c.name AS category_name").
		Joins("LEFT JOIN categories c ON p.category_id = c.id")
	if categoryID != nil {
		query = query.Where("p.category_id = ?", *categoryID)
	}

	var rows []productRow
	if err := query.Order("p.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]domain.ProductListing, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.ProductListing{
			Product: domain.Product{
				ID:          row.ID,
				CategoryID:  row.CategoryID,
				Name:        row.Name,
				Description: row.Description,
				ImageURL:    row.ImageURL,
				Details:     json.RawMessage(row.Details),
				CreatedAt:   row.CreatedAt,
			},
			CategoryName: row.CategoryName,
		})
	}

	return products, nil
}
