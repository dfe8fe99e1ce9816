package product

import (
	"context"
	"fmt"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
)

type ProductRepository interface {
	FindAll(ctx context.Context, categoryID *uint64) ([]domain.ProductListing, error)
}

type ProductService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// GetProducts lists the catalogue, restricted to one category when
// categoryID is set.
func (s *ProductService) GetProducts(ctx context.Context, categoryID *uint64) ([]domain.ProductListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx, categoryID)
	if err != nil {
		logger.Error("Failed to find products", err)
		return nil, err
	}

	return products, nil
}
