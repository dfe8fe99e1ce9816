package postgres

import (
	"context"
	"errors"
	"fmt"
	"goodsStore/domain"

	"gorm.io/gorm"
)

type GoodsRepository struct {
	DB *gorm.DB
}

func NewGoodsRepository(db *gorm.DB) *GoodsRepository {
	return &GoodsRepository{
		DB: db,
	}
}

func (r *GoodsRepository) Create(ctx context.Context, goods *domain.Goods) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := conn(ctx, r.DB).Create(goods).Error; err != nil {
		return fmt.Errorf("failed to create goods: %w", err)
	}

	return nil
}

func (r *GoodsRepository) FindByID(ctx context.Context, id uint64) (domain.Goods, error) {
	if err := ctx.Err(); err != nil {
		return domain.Goods{}, fmt.Errorf("context error: %w", err)
	}

	var goods domain.Goods

	err := conn(ctx, r.DB).First(&goods, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Goods{}, domain.ErrGoodsNotFound
		}
		return domain.Goods{}, fmt.Errorf("failed to find goods: %w", err)
	}

	return goods, nil
}

func (r *GoodsRepository) FindAll(ctx context.Context) ([]domain.Goods, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	goods := []domain.Goods{}
	err := conn(ctx, r.DB).Order("created_at DESC").Order("id DESC").Find(&goods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find goods: %w", err)
	}

	return goods, nil
}

func (r *GoodsRepository) Update(ctx context.Context, goods *domain.Goods) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	db := conn(ctx, r.DB)

	var existing domain.Goods
	if err := db.Select("id").First(&existing, goods.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGoodsNotFound
		}
		return fmt.Errorf("failed to find goods: %w", err)
	}

	// a map so zero stock and empty strings are written too
	updateData := map[string]interface{}{
		"name":        goods.Name,
		"description": goods.Description,
		"price":       goods.Price,
		"stock":       goods.Stock,
		"image_url":   goods.ImageURL,
	}

	result := db.Model(&domain.Goods{}).Where("id = ?", goods.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update goods: %w", result.Error)
	}

	return nil
}

func (r *GoodsRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := conn(ctx, r.DB).Delete(&domain.Goods{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domain.ErrGoodsInUse
		}
		return fmt.Errorf("failed to delete goods: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrGoodsNotFound
	}

	return nil
}

// DecreaseStock takes quantity units off the counter only when that many are
// left. The UPDATE holds the row lock until the surrounding transaction ends,
// so concurrent buyers of the last unit serialize here.
func (r *GoodsRepository) DecreaseStock(ctx context.Context, id uint64, quantity int) error {
	db := conn(ctx, r.DB)

	result := db.Model(&domain.Goods{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return fmt.Errorf("failed to decrease stock of goods %d: %w", id, result.Error)
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var existing domain.Goods
	if err := db.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("goods %d: %w", id, domain.ErrGoodsNotFound)
		}
		return fmt.Errorf("failed to find goods %d: %w", id, err)
	}

	return fmt.Errorf("goods %d: %w", id, domain.ErrInsufficientStock)
}
