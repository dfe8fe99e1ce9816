package goods

import (
	"context"
	"fmt"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"strings"
)

// GoodsRepository contract interface
type GoodsRepository interface {
	Create(ctx context.Context, goods *domain.Goods) error
	FindByID(ctx context.Context, id uint64) (domain.Goods, error)
	FindAll(ctx context.Context) ([]domain.Goods, error)
	Update(ctx context.Context, goods *domain.Goods) error
	Delete(ctx context.Context, id uint64) error
}

type GoodsService struct {
	goodsRepo GoodsRepository
}

func NewGoodsService(goodsRepo GoodsRepository) *GoodsService {
	return &GoodsService{
		goodsRepo: goodsRepo,
	}
}

func (s *GoodsService) GetAllGoods(ctx context.Context) ([]domain.Goods, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	goods, err := s.goodsRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all goods", err)
		return nil, err
	}

	return goods, nil
}

func (s *GoodsService) GetGoodsByID(ctx context.Context, id uint64) (domain.Goods, error) {
	if id == 0 {
		return domain.Goods{}, fmt.Errorf("%w: invalid goods id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return domain.Goods{}, fmt.Errorf("context error: %w", err)
	}

	goods, err := s.goodsRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find goods by id", err, "goods_id", id)
		return domain.Goods{}, err
	}

	return goods, nil
}

func (s *GoodsService) CreateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateGoods(goods); err != nil {
		logger.Warn("Invalid goods data", err)
		return nil, err
	}

	if err := s.goodsRepo.Create(ctx, goods); err != nil {
		logger.Error("Failed to create goods", err)
		return nil, fmt.Errorf("failed to create goods: %w", err)
	}

	logger.Info("Goods created", "goods_id", goods.ID)

	return goods, nil
}

// UpdateGoods replaces every editable field of the goods row and returns the
// stored result.
func (s *GoodsService) UpdateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if goods.ID == 0 {
		return nil, fmt.Errorf("%w: goods id is required", domain.ErrValidation)
	}

	if err := validateGoods(goods); err != nil {
		logger.Warn("Invalid goods data", err)
		return nil, err
	}

	if err := s.goodsRepo.Update(ctx, goods); err != nil {
		logger.Error("Failed to update goods", err, "goods_id", goods.ID)
		return nil, err
	}

	updated, err := s.goodsRepo.FindByID(ctx, goods.ID)
	if err != nil {
		logger.Error("Failed to fetch updated goods", err)
		return nil, fmt.Errorf("failed to fetch updated goods: %w", err)
	}

	logger.Info("Goods updated", "goods_id", goods.ID)

	return &updated, nil
}

func (s *GoodsService) DeleteGoods(ctx context.Context, id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: invalid goods id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.goodsRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete goods", err, "goods_id", id)
		return err
	}

	logger.Info("Goods deleted", "goods_id", id)

	return nil
}

func validateGoods(goods *domain.Goods) error {
	goods.Name = strings.TrimSpace(goods.Name)
	if goods.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	if goods.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}

	if goods.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrValidation)
	}

	return nil
}
