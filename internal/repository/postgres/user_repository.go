package postgres

import (
	"context"
	"errors"
	"fmt"
	"goodsStore/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.UserSummary, error) {
	users := []domain.UserSummary{}
	err := conn(ctx, r.DB).
		Model(&domain.User{}).
		Select("id, name AS full_name, email, UPPER(role) AS role, created_at").
		Order("role ASC").Order("name ASC").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uint64, role domain.Role) error {
	db := conn(ctx, r.DB)

	var existing domain.User
	if err := db.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	result := db.Model(&domain.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("failed to update role of user %d: %w", id, result.Error)
	}

	return nil
}

// Delete removes the account. Orders and artist profiles that point at it
// keep their rows with user_id set to NULL.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := conn(ctx, r.DB).Delete(&domain.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
