package user

import (
	"context"
	"fmt"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
)

// UserRepository contract interface
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.UserSummary, error)
	UpdateRole(ctx context.Context, id uint64, role domain.Role) error
	Delete(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetAllUsers lists accounts grouped by role, then by name.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.UserSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return nil, err
	}

	return users, nil
}

func (s *UserService) UpdateUserRole(ctx context.Context, id uint64, rawRole string) error {
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		logger.Warn("Invalid role", err, "user_id", id)
		return err
	}

	if id == 0 {
		return fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		logger.Error("Failed to update user role", err, "user_id", id)
		return err
	}

	logger.Info("User role updated", "user_id", id, "role", string(role))

	return nil
}

// DeleteUser removes the account. Its orders stay and lose the user link.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete user", err, "user_id", id)
		return err
	}

	logger.Info("User deleted", "user_id", id)

	return nil
}
