package rest

import (
	"context"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]domain.UserSummary, error)
	UpdateUserRole(ctx context.Context, id uint64, role string) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserHandler struct {
	userService UserService
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		timeout:     10 * time.Second,
	}
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, users)
}

// UpdateUserRole leaves the role check to the service so a missing role
// gets the same "Invalid role" answer as an unknown one.
func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid user id"})
	}

	var req UpdateRoleRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.UpdateUserRole(ctx, userID, req.Role); err != nil {
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "User role updated successfully"})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		logger.Error("Failed to delete user", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "User deleted successfully"})
}
