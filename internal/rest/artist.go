package rest

import (
	"context"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ArtistService interface {
	GetAllArtists(ctx context.Context) ([]domain.Artist, error)
	GetArtistByID(ctx context.Context, id uint64) (domain.Artist, error)
	CreateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error)
	UpdateArtist(ctx context.Context, artist *domain.Artist) error
	UpdateArtistStatus(ctx context.Context, id uint64, status string) error
	DeleteArtist(ctx context.Context, id uint64) error
}

type ArtistHandler struct {
	artistService ArtistService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewArtistHandler(artistService ArtistService) *ArtistHandler {
	return &ArtistHandler{
		artistService: artistService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type ArtistRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Title    string  `json:"title" validate:"max=255"`
	ImageURL string  `json:"image_url" validate:"omitempty,max=255"`
	Bio      *string `json:"bio"`
	UserID   *uint64 `json:"user_id" validate:"omitempty,gt=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type ArtistStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r ArtistRequest) toArtist() *domain.Artist {
	return &domain.Artist{
		Name:     r.Name,
		Title:    r.Title,
		ImageURL: r.ImageURL,
		Bio:      r.Bio,
		UserID:   r.UserID,
		Status:   domain.ArtistStatus(r.Status),
	}
}

func (h *ArtistHandler) GetAllArtists(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	artists, err := h.artistService.GetAllArtists(ctx)
	if err != nil {
		logger.Error("Failed to find all artists", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) GetArtistByID(c echo.Context) error {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid artist id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	artist, err := h.artistService.GetArtistByID(ctx, artistID)
	if err != nil {
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var req ArtistRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate artist request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.artistService.CreateArtist(ctx, req.toArtist())
	if err != nil {
		logger.Error("Failed to create artist", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusCreated, ResponseMessage{
		ID:      created.ID,
		Message: "Artist created successfully",
	})
}

func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid artist id"})
	}

	var req ArtistRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate artist request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	artist := req.toArtist()
	artist.ID = artistID

	if err := h.artistService.UpdateArtist(ctx, artist); err != nil {
		logger.Error("Failed to update artist", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "Artist updated successfully"})
}

func (h *ArtistHandler) UpdateArtistStatus(c echo.Context) error {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid artist id"})
	}

	var req ArtistStatusRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid request body"})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.artistService.UpdateArtistStatus(ctx, artistID, req.Status); err != nil {
		logger.Error("Failed to update artist status", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "Artist status updated successfully"})
}

func (h *ArtistHandler) DeleteArtist(c echo.Context) error {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid artist id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.artistService.DeleteArtist(ctx, artistID); err != nil {
		logger.Error("Failed to delete artist", err)
		return c.JSON(errorResponse(err))
	}

	return c.JSON(http.StatusOK, ResponseMessage{Message: "Artist deleted successfully"})
}
