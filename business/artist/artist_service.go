package artist

import (
	"context"
	"fmt"
	"goodsStore/domain"
	"goodsStore/pkg/logger"
	"strings"
)

// ArtistRepository contract interface
type ArtistRepository interface {
	Create(ctx context.Context, artist *domain.Artist) error
	FindByID(ctx context.Context, id uint64) (domain.Artist, error)
	FindAll(ctx context.Context) ([]domain.Artist, error)
	Update(ctx context.Context, artist *domain.Artist) error
	UpdateStatus(ctx context.Context, id uint64, status domain.ArtistStatus) error
	Delete(ctx context.Context, id uint64) error
}

type ArtistService struct {
	artistRepo ArtistRepository
}

func NewArtistService(artistRepo ArtistRepository) *ArtistService {
	return &ArtistService{
		artistRepo: artistRepo,
	}
}

func (s *ArtistService) GetAllArtists(ctx context.Context) ([]domain.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	artists, err := s.artistRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all artists", err)
		return nil, err
	}

	return artists, nil
}

func (s *ArtistService) GetArtistByID(ctx context.Context, id uint64) (domain.Artist, error) {
	if id == 0 {
		return domain.Artist{}, fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return domain.Artist{}, fmt.Errorf("context error: %w", err)
	}

	return s.artistRepo.FindByID(ctx, id)
}

// CreateArtist stores a new artist. Without an explicit status it starts
// as pending.
func (s *ArtistService) CreateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateArtist(artist); err != nil {
		logger.Warn("Invalid artist data", err)
		return nil, err
	}

	if artist.Status == "" {
		artist.Status = domain.ArtistPending
	}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		logger.Error("Failed to create artist", err)
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	logger.Info("Artist created", "artist_id", artist.ID)

	return artist, nil
}

// UpdateArtist rewrites the profile fields. The status only moves through
// UpdateArtistStatus.
func (s *ArtistService) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if artist.ID == 0 {
		return fmt.Errorf("%w: artist id is required", domain.ErrValidation)
	}

	if err := validateArtist(artist); err != nil {
		logger.Warn("Invalid artist data", err)
		return err
	}

	if err := s.artistRepo.Update(ctx, artist); err != nil {
		logger.Error("Failed to update artist", err, "artist_id", artist.ID)
		return err
	}

	logger.Info("Artist updated", "artist_id", artist.ID)

	return nil
}

func (s *ArtistService) UpdateArtistStatus(ctx context.Context, id uint64, rawStatus string) error {
	status, err := domain.ParseArtistStatus(rawStatus)
	if err != nil {
		return err
	}

	if id == 0 {
		return fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}

	if err := s.artistRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("Failed to update artist status", err, "artist_id", id)
		return err
	}

	logger.Info("Artist status updated", "artist_id", id, "status", string(status))

	return nil
}

func (s *ArtistService) DeleteArtist(ctx context.Context, id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: invalid artist id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.artistRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete artist", err, "artist_id", id)
		return err
	}

	logger.Info("Artist deleted", "artist_id", id)

	return nil
}

func validateArtist(artist *domain.Artist) error {
	artist.Name = strings.TrimSpace(artist.Name)
	if artist.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	if artist.Status != "" {
		if _, err := domain.ParseArtistStatus(string(artist.Status)); err != nil {
			return err
		}
	}

	return nil
}
