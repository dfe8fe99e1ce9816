package postgres

import (
	"context"
	"errors"
	"fmt"
	"goodsStore/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository struct {
	DB *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{
		DB: db,
	}
}

func (r *ArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	err := conn(ctx, r.DB).Omit(clause.Associations).Create(artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to create artist: %w", err)
	}

	return nil
}

func (r *ArtistRepository) FindByID(ctx context.Context, id uint64) (domain.Artist, error) {
	var artist domain.Artist

	err := conn(ctx, r.DB).First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Artist{}, domain.ErrArtistNotFound
		}
		return domain.Artist{}, fmt.Errorf("failed to find artist: %w", err)
	}

	return artist, nil
}

func (r *ArtistRepository) FindAll(ctx context.Context) ([]domain.Artist, error) {
	artists := []domain.Artist{}
	err := conn(ctx, r.DB).Order("created_at DESC").Order("id DESC").Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find artists: %w", err)
	}

	return artists, nil
}

func (r *ArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	if err := r.exists(ctx, artist.ID); err != nil {
		return err
	}

	updateData := map[string]interface{}{
		"name":      artist.Name,
		"title":     artist.Title,
		"image_url": artist.ImageURL,
		"bio":       artist.Bio,
	}

	result := conn(ctx, r.DB).Model(&domain.Artist{}).Where("id = ?", artist.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update artist: %w", result.Error)
	}

	return nil
}

func (r *ArtistRepository) UpdateStatus(ctx context.Context, id uint64, status domain.ArtistStatus) error {
	if err := r.exists(ctx, id); err != nil {
		return err
	}

	result := conn(ctx, r.DB).Model(&domain.Artist{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update artist %d status: %w", id, result.Error)
	}

	return nil
}

func (r *ArtistRepository) Delete(ctx context.Context, id uint64) error {
	result := conn(ctx, r.DB).Delete(&domain.Artist{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete artist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrArtistNotFound
	}

	return nil
}

// exists checks the row first: mysql reports zero affected rows for an
// UPDATE that leaves the values unchanged.
func (r *ArtistRepository) exists(ctx context.Context, id uint64) error {
	var existing domain.Artist
	if err := conn(ctx, r.DB).Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrArtistNotFound
		}
		return fmt.Errorf("failed to find artist: %w", err)
	}

	return nil
}
