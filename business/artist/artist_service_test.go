package artist

import (
	"context"
	"goodsStore/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArtistRepo struct {
	rows   map[uint64]domain.Artist
	nextID uint64
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{rows: map[uint64]domain.Artist{}}
}

func (f *fakeArtistRepo) Create(_ context.Context, a *domain.Artist) error {
	f.nextID++
	a.ID = f.nextID
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeArtistRepo) FindByID(_ context.Context, id uint64) (domain.Artist, error) {
	a, ok := f.rows[id]
	if !ok {
		return domain.Artist{}, domain.ErrArtistNotFound
	}
	return a, nil
}

func (f *fakeArtistRepo) FindAll(_ context.Context) ([]domain.Artist, error) {
	out := []domain.Artist{}
	for id := f.nextID; id > 0; id-- {
		if a, ok := f.rows[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArtistRepo) Update(_ context.Context, a *domain.Artist) error {
	existing, ok := f.rows[a.ID]
	if !ok {
		return domain.ErrArtistNotFound
	}
	existing.Name, existing.Title, existing.ImageURL, existing.Bio = a.Name, a.Title, a.ImageURL, a.Bio
	f.rows[a.ID] = existing
	return nil
}

func (f *fakeArtistRepo) UpdateStatus(_ context.Context, id uint64, status domain.ArtistStatus) error {
	a, ok := f.rows[id]
	if !ok {
		return domain.ErrArtistNotFound
	}
	a.Status = status
	f.rows[id] = a
	return nil
}

func (f *fakeArtistRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrArtistNotFound
	}
	delete(f.rows, id)
	return nil
}

func TestCreateArtist(t *testing.T) {
	repo := newFakeArtistRepo()
	service := NewArtistService(repo)
	ctx := context.Background()

	created, err := service.CreateArtist(ctx, &domain.Artist{Name: " Kim Hong-do ", Title: "Painter"})
	require.NoError(t, err)
	assert.Equal(t, "Kim Hong-do", created.Name)
	assert.Equal(t, domain.ArtistPending, created.Status)

	approved, err := service.CreateArtist(ctx, &domain.Artist{Name: "Shin Yun-bok", Status: domain.ArtistApproved})
	require.NoError(t, err)
	assert.Equal(t, domain.ArtistApproved, approved.Status)

	_, err = service.CreateArtist(ctx, &domain.Artist{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.CreateArtist(ctx, &domain.Artist{Name: "x", Status: "famous"})
	assert.ErrorIs(t, err, domain.ErrInvalidArtistStatus)

	assert.Len(t, repo.rows, 2)
}

func TestUpdateArtistKeepsStatus(t *testing.T) {
	repo := newFakeArtistRepo()
	service := NewArtistService(repo)
	ctx := context.Background()

	created, err := service.CreateArtist(ctx, &domain.Artist{Name: "Jeong Seon"})
	require.NoError(t, err)
	require.NoError(t, service.UpdateArtistStatus(ctx, created.ID, "approved"))

	bio := "Landscape painter"
	require.NoError(t, service.UpdateArtist(ctx, &domain.Artist{ID: created.ID, Name: "Jeong Seon", Bio: &bio}))

	got, err := service.GetArtistByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ArtistApproved, got.Status)
	require.NotNil(t, got.Bio)
	assert.Equal(t, bio, *got.Bio)

	assert.ErrorIs(t, service.UpdateArtist(ctx, &domain.Artist{ID: 42, Name: "ghost"}), domain.ErrArtistNotFound)
	assert.ErrorIs(t, service.UpdateArtist(ctx, &domain.Artist{Name: "no id"}), domain.ErrValidation)
}

func TestUpdateArtistStatus(t *testing.T) {
	repo := newFakeArtistRepo()
	service := NewArtistService(repo)
	ctx := context.Background()

	created, err := service.CreateArtist(ctx, &domain.Artist{Name: "Yi Am"})
	require.NoError(t, err)

	assert.ErrorIs(t, service.UpdateArtistStatus(ctx, created.ID, "APPROVED"), domain.ErrInvalidArtistStatus)
	assert.ErrorIs(t, service.UpdateArtistStatus(ctx, 42, "rejected"), domain.ErrArtistNotFound)

	require.NoError(t, service.UpdateArtistStatus(ctx, created.ID, "rejected"))
	assert.Equal(t, domain.ArtistRejected, repo.rows[created.ID].Status)
}

func TestGetAndDeleteArtists(t *testing.T) {
	repo := newFakeArtistRepo()
	service := NewArtistService(repo)
	ctx := context.Background()

	for _, name := range []string{"first", "second"} {
		_, err := service.CreateArtist(ctx, &domain.Artist{Name: name})
		require.NoError(t, err)
	}

	all, err := service.GetAllArtists(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Name)

	_, err = service.GetArtistByID(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, service.DeleteArtist(ctx, 1))
	assert.ErrorIs(t, service.DeleteArtist(ctx, 1), domain.ErrArtistNotFound)

	_, err = service.GetArtistByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}
