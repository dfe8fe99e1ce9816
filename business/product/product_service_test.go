package product

import (
	"context"
	"errors"
	"goodsStore/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	rows []domain.ProductListing
	err  error
}

func (f *fakeProductRepo) FindAll(_ context.Context, categoryID *uint64) ([]domain.ProductListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.ProductListing{}
	for _, p := range f.rows {
		if categoryID == nil || (p.CategoryID != nil && *p.CategoryID == *categoryID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestGetProducts(t *testing.T) {
	crafts, prints := uint64(1), uint64(2)
	repo := &fakeProductRepo{rows: []domain.ProductListing{
		{Product: domain.Product{ID: 1, Name: "Moon jar", CategoryID: &crafts}},
		{Product: domain.Product{ID: 2, Name: "Woodblock", CategoryID: &prints}},
		{Product: domain.Product{ID: 3, Name: "Loose"}},
	}}
	service := NewProductService(repo)
	ctx := context.Background()

	all, err := service.GetProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := service.GetProducts(ctx, &crafts)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Moon jar", filtered[0].Name)

	repo.err = errors.New("connection reset")
	_, err = service.GetProducts(ctx, nil)
	assert.Error(t, err)
}
