// Copyright (c) 2026 ArtFolio. All rights reserved.

package shop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/internal/shop"
)

// fakeProductRepository is an in-memory ProductRepository keyed by owner
// username for listing.
type fakeProductRepository struct {
	products  map[int64]*shop.Product
	usernames map[int64]string
	nextID    int64
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{
		products:  map[int64]*shop.Product{},
		usernames: map[int64]string{7: "ana", 9: "ben"},
		nextID:    1,
	}
}

func (repository *fakeProductRepository) Create(_ context.Context, product *shop.Product) error {
	product.ID = repository.nextID
	repository.nextID++
	copied := *product
	repository.products[product.ID] = &copied
	return nil
}

func (repository *fakeProductRepository) ListByUsername(_ context.Context, username string) ([]shop.Product, error) {
	result := []shop.Product{}
	for _, product := range repository.products {
		if repository.usernames[product.UserID] == username {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (repository *fakeProductRepository) DeleteOwned(_ context.Context, id, userID int64) (int64, error) {
	product, ok := repository.products[id]
	if !ok || product.UserID != userID {
		return 0, nil
	}
	delete(repository.products, id)
	return 1, nil
}

/*
TestCreateAndList verifies created products show up under their owner's
username only.
*/
func TestCreateAndList(t *testing.T) {
	service := shop.NewService(newFakeProductRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, shop.CreateInput{
		Name:        "Print A2",
		Price:       35.50,
		Description: "Limited edition print",
		UserID:      7,
	})
	require.NoError(t, err)

	anas, err := service.ListByUsername(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, anas, 1)
	assert.Equal(t, "Print A2", anas[0].Name)
	assert.InDelta(t, 35.50, anas[0].Price, 0.001)

	bens, err := service.ListByUsername(ctx, "ben")
	require.NoError(t, err)
	assert.Empty(t, bens)
}

/*
TestDelete_ScopedToOwner verifies deleting a foreign or missing product is
NotFound, while the owner's delete succeeds.
*/
func TestDelete_ScopedToOwner(t *testing.T) {
	service := shop.NewService(newFakeProductRepository())
	ctx := context.Background()

	product, err := service.Create(ctx, shop.CreateInput{
		Name:        "Print A2",
		Price:       35.50,
		Description: "Limited edition print",
		UserID:      7,
	})
	require.NoError(t, err)

	foreignErr := service.Delete(ctx, product.ID, 9)
	missingErr := service.Delete(ctx, 9999, 9)
	require.Error(t, foreignErr)
	require.Error(t, missingErr)
	assert.True(t, apperr.IsNotFound(foreignErr))
	assert.True(t, apperr.IsNotFound(missingErr))

	// Still listed, then gone once the owner deletes it.
	anas, err := service.ListByUsername(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, anas, 1)

	require.NoError(t, service.Delete(ctx, product.ID, 7))

	anas, err = service.ListByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Empty(t, anas)
}
