// Copyright (c) 2026 ArtFolio. All rights reserved.

package gallery_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/internal/gallery"
	"github.com/artfolio/artfolio/internal/platform/apperr"
)

// fakeArtworkRepository is an in-memory ArtworkRepository for service tests.
type fakeArtworkRepository struct {
	artworks map[int64]*gallery.Artwork
	nextID   int64
}

func newFakeArtworkRepository() *fakeArtworkRepository {
	return &fakeArtworkRepository{artworks: map[int64]*gallery.Artwork{}, nextID: 1}
}

func (repository *fakeArtworkRepository) Create(_ context.Context, artwork *gallery.Artwork) error {
	artwork.ID = repository.nextID
	repository.nextID++
	copied := *artwork
	repository.artworks[artwork.ID] = &copied
	return nil
}

func (repository *fakeArtworkRepository) FindByID(_ context.Context, id int64) (*gallery.Artwork, error) {
	if artwork, ok := repository.artworks[id]; ok {
		copied := *artwork
		return &copied, nil
	}
	return nil, apperr.NotFound("Artwork")
}

func (repository *fakeArtworkRepository) collect(match func(*gallery.Artwork) bool) []gallery.Artwork {
	result := []gallery.Artwork{}
	for _, artwork := range repository.artworks {
		if match(artwork) {
			result = append(result, *artwork)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

func (repository *fakeArtworkRepository) ListAll(_ context.Context) ([]gallery.Artwork, error) {
	return repository.collect(func(*gallery.Artwork) bool { return true }), nil
}

func (repository *fakeArtworkRepository) ListVisibleFiltered(_ context.Context, artist, category string) ([]gallery.Artwork, error) {
	return repository.collect(func(artwork *gallery.Artwork) bool {
		return artwork.IsVisible &&
			strings.EqualFold(artwork.Artist, artist) &&
			artwork.Category != nil && strings.EqualFold(*artwork.Category, category)
	}), nil
}

func (repository *fakeArtworkRepository) ListOwnedByCategory(_ context.Context, userID int64, category string) ([]gallery.Artwork, error) {
	return repository.collect(func(artwork *gallery.Artwork) bool {
		return artwork.UserID == userID &&
			artwork.Category != nil && strings.EqualFold(*artwork.Category, category)
	}), nil
}

func (repository *fakeArtworkRepository) Update(_ context.Context, artwork *gallery.Artwork) error {
	if _, ok := repository.artworks[artwork.ID]; !ok {
		return apperr.NotFound("Artwork")
	}
	copied := *artwork
	repository.artworks[artwork.ID] = &copied
	return nil
}

func (repository *fakeArtworkRepository) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := repository.artworks[id]; !ok {
		return 0, nil
	}
	delete(repository.artworks, id)
	return 1, nil
}

func strPtr(s string) *string { return &s }

// seedArtwork creates an artwork for the given owner.
func seedArtwork(t *testing.T, service *gallery.Service, userID int64, username, categoryName string) *gallery.Artwork {
	t.Helper()

	artwork, err := service.Create(context.Background(), gallery.CreateInput{
		ImageURL: "/uploads/artworks/test.png",
		Title:    "Untitled",
		Category: strPtr(categoryName),
		UserID:   userID,
		Username: username,
	})
	require.NoError(t, err)
	return artwork
}

/*
TestCreate_DefaultsToVisible verifies new artworks are visible and snapshot
the owner's username as artist.
*/
func TestCreate_DefaultsToVisible(t *testing.T) {
	service := gallery.NewService(newFakeArtworkRepository())

	artwork := seedArtwork(t, service, 7, "ana", "Graphic Design")

	assert.True(t, artwork.IsVisible)
	assert.Equal(t, "ana", artwork.Artist)
	assert.Equal(t, int64(7), artwork.UserID)
}

/*
TestListFiltered_NormalizesCategoryAndHidesInvisible verifies the public
filter resolves kebab-case categories and skips hidden artworks.
*/
func TestListFiltered_NormalizesCategoryAndHidesInvisible(t *testing.T) {
	service := gallery.NewService(newFakeArtworkRepository())
	ctx := context.Background()

	visible := seedArtwork(t, service, 7, "ana", "Graphic Design")
	hidden := seedArtwork(t, service, 7, "ana", "Graphic Design")
	_, err := service.SetVisibility(ctx, hidden.ID, 7, false)
	require.NoError(t, err)
	seedArtwork(t, service, 7, "ana", "Photography")

	artworks, err := service.ListFiltered(ctx, "ANA", "graphic-design")
	require.NoError(t, err)
	require.Len(t, artworks, 1)
	assert.Equal(t, visible.ID, artworks[0].ID)
}

/*
TestListOwn_IncludesHidden verifies owners see their hidden artworks in
category listings.
*/
func TestListOwn_IncludesHidden(t *testing.T) {
	service := gallery.NewService(newFakeArtworkRepository())
	ctx := context.Background()

	first := seedArtwork(t, service, 7, "ana", "Graphic Design")
	_, err := service.SetVisibility(ctx, first.ID, 7, false)
	require.NoError(t, err)
	seedArtwork(t, service, 9, "ben", "Graphic Design")

	artworks, err := service.ListOwn(ctx, 7, "graphic-design")
	require.NoError(t, err)
	require.Len(t, artworks, 1)
	assert.Equal(t, first.ID, artworks[0].ID)
	assert.False(t, artworks[0].IsVisible)
}

/*
TestOwnershipGate_UniformNotFound verifies mutations on a foreign artwork
and on a missing artwork are indistinguishable.
*/
func TestOwnershipGate_UniformNotFound(t *testing.T) {
	service := gallery.NewService(newFakeArtworkRepository())
	ctx := context.Background()

	anas := seedArtwork(t, service, 7, "ana", "Graphic Design")

	// user 9 probing ana's artwork vs a nonexistent one
	_, foreignErr := service.SetVisibility(ctx, anas.ID, 9, false)
	_, missingErr := service.SetVisibility(ctx, 9999, 9, false)
	deleteForeignErr := service.Delete(ctx, anas.ID, 9)
	_, updateForeignErr := service.Update(ctx, anas.ID, 9, gallery.UpdateInput{Title: strPtr("mine now")})

	for _, err := range []error{foreignErr, missingErr, deleteForeignErr, updateForeignErr} {
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	}

	// The artwork itself is untouched.
	unchanged, err := service.GetByID(ctx, anas.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.IsVisible)
	assert.Equal(t, "Untitled", unchanged.Title)
}

/*
TestDelete_OwnerSucceeds verifies owners can delete and the artwork is gone.
*/
func TestDelete_OwnerSucceeds(t *testing.T) {
	service := gallery.NewService(newFakeArtworkRepository())
	ctx := context.Background()

	artwork := seedArtwork(t, service, 7, "ana", "Graphic Design")

	require.NoError(t, service.Delete(ctx, artwork.ID, 7))

	_, err := service.GetByID(ctx, artwork.ID)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestUpdate_PartialFieldsOnly verifies absent fields survive a partial update.
*/
func TestUpdate_PartialFieldsOnly(t *testing.T) {
	service := gallery.NewService(newFakeArtworkRepository())
	ctx := context.Background()

	artwork := seedArtwork(t, service, 7, "ana", "Graphic Design")

	updated, err := service.Update(ctx, artwork.ID, 7, gallery.UpdateInput{
		Title:      strPtr("Poster Series"),
		ClientLink: strPtr("https://client.example"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Poster Series", updated.Title)
	require.NotNil(t, updated.ClientLink)
	assert.Equal(t, "https://client.example", *updated.ClientLink)
	assert.Equal(t, artwork.ImageURL, updated.ImageURL, "untouched field survives")
	require.NotNil(t, updated.Category)
	assert.Equal(t, "Graphic Design", *updated.Category)
}
