// Copyright (c) 2026 ArtFolio. All rights reserved.

package news_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/internal/news"
	"github.com/artfolio/artfolio/internal/platform/apperr"
)

// fakeNewsRepository is an in-memory NewsRepository keyed by owner username
// for listing.
type fakeNewsRepository struct {
	posts     map[int64]*news.News
	usernames map[int64]string
	nextID    int64
}

func newFakeNewsRepository() *fakeNewsRepository {
	return &fakeNewsRepository{
		posts:     map[int64]*news.News{},
		usernames: map[int64]string{7: "ana", 9: "ben"},
		nextID:    1,
	}
}

func (repository *fakeNewsRepository) Create(_ context.Context, post *news.News) error {
	post.ID = repository.nextID
	repository.nextID++
	copied := *post
	repository.posts[post.ID] = &copied
	return nil
}

func (repository *fakeNewsRepository) ListByUsername(_ context.Context, username string) ([]news.News, error) {
	result := []news.News{}
	for _, post := range repository.posts {
		if repository.usernames[post.UserID] == username {
			result = append(result, *post)
		}
	}
	return result, nil
}

func (repository *fakeNewsRepository) DeleteOwned(_ context.Context, id, userID int64) (int64, error) {
	post, ok := repository.posts[id]
	if !ok || post.UserID != userID {
		return 0, nil
	}
	delete(repository.posts, id)
	return 1, nil
}

/*
TestPublishAndList verifies posts are listed under their author only.
*/
func TestPublishAndList(t *testing.T) {
	service := news.NewService(newFakeNewsRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, news.CreateInput{
		Title:   "New exhibition",
		Excerpt: "Opening next month",
		Content: "Full announcement text.",
		UserID:  7,
	})
	require.NoError(t, err)

	anas, err := service.ListByUsername(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, anas, 1)
	assert.Equal(t, "New exhibition", anas[0].Title)

	bens, err := service.ListByUsername(ctx, "ben")
	require.NoError(t, err)
	assert.Empty(t, bens)
}

/*
TestDelete_ScopedToOwner verifies foreign and missing posts both surface
as NotFound while the author's delete succeeds.
*/
func TestDelete_ScopedToOwner(t *testing.T) {
	service := news.NewService(newFakeNewsRepository())
	ctx := context.Background()

	post, err := service.Create(ctx, news.CreateInput{
		Title:   "New exhibition",
		Excerpt: "Opening next month",
		Content: "Full announcement text.",
		UserID:  7,
	})
	require.NoError(t, err)

	foreignErr := service.Delete(ctx, post.ID, 9)
	missingErr := service.Delete(ctx, 9999, 9)
	assert.True(t, apperr.IsNotFound(foreignErr))
	assert.True(t, apperr.IsNotFound(missingErr))

	require.NoError(t, service.Delete(ctx, post.ID, 7))

	anas, err := service.ListByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Empty(t, anas)
}
