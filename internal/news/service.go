// Copyright (c) 2026 ArtFolio. All rights reserved.

// News use cases: publishing and withdrawing posts.
package news

import (
	"context"

	"github.com/artfolio/artfolio/internal/platform/apperr"
)

// Service implements news post use cases.
type Service struct {
	newsRepository NewsRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(newsRepository NewsRepository) *Service {
	return &Service{newsRepository: newsRepository}
}

// CreateInput holds the data required to publish a post.
type CreateInput struct {
	Title    string
	Excerpt  string
	Content  string
	ImageURL *string
	UserID   int64
}

// Create persists a new post owned by the calling user.
func (service *Service) Create(ctx context.Context, input CreateInput) (*News, error) {
	post := &News{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		ImageURL: input.ImageURL,
		UserID:   input.UserID,
	}

	if err := service.newsRepository.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ListByUsername returns an artist's posts, newest first.
func (service *Service) ListByUsername(ctx context.Context, username string) ([]News, error) {
	return service.newsRepository.ListByUsername(ctx, username)
}

// Delete removes an owned post.
//
// # Ownership Policy
//
// The delete is scoped to (id, owner) in a single statement: zero affected
// rows means the post is missing or foreign, and both surface as NotFound.
func (service *Service) Delete(ctx context.Context, id, userID int64) error {
	affected, err := service.newsRepository.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("News post")
	}

	return nil
}
