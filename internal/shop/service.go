// Copyright (c) 2026 ArtFolio. All rights reserved.

// Storefront use cases: offering and withdrawing products.
package shop

import (
	"context"

	"github.com/artfolio/artfolio/internal/platform/apperr"
)

// Service implements product use cases.
type Service struct {
	productRepository ProductRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(productRepository ProductRepository) *Service {
	return &Service{productRepository: productRepository}
}

// CreateInput holds the data required to offer a new product.
type CreateInput struct {
	Name        string
	Price       float64
	Description string
	Image       *string
	UserID      int64
}

// Create persists a new product owned by the calling user.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Product, error) {
	product := &Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		UserID:      input.UserID,
	}

	if err := service.productRepository.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// ListByUsername returns an artist's products, newest first.
func (service *Service) ListByUsername(ctx context.Context, username string) ([]Product, error) {
	return service.productRepository.ListByUsername(ctx, username)
}

// Delete removes an owned product.
//
// # Ownership Policy
//
// The delete is scoped to (id, owner) in a single statement: zero affected
// rows means the product is missing or foreign, and both surface as
// NotFound so non-owners can never probe which IDs exist.
func (service *Service) Delete(ctx context.Context, id, userID int64) error {
	affected, err := service.productRepository.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Product")
	}

	return nil
}
