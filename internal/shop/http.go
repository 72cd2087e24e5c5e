// Copyright (c) 2026 ArtFolio. All rights reserved.

// HTTP delivery layer for the storefront use cases.
package shop

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/middleware"
	requestutil "github.com/artfolio/artfolio/internal/platform/request"
	"github.com/artfolio/artfolio/internal/platform/respond"
	"github.com/artfolio/artfolio/internal/platform/upload"
	"github.com/artfolio/artfolio/internal/platform/validate"
	"github.com/artfolio/artfolio/pkg/pointer"
)

// Handler implements product-related HTTP endpoints.
type Handler struct {
	shopService *Service
	uploads     *upload.Store
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, uploads *upload.Store) *Handler {
	return &Handler{shopService: service, uploads: uploads}
}

// Routes returns a [chi.Router] configured with the /shop/products endpoints.
//
// # Endpoints
//   - POST   /            : Creates a product (multipart, optional image). (auth)
//   - GET    /{username}  : Lists an artist's products. (public)
//   - DELETE /{id}        : Deletes an owned product. (auth)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{username}", handler.listByUsername)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.create)
		protected.Delete("/{id}", handler.remove)
	})

	return router
}

// create handles POST /api/shop/products requests.
//
// Expects a multipart form with name, price, and description fields, plus
// an optional "image" file saved to the products upload directory.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Parses the multipart form as a side effect.
	header, err := requestutil.OptionalImageFile(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	name := requestutil.FormValue(request, "name")
	rawPrice := requestutil.FormValue(request, "price")
	description := requestutil.FormValue(request, "description")

	price, parseErr := strconv.ParseFloat(rawPrice, 64)

	validationError := validate.New().
		Required("name", name).
		Required("price", rawPrice).
		Custom("price", rawPrice != "" && parseErr != nil, "Must be a number").
		Custom("price", parseErr == nil && price <= 0, "Must be greater than zero").
		Required("description", description).
		Err()
	if validationError != nil {
		respond.Error(writer, request, validationError)
		return
	}

	var imagePath *string
	if header != nil {
		saved, err := handler.uploads.SaveImage(header, constants.UploadKindProducts)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		imagePath = pointer.To(saved)
	}

	product, err := handler.shopService.Create(request.Context(), CreateInput{
		Name:        name,
		Price:       price,
		Description: description,
		Image:       imagePath,
		UserID:      userID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, product)
}

// listByUsername handles GET /api/shop/products/{username} requests.
func (handler *Handler) listByUsername(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	products, err := handler.shopService.ListByUsername(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

// remove handles DELETE /api/shop/products/{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.shopService.Delete(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Product deleted successfully",
	})
}
