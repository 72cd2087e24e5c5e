// Copyright (c) 2026 ArtFolio. All rights reserved.

// HTTP delivery layer for the gallery use cases.
package gallery

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/middleware"
	requestutil "github.com/artfolio/artfolio/internal/platform/request"
	"github.com/artfolio/artfolio/internal/platform/respond"
	"github.com/artfolio/artfolio/internal/platform/upload"
	"github.com/artfolio/artfolio/internal/platform/validate"
)

// Handler implements artwork-related HTTP endpoints.
type Handler struct {
	galleryService *Service
	uploads        *upload.Store
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, uploads *upload.Store) *Handler {
	return &Handler{galleryService: service, uploads: uploads}
}

// Routes returns a [chi.Router] configured with the /artworks endpoints.
//
// # Endpoints
//   - GET    /                 : Lists every artwork. (public)
//   - GET    /filter           : Visible artworks by artist + category. (public)
//   - GET    /{id}             : Single artwork. (public)
//   - POST   /                 : Creates an artwork. (auth)
//   - POST   /upload           : Uploads an artwork image. (auth)
//   - GET    /user/{category}  : Own artworks in a category. (auth)
//   - PUT    /{id}             : Partial update. (auth, owner)
//   - PATCH  /{id}/visibility  : Shows/hides an artwork. (auth, owner)
//   - DELETE /{id}             : Deletes an artwork. (auth, owner)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/filter", handler.listFiltered)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.create)
		protected.Post("/upload", handler.uploadImage)
		protected.Get("/user/{category}", handler.listOwn)
		protected.Put("/{id}", handler.update)
		protected.Patch("/{id}/visibility", handler.setVisibility)
		protected.Delete("/{id}", handler.remove)
	})

	// Literal segments (/filter, /upload, /user) take priority over {id}.
	router.Get("/{id}", handler.get)

	return router
}

// createRequest represents the JSON payload for publishing an artwork.
type createRequest struct {
	ImageURL    string     `json:"imageUrl"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DatePosted  *time.Time `json:"datePosted"`
	Category    *string    `json:"category"`
	ClientLink  *string    `json:"clientLink"`
}

// create handles POST /api/artworks requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validationError := validate.New().
		Required("title", input.Title).
		Required("imageUrl", input.ImageURL).
		Err()
	if validationError != nil {
		respond.Error(writer, request, validationError)
		return
	}

	artwork, err := handler.galleryService.Create(request.Context(), CreateInput{
		ImageURL:    input.ImageURL,
		Title:       input.Title,
		Description: input.Description,
		DatePosted:  input.DatePosted,
		Category:    input.Category,
		ClientLink:  input.ClientLink,
		UserID:      claims.UserID(),
		Username:    claims.Username,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, artwork)
}

// uploadImage handles POST /api/artworks/upload requests.
//
// Saves the multipart "image" field and returns its public path so the
// client can reference it in a subsequent create or update call.
func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	header, err := requestutil.ImageFile(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	imagePath, err := handler.uploads.SaveImage(header, constants.UploadKindArtworks)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{"imageUrl": imagePath})
}

// list handles GET /api/artworks requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	artworks, err := handler.galleryService.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artworks)
}

// get handles GET /api/artworks/{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.galleryService.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artwork)
}

// listFiltered handles GET /api/artworks/filter?username=&category= requests.
func (handler *Handler) listFiltered(writer http.ResponseWriter, request *http.Request) {
	username := request.URL.Query().Get("username")
	categorySlug := request.URL.Query().Get("category")

	validationError := validate.New().
		Required("username", username).
		Required("category", categorySlug).
		Err()
	if validationError != nil {
		respond.Error(writer, request, validationError)
		return
	}

	artworks, err := handler.galleryService.ListFiltered(request.Context(), username, categorySlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artworks)
}

// listOwn handles GET /api/artworks/user/{category} requests.
func (handler *Handler) listOwn(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworks, err := handler.galleryService.ListOwn(request.Context(), userID, requestutil.Param(request, "category"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artworks)
}

// updateRequest represents the JSON payload for a partial artwork update.
// Absent fields are left untouched.
type updateRequest struct {
	ImageURL    *string    `json:"imageUrl"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DatePosted  *time.Time `json:"datePosted"`
	Category    *string    `json:"category"`
	ClientLink  *string    `json:"clientLink"`
}

// update handles PUT /api/artworks/{id} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
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

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.galleryService.Update(request.Context(), id, userID, UpdateInput{
		ImageURL:    input.ImageURL,
		Title:       input.Title,
		Description: input.Description,
		DatePosted:  input.DatePosted,
		Category:    input.Category,
		ClientLink:  input.ClientLink,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artwork)
}

// visibilityRequest carries the desired visibility state.
type visibilityRequest struct {
	IsVisible bool `json:"isVisible"`
}

// setVisibility handles PATCH /api/artworks/{id}/visibility requests.
func (handler *Handler) setVisibility(writer http.ResponseWriter, request *http.Request) {
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

	var input visibilityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.galleryService.SetVisibility(request.Context(), id, userID, input.IsVisible)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artwork)
}

// remove handles DELETE /api/artworks/{id} requests.
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

	if err := handler.galleryService.Delete(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Artwork deleted successfully",
	})
}
