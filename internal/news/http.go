// Copyright (c) 2026 ArtFolio. All rights reserved.

// HTTP delivery layer for the news use cases.
package news

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/middleware"
	requestutil "github.com/artfolio/artfolio/internal/platform/request"
	"github.com/artfolio/artfolio/internal/platform/respond"
	"github.com/artfolio/artfolio/internal/platform/upload"
	"github.com/artfolio/artfolio/internal/platform/validate"
	"github.com/artfolio/artfolio/pkg/pointer"
)

// Handler implements news-related HTTP endpoints.
type Handler struct {
	newsService *Service
	uploads     *upload.Store
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, uploads *upload.Store) *Handler {
	return &Handler{newsService: service, uploads: uploads}
}

// Routes returns a [chi.Router] configured with the /news endpoints.
//
// # Endpoints
//   - POST   /            : Publishes a post (multipart, optional image). (auth)
//   - GET    /{username}  : Lists an artist's posts. (public)
//   - DELETE /{id}        : Deletes an owned post. (auth)
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

// create handles POST /api/news requests.
//
// Expects a multipart form with title, excerpt, and content fields, plus
// an optional "image" file saved to the news upload directory.
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

	title := requestutil.FormValue(request, "title")
	excerpt := requestutil.FormValue(request, "excerpt")
	content := requestutil.FormValue(request, "content")

	validationError := validate.New().
		Required("title", title).
		Required("excerpt", excerpt).
		Required("content", content).
		Err()
	if validationError != nil {
		respond.Error(writer, request, validationError)
		return
	}

	var imagePath *string
	if header != nil {
		saved, err := handler.uploads.SaveImage(header, constants.UploadKindNews)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		imagePath = pointer.To(saved)
	}

	post, err := handler.newsService.Create(request.Context(), CreateInput{
		Title:    title,
		Excerpt:  excerpt,
		Content:  content,
		ImageURL: imagePath,
		UserID:   userID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, post)
}

// listByUsername handles GET /api/news/{username} requests.
func (handler *Handler) listByUsername(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	posts, err := handler.newsService.ListByUsername(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, posts)
}

// remove handles DELETE /api/news/{id} requests.
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

	if err := handler.newsService.Delete(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "News post deleted successfully",
	})
}
