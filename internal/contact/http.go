// Copyright (c) 2026 ArtFolio. All rights reserved.

// HTTP delivery layer for the contact form.
package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/middleware"
	requestutil "github.com/artfolio/artfolio/internal/platform/request"
	"github.com/artfolio/artfolio/internal/platform/respond"
	"github.com/artfolio/artfolio/internal/platform/validate"
)

// Handler implements the contact form HTTP endpoint.
type Handler struct {
	contactService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{contactService: service}
}

// Routes returns a [chi.Router] configured with the /contact endpoint.
//
// # Endpoints
//   - POST / : Submits a contact form message. (public, throttled)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.submit)
	return router
}

// submitRequest represents the JSON payload of a contact form submission.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submit handles POST /api/contact requests.
//
// # Returns
//   - Writes HTTP 201 Created with the stored message.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 429 Too Many Requests when the client's hourly
//     submission budget is exhausted.
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validationError := validate.New().
		Required("name", input.Name).
		MinLen("name", input.Name, 2).
		Required("email", input.Email).
		Email("email", input.Email).
		Required("message", input.Message).
		MinLen("message", input.Message, 10).
		Err()
	if validationError != nil {
		respond.Error(writer, request, validationError)
		return
	}

	message, err := handler.contactService.Submit(request.Context(), SubmitInput{
		Name:     input.Name,
		Email:    input.Email,
		Message:  input.Message,
		ClientIP: middleware.RealIP(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		constants.FieldMessage: "Message sent successfully",
		"id":                   message.ID,
	})
}
