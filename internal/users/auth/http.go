// Copyright (c) 2026 ArtFolio. All rights reserved.

// HTTP delivery layer for the account use cases.
//
// # Architecture
//
// Handlers act as the "gatekeepers" to the system. They are responsible for:
//   - JSON Request parsing and strict input validation.
//   - Mapping HTTP contexts to service layer method calls.
//   - Standardizing JSON response formats via the [respond] package.
//
// They contain NO business logic or database queries.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/middleware"
	requestutil "github.com/artfolio/artfolio/internal/platform/request"
	"github.com/artfolio/artfolio/internal/platform/respond"
	"github.com/artfolio/artfolio/internal/platform/upload"
	"github.com/artfolio/artfolio/internal/platform/validate"
)

// Handler implements account-related HTTP endpoints.
//
// # Scope
//
// This handler manages everything related to the user lifecycle entry points
// (Registration, Login, Refresh, Profile Updates).
type Handler struct {
	authService *Service
	uploads     *upload.Store
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, uploads *upload.Store) *Handler {
	return &Handler{authService: service, uploads: uploads}
}

// Routes returns a [chi.Router] configured with the /auth endpoints.
//
// # Endpoints
//   - POST  /register       : Creates a new account.
//   - POST  /login          : Authenticates and returns a JWT.
//   - POST  /refresh-token  : Exchanges a valid token for a fresh one.
//   - GET   /current        : Returns the decoded token principal. (auth)
//   - POST  /update-bio     : Updates the bio, re-signs the token. (auth)
//   - POST  /update-website : Updates the website, re-signs the token. (auth)
//   - POST  /update-contact : Updates contact info, re-signs the token. (auth)
//   - PATCH /profile-image  : Uploads a new profile image. (auth)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh-token", handler.refreshToken)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/current", handler.current)
		protected.Post("/update-bio", handler.updateBio)
		protected.Post("/update-website", handler.updateWebsite)
		protected.Post("/update-contact", handler.updateContact)
		protected.Patch("/profile-image", handler.updateProfileImage)
	})

	return router
}

// ProfileRoutes returns a [chi.Router] for the public /users endpoints.
func (handler *Handler) ProfileRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{username}", handler.publicProfile)
	return router
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// register handles POST /api/auth/register requests.
//
// # Returns
//   - Writes HTTP 201 Created with a confirmation message. No token is
//     issued; the client must log in explicitly.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the email or username is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validationError := validate.New().
		Required("email", input.Email).
		Email("email", input.Email).
		Required("username", input.Username).
		MinLen("username", input.Username, 3).
		Required("password", input.Password).
		MinLen("password", input.Password, 8).
		Err()
	if validationError != nil {
		respond.Error(writer, request, validationError)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	err := handler.authService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, map[string]any{
		constants.FieldMessage: "User registered successfully",
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK on success with the token and user profile.
//   - Writes HTTP 401 Unauthorized for bad credentials, without revealing
//     whether the email exists.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"token": session.Token,
		"user":  session.User,
	})
}

// refreshRequest carries the token to exchange.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshToken handles POST /api/auth/refresh-token requests.
//
// Any still-valid issued token is accepted; the response carries a new
// token signed from the account's current data.
func (handler *Handler) refreshToken(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.RefreshToken == "" {
		respond.Error(writer, request, validate.RequiredError("refreshToken", "is required"))
		return
	}

	session, err := handler.authService.Refresh(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"token": session.Token,
		"user":  session.User,
	})
}

// current handles GET /api/auth/current requests.
//
// The response is built entirely from the decoded token claims: no database
// round-trip, so it reflects the snapshot at token issuance time.
func (handler *Handler) current(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"id":             claims.UserID(),
		"email":          claims.Email,
		"username":       claims.Username,
		"bio":            claims.Bio,
		"profileImage":   claims.ProfileImage,
		"website":        claims.Website,
		"phone":          claims.Phone,
		"contactMessage": claims.ContactMessage,
	})
}

// sessionResponse writes the standard profile-mutation response: the updated
// user plus the re-signed token the client must start using.
func sessionResponse(writer http.ResponseWriter, session *AuthSession) {
	respond.OK(writer, map[string]any{
		"success": true,
		"user":    session.User,
		"token":   session.Token,
	})
}

// updateBioRequest carries the new bio text.
type updateBioRequest struct {
	Bio string `json:"bio"`
}

// updateBio handles POST /api/auth/update-bio requests.
func (handler *Handler) updateBio(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateBioRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.UpdateBio(request.Context(), userID, input.Bio)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionResponse(writer, session)
}

// updateWebsiteRequest carries the new website link.
type updateWebsiteRequest struct {
	Website string `json:"website"`
}

// updateWebsite handles POST /api/auth/update-website requests.
func (handler *Handler) updateWebsite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateWebsiteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.UpdateWebsite(request.Context(), userID, input.Website)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionResponse(writer, session)
}

// updateContactRequest carries the editable contact fields.
type updateContactRequest struct {
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	ContactMessage *string `json:"contactMessage"`
}

// updateContact handles POST /api/auth/update-contact requests.
//
// # Returns
//   - Writes HTTP 409 Conflict if the new email belongs to another account.
func (handler *Handler) updateContact(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateContactRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validationError := validate.New().
		Required("email", input.Email).
		Email("email", input.Email).
		Err()
	if validationError != nil {
		respond.Error(writer, request, validationError)
		return
	}

	session, err := handler.authService.UpdateContactInfo(request.Context(), userID, ContactInfoInput{
		Email:          input.Email,
		Phone:          input.Phone,
		ContactMessage: input.ContactMessage,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionResponse(writer, session)
}

// updateProfileImage handles PATCH /api/auth/profile-image requests.
//
// Expects a multipart form with an "image" file field. The file is saved
// to the profiles upload directory and its public path is persisted.
func (handler *Handler) updateProfileImage(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	header, err := requestutil.ImageFile(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	imagePath, err := handler.uploads.SaveImage(header, constants.UploadKindProfiles)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.UpdateProfileImage(request.Context(), userID, imagePath)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionResponse(writer, session)
}

// publicProfile handles GET /api/users/{username} requests.
//
// # Returns
//   - Writes HTTP 200 OK with the public profile (no email, no hash).
//   - Writes HTTP 404 Not Found if no such account exists.
func (handler *Handler) publicProfile(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	user, err := handler.authService.GetByUsername(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user.Public())
}
