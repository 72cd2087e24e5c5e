// Copyright (c) 2026 ArtFolio. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/ctxutil"
	"github.com/artfolio/artfolio/internal/platform/sec"
	"github.com/artfolio/artfolio/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails, otherwise nil.
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named URL parameter and parses it as a numeric identifier.

Returns a VALIDATION_ERROR if the parameter is absent or not a positive integer.
*/
func IntID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.RequiredError(name, "Must be a numeric identifier")
	}
	return id, nil
}

/*
Principal extracts the authenticated token claims from the request context.

Returns nil if the request is not authenticated.
*/
func Principal(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetPrincipal(request.Context())
}

/*
RequiredPrincipal ensures the request is authenticated and returns the claims.

Returns apperr.Unauthorized if the request is not authenticated.
*/
func RequiredPrincipal(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetPrincipal(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

/*
RequiredUserID returns the numeric id of the currently authenticated user.

Returns apperr.Unauthorized if not authenticated.
*/
func RequiredUserID(request *http.Request) (int64, error) {
	claims, err := RequiredPrincipal(request)
	if err != nil {
		return 0, err
	}
	return claims.UserID(), nil
}

/*
ImageFile extracts the uploaded "image" file header from a multipart form.

Parses the form with a memory budget matched to the upload size limit.
Returns a VALIDATION_ERROR if the form is malformed or the field is missing.
*/
func ImageFile(request *http.Request) (*multipart.FileHeader, error) {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return nil, validate.RequiredError("image", "Must be a multipart form with an image file")
	}

	if request.MultipartForm == nil || len(request.MultipartForm.File["image"]) == 0 {
		return nil, validate.RequiredError("image", "An image file is required")
	}

	return request.MultipartForm.File["image"][0], nil
}

/*
OptionalImageFile extracts the "image" file header if one was uploaded.

Returns (nil, nil) when the form carries no image, so callers can treat
the upload as optional.
*/
func OptionalImageFile(request *http.Request) (*multipart.FileHeader, error) {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return nil, validate.RequiredError("image", "Must be a multipart form")
	}

	if request.MultipartForm == nil || len(request.MultipartForm.File["image"]) == 0 {
		return nil, nil
	}

	return request.MultipartForm.File["image"][0], nil
}

/*
FormValue retrieves a named field from an already-parsed multipart form.
*/
func FormValue(request *http.Request, name string) string {
	return request.FormValue(name)
}

