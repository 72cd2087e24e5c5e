// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package upload persists user-submitted images to local disk.
//
// # Architecture
//
// This package belongs to the Infrastructure layer. It owns the upload
// directory layout (one subdirectory per kind: profiles, artworks,
// products, news), filename generation, and all validation of incoming
// files. Handlers pass in the multipart header; services only ever see
// the resulting public path.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/internal/platform/constants"
)

// allowedExtensions is the whitelist of accepted image file extensions.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// Store saves images beneath a single base directory and hands back the
// public URL path they will be served from.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir and pre-creates the
// per-kind subdirectories.
func NewStore(baseDir string) (*Store, error) {
	kinds := []string{
		constants.UploadKindProfiles,
		constants.UploadKindArtworks,
		constants.UploadKindProducts,
		constants.UploadKindNews,
	}
	for _, kind := range kinds {
		if err := os.MkdirAll(filepath.Join(baseDir, kind), 0o755); err != nil {
			return nil, fmt.Errorf("upload_dir_create_failed: %w", err)
		}
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the filesystem root the store writes under. Used to
// mount the static file server over the same tree.
func (store *Store) BaseDir() string {
	return store.baseDir
}

// SaveImage validates and persists a single uploaded image.
//
// # Flow
//
// 1. Rejects files over the size limit.
// 2. Rejects extensions outside the image whitelist.
// 3. Generates a random filename (UUID + original extension) so uploads
// can never collide or overwrite each other.
// 4. Streams the file to disk, capped at the size limit.
//
// # Returns
//
// The public URL path of the stored file, e.g. "/uploads/profiles/<uuid>.png".
func (store *Store) SaveImage(header *multipart.FileHeader, kind string) (string, error) {
	if header.Size > constants.MaxUploadBytes {
		return "", apperr.ValidationError(fmt.Sprintf("File exceeds the maximum size of %d MB", constants.MaxUploadBytes>>20))
	}

	extension := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[extension]; !ok {
		return "", apperr.ValidationError("Only image files are allowed (jpg, jpeg, png, gif, webp)")
	}

	source, err := header.Open()
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("upload_open_failed: %w", err))
	}
	defer source.Close()

	filename := uuid.NewString() + extension
	destinationPath := filepath.Join(store.baseDir, kind, filename)

	destination, err := os.Create(destinationPath)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("upload_create_failed: %w", err))
	}
	defer destination.Close()

	// Cap the copy in case the declared header size lied.
	written, err := io.Copy(destination, io.LimitReader(source, constants.MaxUploadBytes+1))
	if err != nil {
		os.Remove(destinationPath)
		return "", apperr.Internal(fmt.Errorf("upload_write_failed: %w", err))
	}
	if written > constants.MaxUploadBytes {
		os.Remove(destinationPath)
		return "", apperr.ValidationError(fmt.Sprintf("File exceeds the maximum size of %d MB", constants.MaxUploadBytes>>20))
	}

	return "/uploads/" + kind + "/" + filename, nil
}
