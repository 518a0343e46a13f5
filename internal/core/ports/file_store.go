package ports

import (
	"context"
	"io"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
)

// Upload carries one uploaded file through the attachment pipeline.
// Size is the declared length in bytes; the store must not trust it blindly
// and re-checks while reading.
type Upload struct {
	// FieldName is the multipart form field the file arrived in
	// ("image" or "delivered_image"); it prefixes the stored name.
	FieldName string

	// FileName is the client-supplied name, used only for its extension.
	FileName string

	// ContentType is the declared media type, validated against the
	// allow-list.
	ContentType string

	// Size is the declared content length in bytes.
	Size int64

	// Content is the file body. Read at most once.
	Content io.Reader
}

// FileStore persists uploaded delivery photos and hands back opaque
// relative references. Implementations reject disallowed media types with
// an UnsupportedMediaType error and oversized payloads with a
// PayloadTooLarge error, and never overwrite an existing file.
type FileStore interface {
	// Save validates and persists one upload, returning its reference.
	Save(ctx context.Context, upload Upload) (kernel.StorageRef, error)

	// List enumerates all stored references. Used by the orphan sweep job.
	List(ctx context.Context) ([]kernel.StorageRef, error)

	// Remove deletes the file behind a reference. Missing files are not an
	// error; the sweep may race with other cleanups.
	Remove(ctx context.Context, ref kernel.StorageRef) error
}
