// Package disk stores uploaded item photos on the local filesystem. Files
// are written under a single root directory and addressed by
// storage-relative paths, which the HTTP layer serves as static content.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

// MaxUploadSize caps accepted photos at 5 MiB.
const MaxUploadSize = 5 << 20

// allowedContentTypes is the image allowlist. image/jpg is not a registered
// media type but phone clients send it anyway.
func allowedContentTypes() map[string]string {
	return map[string]string{
		"image/jpeg": ".jpeg",
		"image/jpg":  ".jpg",
		"image/png":  ".png",
	}
}

// FileStore persists uploads under a root directory.
type FileStore struct {
	root string
	now  func() time.Time
}

// NewFileStore creates a disk-backed file store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValueIsRequiredError("upload directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewStorageFailureError("create upload directory", err)
	}
	return &FileStore{root: dir, now: time.Now}, nil
}

// Save validates and writes an upload, returning its storage reference.
//
// The stored name is "<fieldName>-<millisecondTimestamp><ext>". Files are
// created exclusively and never overwritten; when two uploads land on the
// same millisecond the timestamp is bumped until a free name is found.
//
// Rejections: UnsupportedMediaType for anything outside the image
// allowlist, PayloadTooLarge past 5 MiB. The size limit is enforced
// against the actual bytes read, not the client-declared size alone.
func (s *FileStore) Save(ctx context.Context, upload ports.Upload) (kernel.StorageRef, error) {
	if err := ctx.Err(); err != nil {
		return kernel.StorageRef{}, err
	}

	ext, ok := allowedContentTypes()[strings.ToLower(upload.ContentType)]
	if !ok {
		return kernel.StorageRef{}, errs.NewUnsupportedMediaTypeError(upload.ContentType)
	}
	if nameExt := strings.ToLower(filepath.Ext(upload.FileName)); nameExt != "" {
		ext = nameExt
	}

	if upload.Size > MaxUploadSize {
		return kernel.StorageRef{}, errs.NewPayloadTooLargeError(upload.Size, MaxUploadSize)
	}

	file, name, err := s.createExclusive(upload.FieldName, ext)
	if err != nil {
		return kernel.StorageRef{}, errs.NewStorageFailureError("create file", err)
	}

	written, err := io.Copy(file, io.LimitReader(upload.Content, MaxUploadSize+1))
	closeErr := file.Close()

	switch {
	case err != nil:
		_ = os.Remove(filepath.Join(s.root, name))
		return kernel.StorageRef{}, errs.NewStorageFailureError("write file", err)
	case closeErr != nil:
		_ = os.Remove(filepath.Join(s.root, name))
		return kernel.StorageRef{}, errs.NewStorageFailureError("write file", closeErr)
	case written > MaxUploadSize:
		_ = os.Remove(filepath.Join(s.root, name))
		return kernel.StorageRef{}, errs.NewPayloadTooLargeError(written, MaxUploadSize)
	}

	return kernel.NewStorageRef(name)
}

// createExclusive opens a new file under the root, bumping the timestamp on
// collision so an existing photo is never replaced.
func (s *FileStore) createExclusive(fieldName, ext string) (*os.File, string, error) {
	millis := s.now().UnixMilli()
	for {
		name := fmt.Sprintf("%s-%d%s", fieldName, millis, ext)
		file, err := os.OpenFile(filepath.Join(s.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, name, nil
		}
		if !os.IsExist(err) {
			return nil, "", err
		}
		millis++
	}
}

// List returns the storage references of every stored file. The sweep job
// diffs this against the references the database still points at.
func (s *FileStore) List(ctx context.Context) ([]kernel.StorageRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errs.NewStorageFailureError("list files", err)
	}

	refs := make([]kernel.StorageRef, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ref, refErr := kernel.NewStorageRef(entry.Name())
		if refErr != nil {
			continue
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// Remove deletes a stored file. Removing a reference that is already gone
// is not an error.
func (s *FileStore) Remove(ctx context.Context, ref kernel.StorageRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ref.Validate(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.root, ref.String()))
	if err != nil && !os.IsNotExist(err) {
		return errs.NewStorageFailureError("remove file", err)
	}
	return nil
}
