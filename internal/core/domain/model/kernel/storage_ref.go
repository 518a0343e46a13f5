package kernel

import (
	"path"
	"strings"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

// Domain errors for storage reference construction.
var (
	// ErrStorageRefIsRequired is returned when constructing a StorageRef from an empty path.
	ErrStorageRefIsRequired = errs.NewValueIsRequiredError("storage reference path")
	// ErrStorageRefIsNotRelative is returned for absolute or traversal paths.
	ErrStorageRefIsNotRelative = errs.NewValueIsInvalidError("storage reference path must be relative and must not traverse upwards")
)

// StorageRef is an opaque reference to a persisted upload: a clean relative
// path below the uploads root, such as "image-1718031405123.png". It is never
// stored as an absolute URL; resolution to a URL happens only at the
// response-formatting boundary.
//
// The zero value means "no attachment" and resolves to null in responses,
// never to an empty string.
type StorageRef struct {
	path string
}

// NewStorageRef constructs a StorageRef from a relative path. Rejects empty,
// absolute and upward-traversing paths so a ref can never escape the uploads
// root.
func NewStorageRef(p string) (StorageRef, error) {
	if p == "" {
		return StorageRef{}, ErrStorageRefIsRequired
	}

	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return StorageRef{}, ErrStorageRefIsNotRelative
	}

	return StorageRef{path: cleaned}, nil
}

// String returns the relative path. Empty for the zero value.
func (r StorageRef) String() string {
	return r.path
}

// IsZero reports whether the ref denotes "no attachment".
func (r StorageRef) IsZero() bool {
	return r.path == ""
}

// IsEqual compares two refs by path.
func (r StorageRef) IsEqual(other StorageRef) bool {
	return r.path == other.path
}

// Validate returns an error for the zero value. Optional refs should be
// modeled as *StorageRef and checked for nil instead.
func (r StorageRef) Validate() error {
	if r.path == "" {
		return ErrStorageRefIsRequired
	}
	return nil
}
