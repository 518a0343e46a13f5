package disk_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/townkitchenn/fnp-delivery-backend/internal/adapters/out/disk"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

func newTestStore(t *testing.T) (*disk.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := disk.NewFileStore(dir)
	require.NoError(t, err)
	return store, dir
}

func pngUpload(fieldName, fileName, content string) ports.Upload {
	return ports.Upload{
		FieldName:   fieldName,
		FileName:    fileName,
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func TestFileStore_Save_WritesFile(t *testing.T) {
	ctx := t.Context()
	store, dir := newTestStore(t)

	ref, err := store.Save(ctx, pngUpload("image", "box.png", "not a real png"))
	require.NoError(t, err)

	name := ref.String()
	assert.True(t, strings.HasPrefix(name, "image-"), "name %q should carry the field name prefix", name)
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "not a real png", string(data))
}

func TestFileStore_Save_JpegVariants(t *testing.T) {
	ctx := t.Context()
	store, _ := newTestStore(t)

	for _, contentType := range []string{"image/jpeg", "image/jpg", "IMAGE/PNG"} {
		upload := ports.Upload{
			FieldName:   "delivered_image",
			FileName:    "door.jpg",
			ContentType: contentType,
			Size:        4,
			Content:     strings.NewReader("data"),
		}
		_, err := store.Save(ctx, upload)
		require.NoError(t, err, "content type %s should be accepted", contentType)
	}
}

func TestFileStore_Save_RejectsNonImage(t *testing.T) {
	ctx := t.Context()
	store, dir := newTestStore(t)

	upload := ports.Upload{
		FieldName:   "image",
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Size:        4,
		Content:     strings.NewReader("data"),
	}

	_, err := store.Save(ctx, upload)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedMediaType)

	// nothing was written
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_Save_RejectsDeclaredOversize(t *testing.T) {
	ctx := t.Context()
	store, _ := newTestStore(t)

	upload := ports.Upload{
		FieldName:   "image",
		FileName:    "big.png",
		ContentType: "image/png",
		Size:        6 << 20,
		Content:     strings.NewReader("data"),
	}

	_, err := store.Save(ctx, upload)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
}

func TestFileStore_Save_RejectsActualOversize(t *testing.T) {
	ctx := t.Context()
	store, dir := newTestStore(t)

	// declared size lies; the byte count read decides
	upload := ports.Upload{
		FieldName:   "image",
		FileName:    "big.png",
		ContentType: "image/png",
		Size:        100,
		Content:     strings.NewReader(strings.Repeat("x", disk.MaxUploadSize+1)),
	}

	_, err := store.Save(ctx, upload)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "oversized partial write should be cleaned up")
}

func TestFileStore_Save_NeverOverwrites(t *testing.T) {
	ctx := t.Context()
	store, _ := newTestStore(t)

	first, err := store.Save(ctx, pngUpload("image", "a.png", "first"))
	require.NoError(t, err)

	second, err := store.Save(ctx, pngUpload("image", "b.png", "second"))
	require.NoError(t, err)

	assert.False(t, first.IsEqual(second), "colliding uploads must get distinct names")
}

func TestFileStore_ListAndRemove(t *testing.T) {
	ctx := t.Context()
	store, _ := newTestStore(t)

	ref, err := store.Save(ctx, pngUpload("image", "a.png", "data"))
	require.NoError(t, err)

	refs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.True(t, refs[0].IsEqual(ref))

	require.NoError(t, store.Remove(ctx, ref))

	refs, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)

	// removing again is a no-op
	require.NoError(t, store.Remove(ctx, ref))
}
