package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leave-approval/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T, policy storage.OverwritePolicy) (*storage.LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := storage.NewLocalStore(dir, "http://files.local/docs/", policy)
	require.NoError(t, err)
	return s, dir
}

func TestDocumentName(t *testing.T) {
	assert.Equal(t, "medicalDocument-note.pdf", storage.DocumentName("medicalDocument", "note.pdf"))
}

func TestLocalStore_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns url and stores bytes", func(t *testing.T) {
		s, dir := newLocalStore(t, storage.OverwriteExisting)

		url, err := s.Upload(ctx, strings.NewReader("hello"), 5, "medicalDocument-note.pdf")
		require.NoError(t, err)
		assert.Equal(t, "http://files.local/docs/medicalDocument-note.pdf", url)

		b, err := os.ReadFile(filepath.Join(dir, "medicalDocument-note.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(b))
	})

	t.Run("overwrite policy replaces existing object", func(t *testing.T) {
		s, _ := newLocalStore(t, storage.OverwriteExisting)

		_, err := s.Upload(ctx, strings.NewReader("first version"), -1, "a.pdf")
		require.NoError(t, err)
		_, err = s.Upload(ctx, strings.NewReader("v2"), -1, "a.pdf")
		require.NoError(t, err)

		size, err := s.Size(ctx, "a.pdf")
		require.NoError(t, err)
		assert.Equal(t, int64(2), size)
	})

	t.Run("reject policy refuses existing object", func(t *testing.T) {
		s, _ := newLocalStore(t, storage.RejectExisting)

		_, err := s.Upload(ctx, strings.NewReader("first"), -1, "a.pdf")
		require.NoError(t, err)
		_, err = s.Upload(ctx, strings.NewReader("second"), -1, "a.pdf")
		assert.ErrorIs(t, err, storage.ErrObjectExists)

		size, err := s.Size(ctx, "a.pdf")
		require.NoError(t, err)
		assert.Equal(t, int64(5), size)
	})

	t.Run("missing directory is container not found", func(t *testing.T) {
		s, dir := newLocalStore(t, storage.OverwriteExisting)
		require.NoError(t, os.RemoveAll(dir))

		_, err := s.Upload(ctx, strings.NewReader("x"), 1, "a.pdf")
		assert.ErrorIs(t, err, storage.ErrContainerNotFound)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		s, _ := newLocalStore(t, storage.OverwriteExisting)

		_, err := s.Upload(ctx, strings.NewReader("x"), 1, "../escape.pdf")
		assert.Error(t, err)
	})
}

func TestLocalStore_SizeAndExists(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocalStore(t, storage.OverwriteExisting)

	_, err := s.Upload(ctx, strings.NewReader("1234"), 4, "present.pdf")
	require.NoError(t, err)

	size, err := s.Size(ctx, "present.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(4), size)

	ok, err := s.Exists(ctx, "present.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	size, err = s.Size(ctx, "missing.pdf")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	assert.Zero(t, size)

	ok, err = s.Exists(ctx, "missing.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}
