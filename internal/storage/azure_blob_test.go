package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"leave-approval/internal/storage"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAzureStore points the SDK at a fake blob endpoint serving the "docs"
// container.
func newAzureStore(t *testing.T, policyOpt storage.OverwritePolicy, handler http.HandlerFunc) *storage.AzureBlobStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := azblob.NewClientWithNoCredential(srv.URL+"/", &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	})
	require.NoError(t, err)
	return storage.NewAzureBlobStore(client, "docs", policyOpt)
}

func TestAzureBlobStore_Size(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s := newAzureStore(t, storage.OverwriteExisting, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			assert.True(t, strings.HasSuffix(r.URL.Path, "/docs/medicalDocument-note.pdf"))
			w.Header().Set("Content-Length", "2048")
			w.Header().Set("x-ms-blob-type", "BlockBlob")
			w.WriteHeader(http.StatusOK)
		})

		size, err := s.Size(ctx, "medicalDocument-note.pdf")

		require.NoError(t, err)
		assert.Equal(t, int64(2048), size)
	})

	t.Run("missing blob", func(t *testing.T) {
		s := newAzureStore(t, storage.OverwriteExisting, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("x-ms-error-code", "BlobNotFound")
			w.WriteHeader(http.StatusNotFound)
		})

		size, err := s.Size(ctx, "missing.pdf")

		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
		assert.Zero(t, size)

		exists, err := s.Exists(ctx, "missing.pdf")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing container", func(t *testing.T) {
		s := newAzureStore(t, storage.OverwriteExisting, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("x-ms-error-code", "ContainerNotFound")
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := s.Size(ctx, "note.pdf")

		assert.ErrorIs(t, err, storage.ErrContainerNotFound)
		assert.NotErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("backend failure", func(t *testing.T) {
		s := newAzureStore(t, storage.OverwriteExisting, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("x-ms-error-code", "ServerBusy")
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		size, err := s.Size(ctx, "note.pdf")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrObjectNotFound)
		assert.Zero(t, size)
	})
}

// blobPutRecorder answers the PUTs of an upload. Staged blocks always
// succeed; the final Put Blob or Put Block List gets finalStatus.
type blobPutRecorder struct {
	mu          sync.Mutex
	ifNoneMatch []string
	paths       []string
	finalStatus int
	errorCode   string
}

func (rec *blobPutRecorder) handle(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Query().Get("comp") == "block" {
		w.WriteHeader(http.StatusCreated)
		return
	}

	rec.mu.Lock()
	rec.ifNoneMatch = append(rec.ifNoneMatch, r.Header.Get("If-None-Match"))
	rec.paths = append(rec.paths, r.URL.Path)
	rec.mu.Unlock()

	if rec.errorCode != "" {
		w.Header().Set("x-ms-error-code", rec.errorCode)
	} else {
		w.Header().Set("ETag", `"0x8DC0000000000"`)
	}
	w.WriteHeader(rec.finalStatus)
}

func TestAzureBlobStore_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns blob url", func(t *testing.T) {
		rec := &blobPutRecorder{finalStatus: http.StatusCreated}
		s := newAzureStore(t, storage.OverwriteExisting, rec.handle)

		url, err := s.Upload(ctx, strings.NewReader("scan"), 4, "medicalDocument-note.pdf")

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, "/docs/medicalDocument-note.pdf"), url)
		require.NotEmpty(t, rec.paths)
		for i, p := range rec.paths {
			assert.True(t, strings.HasSuffix(p, "/docs/medicalDocument-note.pdf"))
			assert.Empty(t, rec.ifNoneMatch[i], "overwrite policy must not send a precondition")
		}
	})

	t.Run("reject policy sends precondition", func(t *testing.T) {
		rec := &blobPutRecorder{finalStatus: http.StatusConflict, errorCode: "BlobAlreadyExists"}
		s := newAzureStore(t, storage.RejectExisting, rec.handle)

		url, err := s.Upload(ctx, strings.NewReader("scan"), 4, "medicalDocument-note.pdf")

		assert.ErrorIs(t, err, storage.ErrObjectExists)
		assert.Empty(t, url)
		require.NotEmpty(t, rec.ifNoneMatch)
		assert.Equal(t, "*", rec.ifNoneMatch[len(rec.ifNoneMatch)-1])
	})

	t.Run("precondition failed maps to object exists", func(t *testing.T) {
		rec := &blobPutRecorder{finalStatus: http.StatusPreconditionFailed, errorCode: "ConditionNotMet"}
		s := newAzureStore(t, storage.RejectExisting, rec.handle)

		_, err := s.Upload(ctx, strings.NewReader("scan"), 4, "note.pdf")

		assert.ErrorIs(t, err, storage.ErrObjectExists)
	})

	t.Run("missing container", func(t *testing.T) {
		s := newAzureStore(t, storage.OverwriteExisting, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.Copy(io.Discard, r.Body)
			w.Header().Set("x-ms-error-code", "ContainerNotFound")
			w.WriteHeader(http.StatusNotFound)
		})

		url, err := s.Upload(ctx, strings.NewReader("scan"), 4, "note.pdf")

		assert.ErrorIs(t, err, storage.ErrContainerNotFound)
		assert.Empty(t, url)
	})
}
