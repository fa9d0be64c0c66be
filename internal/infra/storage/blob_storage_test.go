package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestStorage(t *testing.T) (*blobStorage, *blob.Bucket) {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	svc := NewBlobStorage(bucket, "firmas", "https://cdn.example.com/storage/", slog.New(slog.NewTextHandler(io.Discard, nil)))

	return svc.(*blobStorage), bucket
}

func TestBlobStorage_UploadFetchDelete(t *testing.T) {
	ctx := context.Background()
	svc, bucket := newTestStorage(t)

	url, err := svc.Upload(ctx, "firma_abc_1700000000000.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/storage/firmas/firma_abc_1700000000000.png", url)

	exists, err := bucket.Exists(ctx, "firmas/firma_abc_1700000000000.png")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := svc.Fetch(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	require.NoError(t, svc.Delete(ctx, url))
	exists, err = bucket.Exists(ctx, "firmas/firma_abc_1700000000000.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting twice is not an error.
	assert.NoError(t, svc.Delete(ctx, url))
}

func TestBlobStorage_FetchForeignURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/legacy/firma.png" {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngHeader)
	}))
	defer server.Close()

	svc, _ := newTestStorage(t)

	data, err := svc.Fetch(context.Background(), server.URL+"/legacy/firma.png")
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	_, err = svc.Fetch(context.Background(), server.URL+"/missing.png")
	assert.Error(t, err)

	_, err = svc.Fetch(context.Background(), "ftp://example.com/firma.png")
	assert.Error(t, err)
}

func TestBlobStorage_DeleteForeignURLIsNoop(t *testing.T) {
	svc, _ := newTestStorage(t)

	assert.NoError(t, svc.Delete(context.Background(), "https://other.example.com/firmas/x.png"))
}
