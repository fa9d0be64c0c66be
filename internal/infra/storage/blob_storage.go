// Package storage keeps signature images in an object store addressed by a bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"visitadoras/config"
	"visitadoras/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const pngContentType = "image/png"

// blobStorage implements service.SignatureStorage on a gocloud bucket.
// Objects live under "{signatureBucket}/{key}" and are served from publicBaseURL.
type blobStorage struct {
	bucket     *blob.Bucket
	folder     string
	publicBase string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewBlobStorage wraps an opened bucket.
func NewBlobStorage(bucket *blob.Bucket, folder, publicBaseURL string, logger *slog.Logger) service.SignatureStorage {
	return &blobStorage{
		bucket:     bucket,
		folder:     strings.Trim(folder, "/"),
		publicBase: strings.TrimRight(publicBaseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// Upload stores a PNG under key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, png []byte) (string, error) {
	objectKey := s.objectKey(key)

	if err := s.bucket.WriteAll(ctx, objectKey, png, &blob.WriterOptions{
		ContentType:  pngContentType,
		CacheControl: "public, max-age=3600",
	}); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", objectKey)
	}

	return s.publicBase + "/" + objectKey, nil
}

// Fetch returns the image behind a URL. URLs issued by Upload are read from the bucket;
// anything else (signatures stored before the migration) is downloaded over HTTP.
func (s *blobStorage) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if objectKey, ok := s.keyFromURL(rawURL); ok {
		data, err := s.bucket.ReadAll(ctx, objectKey)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", objectKey)
		}

		return data, nil
	}

	return s.download(ctx, rawURL)
}

// Delete removes the object behind a URL issued by Upload.
func (s *blobStorage) Delete(ctx context.Context, rawURL string) error {
	objectKey, ok := s.keyFromURL(rawURL)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, objectKey); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", objectKey)
	}

	return nil
}

func (s *blobStorage) objectKey(key string) string {
	return s.folder + "/" + strings.TrimLeft(key, "/")
}

func (s *blobStorage) keyFromURL(rawURL string) (string, bool) {
	prefix := s.publicBase + "/" + s.folder + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}

	key, err := url.PathUnescape(strings.TrimPrefix(rawURL, prefix))
	if err != nil || key == "" {
		return "", false
	}

	return s.objectKey(key), true
}

func (s *blobStorage) download(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errors.Errorf("unsupported signature url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to download signature")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("signature download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read signature body")
	}

	return data, nil
}

// Params holds dependencies for the storage module, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.SignatureStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Signature storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("folder", cfg.SignatureBucket),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg.SignatureBucket, cfg.PublicBaseURL, params.Logger), nil
}
