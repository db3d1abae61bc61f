// Package storage keeps uploaded course media in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"edusync/config"
	"edusync/internal/domain/service"
	"edusync/internal/errors"
	"edusync/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the scheme of storage.bucketUrl.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	inMemoryBucketURL     = "mem://"
	inMemoryPublicBaseURL = "mem://edusync-media"
	defaultUploadTimeout  = 30 * time.Second
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	uploadTimeout time.Duration
	logger        *slog.Logger
}

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Without a storage section the media lives
// in process memory, which is only suitable for development.
func New(params Params) (service.BlobStorage, error) {
	bucketURL := inMemoryBucketURL
	publicBaseURL := inMemoryPublicBaseURL
	uploadTimeout := defaultUploadTimeout

	if cfg := params.Config.Storage; cfg != nil && cfg.BucketURL != "" {
		bucketURL = cfg.BucketURL
		publicBaseURL = cfg.PublicBaseURL
		uploadTimeout = cfg.UploadTimeout
	} else {
		params.Logger.Warn("Storage not configured, keeping course media in memory")
	}

	if publicBaseURL == "" {
		return nil, errors.New("storage.publicBaseUrl is required when storage.bucketUrl is set")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	storage := NewBlobStorage(bucket, publicBaseURL, uploadTimeout, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob storage")

			return storage.Close()
		},
	})

	params.Logger.Info("Blob storage initialized",
		slog.String("public_base_url", publicBaseURL),
	)

	return storage, nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, uploadTimeout time.Duration, logger *slog.Logger) service.BlobStorage {
	if uploadTimeout <= 0 {
		uploadTimeout = defaultUploadTimeout
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		uploadTimeout: uploadTimeout,
		logger:        logger,
	}
}

// Upload streams content into the bucket under name and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, content io.Reader, name, contentType string) (string, error) {
	key := strings.TrimLeft(name, "/")
	if key == "" {
		return "", errors.New("blob name is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	start := time.Now()
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	written, copyErr := io.Copy(writer, content)
	if copyErr != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = writer.Close()

		return "", errors.Wrap(copyErr, "failed to write blob")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	s.logger.Debug("Blob uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(written)),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return s.publicBaseURL + "/" + escapeKey(key), nil
}

// Delete removes the object behind mediaURL. Empty urls, urls outside this
// bucket and objects that are already gone are not errors.
func (s *blobStorage) Delete(ctx context.Context, mediaURL string) error {
	if mediaURL == "" {
		return nil
	}

	key, ok := s.keyFromURL(mediaURL)
	if !ok {
		s.logger.Debug("Skipping delete of blob outside the bucket", slog.String("url", mediaURL))

		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *blobStorage) keyFromURL(mediaURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(mediaURL, prefix) {
		return "", false
	}

	key, err := url.PathUnescape(strings.TrimPrefix(mediaURL, prefix))
	if err != nil {
		return "", false
	}

	return key, key != ""
}

// escapeKey escapes each path segment of key, keeping the separators.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
