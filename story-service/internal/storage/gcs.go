package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"story-server/shared/interfaces"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const gcsUploadTimeout = 2 * time.Minute

// GCSStorage writes uploads into a Google Cloud Storage bucket.
type GCSStorage struct {
	client     *storage.Client
	bucket     string
	publicBase string
	logger     *zap.Logger
}

var _ interfaces.MediaStorage = (*GCSStorage)(nil)

// NewGCSStorage creates the storage client. publicBase defaults to the
// storage.googleapis.com URL of the bucket.
func NewGCSStorage(ctx context.Context, bucket, publicBase string, logger *zap.Logger, opts ...option.ClientOption) (*GCSStorage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket is not configured")
	}
	opts = append(ClientOptionsFromEnv(), opts...)
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if publicBase == "" {
		publicBase = "https://storage.googleapis.com/" + bucket
	}
	return &GCSStorage{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		logger:     logger.Named("GCSStorage"),
	}, nil
}

// ClientOptionsFromEnv reads GOOGLE_APPLICATION_CREDENTIALS_JSON (inline json)
// or GOOGLE_APPLICATION_CREDENTIALS (file path). None set means default credentials.
func ClientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

// Store uploads r as object <folder>/<uuid>_<filename>.
func (s *GCSStorage) Store(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	rel, ok := cleanFolder(folder)
	if !ok {
		return "", fmt.Errorf("invalid storage folder %q", folder)
	}
	key := path.Join(rel, storedName(filename))

	ctx, cancel := context.WithTimeout(ctx, gcsUploadTimeout)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentTypeFor(key)
	if _, err := io.Copy(w, r); err != nil {
		// Canceling first makes Close abort the upload instead of finalizing a partial object.
		cancel()
		_ = w.Close()
		s.logger.Error("Failed to write object", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		s.logger.Error("Failed to finalize object", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return s.publicBase + "/" + key, nil
}

// Close releases the storage client.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
