package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"story-server/shared/interfaces"

	"go.uber.org/zap"
)

// DefaultPublicPrefix is the URL prefix the server mounts the upload directory on.
const DefaultPublicPrefix = "/uploads"

// LocalStorage writes uploads to a directory served statically by the server.
type LocalStorage struct {
	baseDir      string
	publicPrefix string
	logger       *zap.Logger
}

var _ interfaces.MediaStorage = (*LocalStorage)(nil)

// NewLocalStorage creates baseDir if needed.
func NewLocalStorage(baseDir, publicPrefix string, logger *zap.Logger) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("upload directory is not configured")
	}
	if publicPrefix == "" {
		publicPrefix = DefaultPublicPrefix
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &LocalStorage{
		baseDir:      baseDir,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
		logger:       logger.Named("LocalStorage"),
	}, nil
}

// Store writes r to <baseDir>/<folder>/<uuid>_<filename> and returns its public URL.
// A partially written file is removed on failure.
func (s *LocalStorage) Store(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	rel, ok := cleanFolder(folder)
	if !ok {
		return "", fmt.Errorf("invalid storage folder %q", folder)
	}
	name := storedName(filename)
	dir := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", rel, err)
	}

	target := filepath.Join(dir, name)
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	_, copyErr := io.Copy(f, &ctxReader{ctx: ctx, r: r})
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(target)
		if copyErr == nil {
			copyErr = closeErr
		}
		s.logger.Error("Failed to write upload", zap.String("folder", rel), zap.String("file", name), zap.Error(copyErr))
		return "", fmt.Errorf("failed to write file: %w", copyErr)
	}

	s.logger.Debug("Upload stored", zap.String("folder", rel), zap.String("file", name))
	return s.publicPrefix + "/" + path.Join(rel, name), nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
