package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	storyImagesFolder = "stories"
	sceneMediaFolder  = "scenes"

	// maxConcurrentUploads bounds parallel writes to the media storage per request.
	maxConcurrentUploads = 4
)

var allowedExtensions = map[models.MediaType]map[string]struct{}{
	models.MediaTypeImage: {"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}},
	models.MediaTypeVideo: {"mp4": {}, "webm": {}, "ogg": {}},
	models.MediaTypeAudio: {"mp3": {}, "wav": {}, "ogg": {}, "m4a": {}},
}

// ValidateExtension checks filename against the allow-list of the media type.
func ValidateExtension(mediaType models.MediaType, filename string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedExtensions[mediaType][ext]; !ok {
		return fmt.Errorf("%w: extension %q is not allowed for %s", models.ErrValidation, ext, mediaType)
	}
	return nil
}

// mediaUploader stores files concurrently and returns their public URLs in input order.
type mediaUploader struct {
	storage interfaces.MediaStorage
	logger  *zap.Logger
}

func (u *mediaUploader) storeAll(ctx context.Context, folder string, files []models.MediaFile) ([]string, error) {
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)
	for i, f := range files {
		g.Go(func() error {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("open upload %q: %w", f.Filename, err)
			}
			defer rc.Close()

			url, err := u.storage.Store(gctx, folder, f.Filename, rc)
			if err != nil {
				return fmt.Errorf("store upload %q: %w", f.Filename, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		u.logger.Error("Media upload failed", zap.String("folder", folder), zap.Error(err))
		return nil, err
	}
	mediaStoredTotal.WithLabelValues(folder).Add(float64(len(files)))
	return urls, nil
}

func sceneFolder(t models.MediaType) string {
	return path.Join(sceneMediaFolder, t.Folder())
}

// nonEmpty drops zero-size uploads.
func nonEmpty(files []models.MediaFile) []models.MediaFile {
	out := make([]models.MediaFile, 0, len(files))
	for _, f := range files {
		if f.Size > 0 {
			out = append(out, f)
		}
	}
	return out
}
