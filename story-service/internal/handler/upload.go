package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"story-server/shared/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const multipartFilesField = "files"

// multipartFiles parses the "files" parts of a multipart request into MediaFiles.
// Parts are opened lazily by the service.
func (h *StoryHandler) multipartFiles(c *gin.Context) ([]models.MediaFile, bool) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Code:    models.ErrCodeBadRequest,
				Message: fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
			})
			return nil, false
		}
		h.logger.Debug("Invalid multipart request", zap.Error(err))
		handleServiceError(c, fmt.Errorf("%w: multipart form expected: %v", models.ErrBadRequest, err), h.logger)
		return nil, false
	}

	headers := form.File[multipartFilesField]
	files := make([]models.MediaFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, models.MediaFile{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open:     openPart(fh),
		})
	}
	return files, true
}

func openPart(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return fh.Open()
	}
}
