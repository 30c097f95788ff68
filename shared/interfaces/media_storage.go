package interfaces

import (
	"context"
	"io"
)

// MediaStorage persists raw uploaded bytes and returns a client-facing URL.
//
//go:generate mockery --name MediaStorage --output ./mocks --outpkg mocks --case=underscore
type MediaStorage interface {
	// Store writes r under folder/filename. folder is a slash-separated relative path such as "scenes/video".
	Store(ctx context.Context, folder, filename string, r io.Reader) (string, error)
}
