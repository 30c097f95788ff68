package interfaces

import (
	"context"
	"story-server/shared/models"

	"github.com/google/uuid"
)

// CommentRepository stores story comments.
//
//go:generate mockery --name CommentRepository --output ./mocks --outpkg mocks --case=underscore
type CommentRepository interface {
	Create(ctx context.Context, querier DBTX, comment *models.Comment) error
	GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.Comment, error)
	Delete(ctx context.Context, querier DBTX, id uuid.UUID) error

	// ListByStory returns comments newest first.
	ListByStory(ctx context.Context, querier DBTX, storyID uuid.UUID) ([]*models.Comment, error)

	// CountByStories returns live comment counts; stories with no comments are absent from the map.
	CountByStories(ctx context.Context, querier DBTX, storyIDs []uuid.UUID) (map[uuid.UUID]int, error)

	DeleteByStory(ctx context.Context, querier DBTX, storyID uuid.UUID) error
}
