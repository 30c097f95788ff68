package interfaces

import (
	"context"
	"story-server/shared/models"

	"github.com/google/uuid"
)

// SceneRepository persists scenes and their append-only media.
//
//go:generate mockery --name SceneRepository --output ./mocks --outpkg mocks --case=underscore
type SceneRepository interface {
	Create(ctx context.Context, querier DBTX, scene *models.Scene) error

	// GetByID returns the scene together with its media.
	GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.Scene, error)

	// Update overwrites title, description, order and character names. Media is left alone.
	Update(ctx context.Context, querier DBTX, scene *models.Scene) error

	// Delete removes the scene and its media.
	Delete(ctx context.Context, querier DBTX, id uuid.UUID) error

	// ListByStory returns scenes ordered by order ascending, each with its media.
	ListByStory(ctx context.Context, querier DBTX, storyID uuid.UUID) ([]*models.Scene, error)

	// DeleteByStory removes every scene (and media) of the story.
	DeleteByStory(ctx context.Context, querier DBTX, storyID uuid.UUID) error

	// AddMedia appends media rows to the scene.
	AddMedia(ctx context.Context, querier DBTX, media []models.SceneMedia) error
}
