package interfaces

import (
	"context"
	"story-server/shared/models"

	"github.com/google/uuid"
)

// CharacterRepository persists characters, owned by a story or standalone.
//
//go:generate mockery --name CharacterRepository --output ./mocks --outpkg mocks --case=underscore
type CharacterRepository interface {
	Create(ctx context.Context, querier DBTX, character *models.Character) error
	GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.Character, error)
	Update(ctx context.Context, querier DBTX, character *models.Character) error
	Delete(ctx context.Context, querier DBTX, id uuid.UUID) error

	// ReplaceForStory deletes every character of the story and inserts characters in order.
	// The inserted rows get fresh ids.
	ReplaceForStory(ctx context.Context, querier DBTX, storyID uuid.UUID, characters []models.Character) error

	// DeleteByStory removes every character of the story.
	DeleteByStory(ctx context.Context, querier DBTX, storyID uuid.UUID) error

	// ListByStories returns characters grouped by story id, each group in submission order.
	ListByStories(ctx context.Context, querier DBTX, storyIDs []uuid.UUID) (map[uuid.UUID][]models.Character, error)

	// ListByAuthor returns the characters attached to any story authored by author.
	ListByAuthor(ctx context.Context, querier DBTX, author string) ([]models.Character, error)
}
