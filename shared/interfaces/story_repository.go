package interfaces

import (
	"context"
	"story-server/shared/models"

	"github.com/google/uuid"
)

// StoryRepository persists story rows and their owned image URLs.
//
//go:generate mockery --name StoryRepository --output ./mocks --outpkg mocks --case=underscore
type StoryRepository interface {
	// Create inserts the story row. Returns models.ErrConflict on a duplicate (author, title).
	Create(ctx context.Context, querier DBTX, story *models.Story) error

	// GetByID returns the bare story row (no characters/images). models.ErrNotFound if missing.
	GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.Story, error)

	// GetByIDForUpdate is GetByID with a row lock held until the transaction ends.
	GetByIDForUpdate(ctx context.Context, querier DBTX, id uuid.UUID) (*models.Story, error)

	// Update overwrites the scalar fields of the story. like_count is never written here.
	Update(ctx context.Context, querier DBTX, story *models.Story) error

	// Delete removes the story row. models.ErrNotFound if missing.
	Delete(ctx context.Context, querier DBTX, id uuid.UUID) error

	// ExistsByAuthorAndTitle reports whether author already owns a story with title.
	// excludeID (may be uuid.Nil) is ignored in the check so an update can keep its own title.
	ExistsByAuthorAndTitle(ctx context.Context, querier DBTX, author, title string, excludeID uuid.UUID) (bool, error)

	// SetPublished writes the publish flag.
	SetPublished(ctx context.Context, querier DBTX, id uuid.UUID, published bool) error

	// ListPublished returns published stories in insertion order.
	ListPublished(ctx context.Context, querier DBTX) ([]*models.Story, error)

	// ListByAuthor returns every story of author regardless of publish state, in insertion order.
	ListByAuthor(ctx context.Context, querier DBTX, author string) ([]*models.Story, error)

	// ListByIDs returns the stories with the given ids, in insertion order.
	ListByIDs(ctx context.Context, querier DBTX, ids []uuid.UUID) ([]*models.Story, error)

	// IncrementLikeCount adds one to like_count.
	IncrementLikeCount(ctx context.Context, querier DBTX, id uuid.UUID) error

	// DecrementLikeCount subtracts one from like_count, never going below zero.
	DecrementLikeCount(ctx context.Context, querier DBTX, id uuid.UUID) error

	// ReplaceImages deletes every image of the story and inserts urls in order.
	ReplaceImages(ctx context.Context, querier DBTX, storyID uuid.UUID, urls []string) error

	// ListImageURLs returns image URLs grouped by story id, each group in submission order.
	ListImageURLs(ctx context.Context, querier DBTX, storyIDs []uuid.UUID) (map[uuid.UUID][]string, error)

	// DeleteImages removes every image row of the story.
	DeleteImages(ctx context.Context, querier DBTX, storyID uuid.UUID) error
}
