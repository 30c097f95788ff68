package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// LikeRepository stores (story, username) like facts.
//
//go:generate mockery --name LikeRepository --output ./mocks --outpkg mocks --case=underscore
type LikeRepository interface {
	// AddLike inserts the like. Returns false when it already existed,
	// including when a concurrent transaction inserted it first.
	AddLike(ctx context.Context, querier DBTX, storyID uuid.UUID, username string) (bool, error)

	// RemoveLike deletes the like. Returns false when there was nothing to delete.
	RemoveLike(ctx context.Context, querier DBTX, storyID uuid.UUID, username string) (bool, error)

	// CheckLike reports whether username currently likes the story.
	CheckLike(ctx context.Context, querier DBTX, storyID uuid.UUID, username string) (bool, error)

	// CountLikes counts like rows of the story.
	CountLikes(ctx context.Context, querier DBTX, storyID uuid.UUID) (int64, error)

	// LikedStoryIDs returns the subset of storyIDs liked by username.
	LikedStoryIDs(ctx context.Context, querier DBTX, username string, storyIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// DeleteByStory removes every like of the story.
	DeleteByStory(ctx context.Context, querier DBTX, storyID uuid.UUID) error
}
