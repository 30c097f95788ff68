package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteRepository stores (story, username) favorite facts.
//
//go:generate mockery --name FavoriteRepository --output ./mocks --outpkg mocks --case=underscore
type FavoriteRepository interface {
	// AddFavorite returns false when the favorite already existed.
	AddFavorite(ctx context.Context, querier DBTX, storyID uuid.UUID, username string) (bool, error)
	// RemoveFavorite returns false when there was nothing to delete.
	RemoveFavorite(ctx context.Context, querier DBTX, storyID uuid.UUID, username string) (bool, error)
	CheckFavorite(ctx context.Context, querier DBTX, storyID uuid.UUID, username string) (bool, error)
	// FavoritedStoryIDs returns the subset of storyIDs favorited by username.
	FavoritedStoryIDs(ctx context.Context, querier DBTX, username string, storyIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	// ListStoryIDsByUser returns every story favorited by username, oldest favorite first.
	ListStoryIDsByUser(ctx context.Context, querier DBTX, username string) ([]uuid.UUID, error)
	DeleteByStory(ctx context.Context, querier DBTX, storyID uuid.UUID) error
}
