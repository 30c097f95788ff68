package database

import (
	"context"
	"fmt"
	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	addFavoriteQuery          = `INSERT INTO story_favorites (story_id, username) VALUES ($1, $2) ON CONFLICT (story_id, username) DO NOTHING`
	removeFavoriteQuery       = `DELETE FROM story_favorites WHERE story_id = $1 AND username = $2`
	checkFavoriteQuery        = `SELECT EXISTS (SELECT 1 FROM story_favorites WHERE story_id = $1 AND username = $2)`
	favoritedStoryIDsQuery    = `SELECT story_id FROM story_favorites WHERE username = $1 AND story_id = ANY($2::uuid[])`
	listFavoriteStoryIDsQuery = `SELECT story_id FROM story_favorites WHERE username = $1 ORDER BY seq`
	deleteFavoritesByStorySQL = `DELETE FROM story_favorites WHERE story_id = $1`
)

type pgFavoriteRepository struct {
	logger *zap.Logger
}

var _ interfaces.FavoriteRepository = (*pgFavoriteRepository)(nil)

// NewPgFavoriteRepository creates the favorite repository.
func NewPgFavoriteRepository(logger *zap.Logger) interfaces.FavoriteRepository {
	return &pgFavoriteRepository{logger: logger.Named("PgFavoriteRepo")}
}

func (r *pgFavoriteRepository) AddFavorite(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	logFields := []zap.Field{
		zap.String("storyID", storyID.String()),
		zap.String("username", username),
	}
	tag, err := querier.Exec(ctx, addFavoriteQuery, storyID, username)
	if err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgUniqueViolation:
			return false, nil
		case pgForeignKeyViolation:
			r.logger.Warn("Story not found (foreign key violation)", logFields...)
			return false, models.ErrNotFound
		}
		r.logger.Error("Failed to add favorite", append(logFields, zap.Error(err))...)
		return false, fmt.Errorf("%w: failed to add favorite: %w", models.ErrInternalServer, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pgFavoriteRepository) RemoveFavorite(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	tag, err := querier.Exec(ctx, removeFavoriteQuery, storyID, username)
	if err != nil {
		r.logger.Error("Failed to remove favorite",
			zap.String("storyID", storyID.String()), zap.String("username", username), zap.Error(err))
		return false, fmt.Errorf("%w: failed to remove favorite: %w", models.ErrInternalServer, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pgFavoriteRepository) CheckFavorite(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	var exists bool
	if err := querier.QueryRow(ctx, checkFavoriteQuery, storyID, username).Scan(&exists); err != nil {
		r.logger.Error("Failed to check favorite existence", zap.String("storyID", storyID.String()), zap.Error(err))
		return false, fmt.Errorf("%w: failed to check favorite: %w", models.ErrInternalServer, err)
	}
	return exists, nil
}

func (r *pgFavoriteRepository) FavoritedStoryIDs(ctx context.Context, querier interfaces.DBTX, username string, storyIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return selectIDSet(ctx, querier, r.logger, "favorites", favoritedStoryIDsQuery, username, storyIDs)
}

func (r *pgFavoriteRepository) ListStoryIDsByUser(ctx context.Context, querier interfaces.DBTX, username string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	if err := pgxscan.Select(ctx, querier, &ids, listFavoriteStoryIDsQuery, username); err != nil {
		r.logger.Error("Failed to list favorite story ids", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list favorites: %w", models.ErrInternalServer, err)
	}
	return ids, nil
}

func (r *pgFavoriteRepository) DeleteByStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) error {
	if _, err := querier.Exec(ctx, deleteFavoritesByStorySQL, storyID); err != nil {
		r.logger.Error("Failed to delete story favorites", zap.String("storyID", storyID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete story favorites: %w", models.ErrInternalServer, err)
	}
	return nil
}
