package database

import (
	"context"
	"fmt"
	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	addLikeQuery          = `INSERT INTO story_likes (story_id, username) VALUES ($1, $2) ON CONFLICT (story_id, username) DO NOTHING`
	removeLikeQuery       = `DELETE FROM story_likes WHERE story_id = $1 AND username = $2`
	checkLikeQuery        = `SELECT EXISTS (SELECT 1 FROM story_likes WHERE story_id = $1 AND username = $2)`
	countLikesQuery       = `SELECT COUNT(*) FROM story_likes WHERE story_id = $1`
	likedStoryIDsQuery    = `SELECT story_id FROM story_likes WHERE username = $1 AND story_id = ANY($2::uuid[])`
	deleteLikesByStorySQL = `DELETE FROM story_likes WHERE story_id = $1`
)

// pgLikeRepository implements LikeRepository for PostgreSQL.
type pgLikeRepository struct {
	logger *zap.Logger
}

// Compile-time check
var _ interfaces.LikeRepository = (*pgLikeRepository)(nil)

// NewPgLikeRepository creates the like repository.
func NewPgLikeRepository(logger *zap.Logger) interfaces.LikeRepository {
	return &pgLikeRepository{logger: logger.Named("PgLikeRepo")}
}

// AddLike relies on the (story_id, username) primary key: a concurrent duplicate
// waits for the first transaction and then affects zero rows.
func (r *pgLikeRepository) AddLike(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	logFields := []zap.Field{
		zap.String("storyID", storyID.String()),
		zap.String("username", username),
	}
	r.logger.Debug("Adding like record", logFields...)

	tag, err := querier.Exec(ctx, addLikeQuery, storyID, username)
	if err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgUniqueViolation:
			r.logger.Warn("Like already exists (unique constraint violation)", logFields...)
			return false, nil
		case pgForeignKeyViolation:
			r.logger.Warn("Story not found (foreign key violation)", logFields...)
			return false, models.ErrNotFound
		}
		r.logger.Error("Failed to add like record", append(logFields, zap.Error(err))...)
		return false, fmt.Errorf("%w: failed to add like: %w", models.ErrInternalServer, err)
	}

	added := tag.RowsAffected() > 0
	if added {
		r.logger.Info("Like record added successfully", logFields...)
	} else {
		r.logger.Debug("Like already existed, nothing inserted", logFields...)
	}
	return added, nil
}

func (r *pgLikeRepository) RemoveLike(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	logFields := []zap.Field{
		zap.String("storyID", storyID.String()),
		zap.String("username", username),
	}
	r.logger.Debug("Removing like record", logFields...)

	tag, err := querier.Exec(ctx, removeLikeQuery, storyID, username)
	if err != nil {
		r.logger.Error("Failed to remove like record", append(logFields, zap.Error(err))...)
		return false, fmt.Errorf("%w: failed to remove like: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Debug("Like not found to remove", logFields...)
		return false, nil
	}
	r.logger.Info("Like record removed successfully", logFields...)
	return true, nil
}

func (r *pgLikeRepository) CheckLike(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	var exists bool
	if err := querier.QueryRow(ctx, checkLikeQuery, storyID, username).Scan(&exists); err != nil {
		r.logger.Error("Failed to check like existence",
			zap.String("storyID", storyID.String()), zap.String("username", username), zap.Error(err))
		return false, fmt.Errorf("%w: failed to check like existence: %w", models.ErrInternalServer, err)
	}
	return exists, nil
}

func (r *pgLikeRepository) CountLikes(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) (int64, error) {
	var count int64
	if err := querier.QueryRow(ctx, countLikesQuery, storyID).Scan(&count); err != nil {
		r.logger.Error("Failed to count likes for story", zap.String("storyID", storyID.String()), zap.Error(err))
		return 0, fmt.Errorf("%w: failed to count likes: %w", models.ErrInternalServer, err)
	}
	return count, nil
}

func (r *pgLikeRepository) LikedStoryIDs(ctx context.Context, querier interfaces.DBTX, username string, storyIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return selectIDSet(ctx, querier, r.logger, "likes", likedStoryIDsQuery, username, storyIDs)
}

func (r *pgLikeRepository) DeleteByStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) error {
	if _, err := querier.Exec(ctx, deleteLikesByStorySQL, storyID); err != nil {
		r.logger.Error("Failed to delete story likes", zap.String("storyID", storyID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete story likes: %w", models.ErrInternalServer, err)
	}
	return nil
}

// selectIDSet runs query(username, ids) returning one story_id column.
func selectIDSet(ctx context.Context, querier interfaces.DBTX, logger *zap.Logger, kind, query, username string, storyIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(storyIDs))
	if username == "" || len(storyIDs) == 0 {
		return result, nil
	}
	rows, err := querier.Query(ctx, query, username, uuidArray(storyIDs))
	if err != nil {
		logger.Error("Failed to query story id set", zap.String("kind", kind), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to query %s: %w", models.ErrInternalServer, kind, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: failed to scan %s row: %w", models.ErrInternalServer, kind, err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate %s rows: %w", models.ErrInternalServer, kind, err)
	}
	return result, nil
}
