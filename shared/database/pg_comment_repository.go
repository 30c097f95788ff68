package database

import (
	"context"
	"errors"
	"fmt"
	"story-server/shared/interfaces"
	"story-server/shared/models"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	insertCommentQuery        = `INSERT INTO story_comments (id, story_id, username, content, created_at) VALUES ($1, $2, $3, $4, $5)`
	getCommentByIDQuery       = `SELECT id, story_id, username, content, created_at FROM story_comments WHERE id = $1`
	deleteCommentQuery        = `DELETE FROM story_comments WHERE id = $1`
	listCommentsByStoryQuery  = `SELECT id, story_id, username, content, created_at FROM story_comments WHERE story_id = $1 ORDER BY created_at DESC, seq DESC`
	countCommentsByStoriesSQL = `SELECT story_id, COUNT(*) AS cnt FROM story_comments WHERE story_id = ANY($1::uuid[]) GROUP BY story_id`
	deleteCommentsByStorySQL  = `DELETE FROM story_comments WHERE story_id = $1`
)

type pgCommentRepository struct {
	logger *zap.Logger
}

var _ interfaces.CommentRepository = (*pgCommentRepository)(nil)

// NewPgCommentRepository creates the comment repository.
func NewPgCommentRepository(logger *zap.Logger) interfaces.CommentRepository {
	return &pgCommentRepository{logger: logger.Named("PgCommentRepo")}
}

func (r *pgCommentRepository) Create(ctx context.Context, querier interfaces.DBTX, c *models.Comment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := querier.Exec(ctx, insertCommentQuery, c.ID, c.StoryID, c.Username, c.Content, c.CreatedAt)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return models.ErrNotFound
		}
		r.logger.Error("Failed to insert comment", zap.String("storyID", c.StoryID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to insert comment: %w", models.ErrInternalServer, err)
	}
	return nil
}

func (r *pgCommentRepository) GetByID(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Comment, error) {
	var c models.Comment
	if err := pgxscan.Get(ctx, querier, &c, getCommentByIDQuery, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get comment", zap.String("commentID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get comment %s: %w", models.ErrInternalServer, id, err)
	}
	return &c, nil
}

func (r *pgCommentRepository) Delete(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) error {
	tag, err := querier.Exec(ctx, deleteCommentQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete comment", zap.String("commentID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete comment: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgCommentRepository) ListByStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	if err := pgxscan.Select(ctx, querier, &comments, listCommentsByStoryQuery, storyID); err != nil {
		r.logger.Error("Failed to list comments", zap.String("storyID", storyID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list comments: %w", models.ErrInternalServer, err)
	}
	return comments, nil
}

type commentCountRow struct {
	StoryID uuid.UUID `db:"story_id"`
	Cnt     int       `db:"cnt"`
}

func (r *pgCommentRepository) CountByStories(ctx context.Context, querier interfaces.DBTX, storyIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int, len(storyIDs))
	if len(storyIDs) == 0 {
		return result, nil
	}
	var rows []commentCountRow
	if err := pgxscan.Select(ctx, querier, &rows, countCommentsByStoriesSQL, uuidArray(storyIDs)); err != nil {
		r.logger.Error("Failed to count comments", zap.Int("storyCount", len(storyIDs)), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to count comments: %w", models.ErrInternalServer, err)
	}
	for _, row := range rows {
		result[row.StoryID] = row.Cnt
	}
	return result, nil
}

func (r *pgCommentRepository) DeleteByStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) error {
	if _, err := querier.Exec(ctx, deleteCommentsByStorySQL, storyID); err != nil {
		r.logger.Error("Failed to delete story comments", zap.String("storyID", storyID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete story comments: %w", models.ErrInternalServer, err)
	}
	return nil
}
