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

const storyFields = `id, title, content, description, writers, timeline_json, is_published, like_count, author_username, created_at, updated_at`

const (
	createStoryQuery = `
		INSERT INTO stories (id, title, content, description, writers, timeline_json, is_published, like_count, author_username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $9)`
	getStoryByIDQuery          = `SELECT ` + storyFields + ` FROM stories WHERE id = $1`
	getStoryByIDForUpdateQuery = `SELECT ` + storyFields + ` FROM stories WHERE id = $1 FOR UPDATE`
	updateStoryQuery           = `
		UPDATE stories
		SET title = $2, content = $3, description = $4, writers = $5, timeline_json = $6, is_published = $7, updated_at = NOW()
		WHERE id = $1`
	deleteStoryQuery       = `DELETE FROM stories WHERE id = $1`
	existsByAuthorTitleSQL = `SELECT EXISTS (SELECT 1 FROM stories WHERE author_username = $1 AND title = $2 AND id <> $3)`
	setPublishedQuery      = `UPDATE stories SET is_published = $2, updated_at = NOW() WHERE id = $1`
	listPublishedQuery     = `SELECT ` + storyFields + ` FROM stories WHERE is_published = TRUE ORDER BY seq`
	listByAuthorQuery      = `SELECT ` + storyFields + ` FROM stories WHERE author_username = $1 ORDER BY seq`
	listByIDsQuery         = `SELECT ` + storyFields + ` FROM stories WHERE id = ANY($1::uuid[]) ORDER BY seq`
	// Counter moves only together with a story_likes row change, in the same tx
	incrementLikeCountSQL  = `UPDATE stories SET like_count = like_count + 1 WHERE id = $1`
	decrementLikeCountSQL  = `UPDATE stories SET like_count = GREATEST(0, like_count - 1) WHERE id = $1`
	deleteStoryImagesQuery = `DELETE FROM story_images WHERE story_id = $1`
	insertStoryImageQuery  = `INSERT INTO story_images (id, story_id, url, position) VALUES ($1, $2, $3, $4)`
	listStoryImagesQuery   = `SELECT id, story_id, url, position FROM story_images WHERE story_id = ANY($1::uuid[]) ORDER BY story_id, position`
)

type pgStoryRepository struct {
	logger *zap.Logger
}

// Compile-time check
var _ interfaces.StoryRepository = (*pgStoryRepository)(nil)

// NewPgStoryRepository creates the PostgreSQL story repository.
func NewPgStoryRepository(logger *zap.Logger) interfaces.StoryRepository {
	return &pgStoryRepository{logger: logger.Named("PgStoryRepo")}
}

func (r *pgStoryRepository) Create(ctx context.Context, querier interfaces.DBTX, story *models.Story) error {
	if story.ID == uuid.Nil {
		story.ID = uuid.New()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now().UTC()
	}
	story.UpdatedAt = story.CreatedAt
	story.LikeCount = 0
	logFields := []zap.Field{
		zap.String("storyID", story.ID.String()),
		zap.String("author", story.AuthorUsername),
	}
	r.logger.Debug("Creating story", logFields...)

	_, err := querier.Exec(ctx, createStoryQuery,
		story.ID, story.Title, story.Content, story.Description, story.Writers,
		story.TimelineJSON, story.IsPublished, story.AuthorUsername, story.CreatedAt,
	)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgUniqueViolation {
			r.logger.Warn("Story title already used by author", append(logFields, zap.String("constraint", constraint))...)
			return fmt.Errorf("%w: story title already exists for this author", models.ErrConflict)
		}
		r.logger.Error("Failed to create story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("%w: failed to create story: %w", models.ErrInternalServer, err)
	}
	return nil
}

func (r *pgStoryRepository) GetByID(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Story, error) {
	return r.get(ctx, querier, getStoryByIDQuery, id)
}

func (r *pgStoryRepository) GetByIDForUpdate(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Story, error) {
	return r.get(ctx, querier, getStoryByIDForUpdateQuery, id)
}

func (r *pgStoryRepository) get(ctx context.Context, querier interfaces.DBTX, query string, id uuid.UUID) (*models.Story, error) {
	var story models.Story
	if err := pgxscan.Get(ctx, querier, &story, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story not found", zap.String("storyID", id.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get story", zap.String("storyID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get story %s: %w", models.ErrInternalServer, id, err)
	}
	return &story, nil
}

func (r *pgStoryRepository) Update(ctx context.Context, querier interfaces.DBTX, story *models.Story) error {
	logFields := []zap.Field{zap.String("storyID", story.ID.String())}
	tag, err := querier.Exec(ctx, updateStoryQuery,
		story.ID, story.Title, story.Content, story.Description, story.Writers, story.TimelineJSON, story.IsPublished,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			r.logger.Warn("Story title collides with another story of the author", logFields...)
			return fmt.Errorf("%w: story title already exists for this author", models.ErrConflict)
		}
		r.logger.Error("Failed to update story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("%w: failed to update story: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgStoryRepository) Delete(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) error {
	tag, err := querier.Exec(ctx, deleteStoryQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete story", zap.String("storyID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete story: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Info("Story deleted", zap.String("storyID", id.String()))
	return nil
}

func (r *pgStoryRepository) ExistsByAuthorAndTitle(ctx context.Context, querier interfaces.DBTX, author, title string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	if err := querier.QueryRow(ctx, existsByAuthorTitleSQL, author, title, excludeID).Scan(&exists); err != nil {
		r.logger.Error("Failed to check story title uniqueness",
			zap.String("author", author), zap.String("title", title), zap.Error(err))
		return false, fmt.Errorf("%w: failed to check story title: %w", models.ErrInternalServer, err)
	}
	return exists, nil
}

func (r *pgStoryRepository) SetPublished(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, published bool) error {
	tag, err := querier.Exec(ctx, setPublishedQuery, id, published)
	if err != nil {
		r.logger.Error("Failed to set publish flag", zap.String("storyID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to set publish flag: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgStoryRepository) ListPublished(ctx context.Context, querier interfaces.DBTX) ([]*models.Story, error) {
	return r.list(ctx, querier, "published", listPublishedQuery)
}

func (r *pgStoryRepository) ListByAuthor(ctx context.Context, querier interfaces.DBTX, author string) ([]*models.Story, error) {
	return r.list(ctx, querier, "by_author", listByAuthorQuery, author)
}

func (r *pgStoryRepository) ListByIDs(ctx context.Context, querier interfaces.DBTX, ids []uuid.UUID) ([]*models.Story, error) {
	if len(ids) == 0 {
		return []*models.Story{}, nil
	}
	return r.list(ctx, querier, "by_ids", listByIDsQuery, uuidArray(ids))
}

func (r *pgStoryRepository) list(ctx context.Context, querier interfaces.DBTX, kind, query string, args ...interface{}) ([]*models.Story, error) {
	stories := make([]*models.Story, 0)
	if err := pgxscan.Select(ctx, querier, &stories, query, args...); err != nil {
		r.logger.Error("Failed to list stories", zap.String("kind", kind), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list stories (%s): %w", models.ErrInternalServer, kind, err)
	}
	return stories, nil
}

// IncrementLikeCount must run in the same transaction that inserted the like row.
func (r *pgStoryRepository) IncrementLikeCount(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) error {
	tag, err := querier.Exec(ctx, incrementLikeCountSQL, id)
	if err != nil {
		r.logger.Error("Failed to increment like counter", zap.String("storyID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to increment likes_count: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DecrementLikeCount must run in the same transaction that deleted the like row.
func (r *pgStoryRepository) DecrementLikeCount(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) error {
	tag, err := querier.Exec(ctx, decrementLikeCountSQL, id)
	if err != nil {
		r.logger.Error("Failed to decrement like counter", zap.String("storyID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to decrement likes_count: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgStoryRepository) ReplaceImages(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, urls []string) error {
	if err := r.DeleteImages(ctx, querier, storyID); err != nil {
		return err
	}
	for i, url := range urls {
		if _, err := querier.Exec(ctx, insertStoryImageQuery, uuid.New(), storyID, url, i); err != nil {
			r.logger.Error("Failed to insert story image",
				zap.String("storyID", storyID.String()), zap.Int("position", i), zap.Error(err))
			return fmt.Errorf("%w: failed to insert story image: %w", models.ErrInternalServer, err)
		}
	}
	return nil
}

func (r *pgStoryRepository) DeleteImages(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) error {
	if _, err := querier.Exec(ctx, deleteStoryImagesQuery, storyID); err != nil {
		r.logger.Error("Failed to delete story images", zap.String("storyID", storyID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete story images: %w", models.ErrInternalServer, err)
	}
	return nil
}

func (r *pgStoryRepository) ListImageURLs(ctx context.Context, querier interfaces.DBTX, storyIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	result := make(map[uuid.UUID][]string, len(storyIDs))
	if len(storyIDs) == 0 {
		return result, nil
	}
	var images []models.StoryImage
	if err := pgxscan.Select(ctx, querier, &images, listStoryImagesQuery, uuidArray(storyIDs)); err != nil {
		r.logger.Error("Failed to list story images", zap.Int("storyCount", len(storyIDs)), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list story images: %w", models.ErrInternalServer, err)
	}
	for _, img := range images {
		result[img.StoryID] = append(result[img.StoryID], img.URL)
	}
	return result, nil
}
