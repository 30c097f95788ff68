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

const sceneFields = `id, story_id, title, description, scene_order, character_names, created_at`

const (
	insertSceneQuery = `
		INSERT INTO scenes (id, story_id, title, description, scene_order, character_names, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	getSceneByIDQuery = `SELECT ` + sceneFields + ` FROM scenes WHERE id = $1`
	updateSceneQuery  = `
		UPDATE scenes SET title = $2, description = $3, scene_order = $4, character_names = $5
		WHERE id = $1`
	deleteSceneMediaQuery    = `DELETE FROM scene_media WHERE scene_id = $1`
	deleteSceneQuery         = `DELETE FROM scenes WHERE id = $1`
	listScenesByStoryQuery   = `SELECT ` + sceneFields + ` FROM scenes WHERE story_id = $1 ORDER BY scene_order, seq`
	deleteMediaByStoryQuery  = `DELETE FROM scene_media WHERE scene_id IN (SELECT id FROM scenes WHERE story_id = $1)`
	deleteScenesByStoryQuery = `DELETE FROM scenes WHERE story_id = $1`
	insertSceneMediaQuery    = `INSERT INTO scene_media (id, scene_id, url, media_type, created_at) VALUES ($1, $2, $3, $4, $5)`
	listMediaBySceneIDsQuery = `SELECT id, scene_id, url, media_type, created_at FROM scene_media WHERE scene_id = ANY($1::uuid[]) ORDER BY seq`
)

type pgSceneRepository struct {
	logger *zap.Logger
}

var _ interfaces.SceneRepository = (*pgSceneRepository)(nil)

// NewPgSceneRepository creates the PostgreSQL scene repository.
func NewPgSceneRepository(logger *zap.Logger) interfaces.SceneRepository {
	return &pgSceneRepository{logger: logger.Named("PgSceneRepo")}
}

func (r *pgSceneRepository) Create(ctx context.Context, querier interfaces.DBTX, scene *models.Scene) error {
	if scene.ID == uuid.Nil {
		scene.ID = uuid.New()
	}
	if scene.CreatedAt.IsZero() {
		scene.CreatedAt = time.Now().UTC()
	}
	logFields := []zap.Field{
		zap.String("sceneID", scene.ID.String()),
		zap.String("storyID", scene.StoryID.String()),
	}
	_, err := querier.Exec(ctx, insertSceneQuery,
		scene.ID, scene.StoryID, scene.Title, scene.Description, scene.Order, textArray(scene.CharacterNames), scene.CreatedAt,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			r.logger.Warn("Story not found for scene (foreign key violation)", logFields...)
			return models.ErrNotFound
		}
		r.logger.Error("Failed to insert scene", append(logFields, zap.Error(err))...)
		return fmt.Errorf("%w: failed to insert scene: %w", models.ErrInternalServer, err)
	}
	return nil
}

func (r *pgSceneRepository) GetByID(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Scene, error) {
	var scene models.Scene
	if err := pgxscan.Get(ctx, querier, &scene, getSceneByIDQuery, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get scene", zap.String("sceneID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get scene %s: %w", models.ErrInternalServer, id, err)
	}
	scenes := []*models.Scene{&scene}
	if err := r.attachMedia(ctx, querier, scenes); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (r *pgSceneRepository) Update(ctx context.Context, querier interfaces.DBTX, scene *models.Scene) error {
	tag, err := querier.Exec(ctx, updateSceneQuery,
		scene.ID, scene.Title, scene.Description, scene.Order, textArray(scene.CharacterNames),
	)
	if err != nil {
		r.logger.Error("Failed to update scene", zap.String("sceneID", scene.ID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to update scene: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes media first, then the scene.
func (r *pgSceneRepository) Delete(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) error {
	if _, err := querier.Exec(ctx, deleteSceneMediaQuery, id); err != nil {
		r.logger.Error("Failed to delete scene media", zap.String("sceneID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete scene media: %w", models.ErrInternalServer, err)
	}
	tag, err := querier.Exec(ctx, deleteSceneQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete scene", zap.String("sceneID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete scene: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgSceneRepository) ListByStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) ([]*models.Scene, error) {
	scenes := make([]*models.Scene, 0)
	if err := pgxscan.Select(ctx, querier, &scenes, listScenesByStoryQuery, storyID); err != nil {
		r.logger.Error("Failed to list scenes", zap.String("storyID", storyID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list scenes: %w", models.ErrInternalServer, err)
	}
	if err := r.attachMedia(ctx, querier, scenes); err != nil {
		return nil, err
	}
	return scenes, nil
}

func (r *pgSceneRepository) DeleteByStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) error {
	logFields := []zap.Field{zap.String("storyID", storyID.String())}
	if _, err := querier.Exec(ctx, deleteMediaByStoryQuery, storyID); err != nil {
		r.logger.Error("Failed to delete media of story scenes", append(logFields, zap.Error(err))...)
		return fmt.Errorf("%w: failed to delete scene media by story: %w", models.ErrInternalServer, err)
	}
	if _, err := querier.Exec(ctx, deleteScenesByStoryQuery, storyID); err != nil {
		r.logger.Error("Failed to delete story scenes", append(logFields, zap.Error(err))...)
		return fmt.Errorf("%w: failed to delete scenes by story: %w", models.ErrInternalServer, err)
	}
	return nil
}

func (r *pgSceneRepository) AddMedia(ctx context.Context, querier interfaces.DBTX, media []models.SceneMedia) error {
	now := time.Now().UTC()
	for i := range media {
		m := &media[i]
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		if _, err := querier.Exec(ctx, insertSceneMediaQuery, m.ID, m.SceneID, m.URL, string(m.Type), m.CreatedAt); err != nil {
			if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
				return models.ErrNotFound
			}
			r.logger.Error("Failed to insert scene media",
				zap.String("sceneID", m.SceneID.String()), zap.String("type", string(m.Type)), zap.Error(err))
			return fmt.Errorf("%w: failed to insert scene media: %w", models.ErrInternalServer, err)
		}
	}
	return nil
}

func (r *pgSceneRepository) attachMedia(ctx context.Context, querier interfaces.DBTX, scenes []*models.Scene) error {
	if len(scenes) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(scenes))
	byID := make(map[uuid.UUID]*models.Scene, len(scenes))
	for i, s := range scenes {
		ids[i] = s.ID
		byID[s.ID] = s
		s.Media = []models.SceneMedia{}
	}
	var media []models.SceneMedia
	if err := pgxscan.Select(ctx, querier, &media, listMediaBySceneIDsQuery, uuidArray(ids)); err != nil {
		r.logger.Error("Failed to list scene media", zap.Int("sceneCount", len(ids)), zap.Error(err))
		return fmt.Errorf("%w: failed to list scene media: %w", models.ErrInternalServer, err)
	}
	for _, m := range media {
		if s, ok := byID[m.SceneID]; ok {
			s.Media = append(s.Media, m)
		}
	}
	return nil
}
