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

const characterFields = `id, story_id, name, description, role, actor_name, image_url, position, created_at`

const (
	insertCharacterQuery = `
		INSERT INTO characters (id, story_id, name, description, role, actor_name, image_url, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	getCharacterByIDQuery = `SELECT ` + characterFields + ` FROM characters WHERE id = $1`
	updateCharacterQuery  = `
		UPDATE characters SET name = $2, description = $3, role = $4, actor_name = $5, image_url = $6
		WHERE id = $1`
	deleteCharacterQuery         = `DELETE FROM characters WHERE id = $1`
	deleteCharactersByStoryQuery = `DELETE FROM characters WHERE story_id = $1`
	listCharactersByStoriesQuery = `SELECT ` + characterFields + ` FROM characters WHERE story_id = ANY($1::uuid[]) ORDER BY story_id, position`
	listCharactersByAuthorQuery  = `
		SELECT c.id, c.story_id, c.name, c.description, c.role, c.actor_name, c.image_url, c.position, c.created_at
		FROM characters c
		JOIN stories s ON s.id = c.story_id
		WHERE s.author_username = $1
		ORDER BY s.seq, c.position`
)

type pgCharacterRepository struct {
	logger *zap.Logger
}

var _ interfaces.CharacterRepository = (*pgCharacterRepository)(nil)

// NewPgCharacterRepository creates the PostgreSQL character repository.
func NewPgCharacterRepository(logger *zap.Logger) interfaces.CharacterRepository {
	return &pgCharacterRepository{logger: logger.Named("PgCharacterRepo")}
}

func (r *pgCharacterRepository) Create(ctx context.Context, querier interfaces.DBTX, c *models.Character) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := querier.Exec(ctx, insertCharacterQuery,
		c.ID, c.StoryID, c.Name, c.Description, c.Role, c.ActorName, c.ImageURL, c.Position, c.CreatedAt,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			r.logger.Warn("Owning story not found for character", zap.String("characterID", c.ID.String()))
			return models.ErrNotFound
		}
		r.logger.Error("Failed to insert character", zap.String("characterID", c.ID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to insert character: %w", models.ErrInternalServer, err)
	}
	return nil
}

func (r *pgCharacterRepository) GetByID(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Character, error) {
	var c models.Character
	if err := pgxscan.Get(ctx, querier, &c, getCharacterByIDQuery, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get character", zap.String("characterID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get character %s: %w", models.ErrInternalServer, id, err)
	}
	return &c, nil
}

func (r *pgCharacterRepository) Update(ctx context.Context, querier interfaces.DBTX, c *models.Character) error {
	tag, err := querier.Exec(ctx, updateCharacterQuery, c.ID, c.Name, c.Description, c.Role, c.ActorName, c.ImageURL)
	if err != nil {
		r.logger.Error("Failed to update character", zap.String("characterID", c.ID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to update character: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgCharacterRepository) Delete(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) error {
	tag, err := querier.Exec(ctx, deleteCharacterQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete character", zap.String("characterID", id.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete character: %w", models.ErrInternalServer, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgCharacterRepository) ReplaceForStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID, characters []models.Character) error {
	if err := r.DeleteByStory(ctx, querier, storyID); err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range characters {
		c := characters[i]
		c.ID = uuid.New()
		c.StoryID = &storyID
		c.Position = i
		c.CreatedAt = now
		if err := r.Create(ctx, querier, &c); err != nil {
			return err
		}
	}
	r.logger.Debug("Story characters replaced", zap.String("storyID", storyID.String()), zap.Int("count", len(characters)))
	return nil
}

func (r *pgCharacterRepository) DeleteByStory(ctx context.Context, querier interfaces.DBTX, storyID uuid.UUID) error {
	if _, err := querier.Exec(ctx, deleteCharactersByStoryQuery, storyID); err != nil {
		r.logger.Error("Failed to delete story characters", zap.String("storyID", storyID.String()), zap.Error(err))
		return fmt.Errorf("%w: failed to delete story characters: %w", models.ErrInternalServer, err)
	}
	return nil
}

func (r *pgCharacterRepository) ListByStories(ctx context.Context, querier interfaces.DBTX, storyIDs []uuid.UUID) (map[uuid.UUID][]models.Character, error) {
	result := make(map[uuid.UUID][]models.Character, len(storyIDs))
	if len(storyIDs) == 0 {
		return result, nil
	}
	var rows []models.Character
	if err := pgxscan.Select(ctx, querier, &rows, listCharactersByStoriesQuery, uuidArray(storyIDs)); err != nil {
		r.logger.Error("Failed to list characters by stories", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list characters: %w", models.ErrInternalServer, err)
	}
	for _, c := range rows {
		if c.StoryID == nil {
			continue
		}
		result[*c.StoryID] = append(result[*c.StoryID], c)
	}
	return result, nil
}

func (r *pgCharacterRepository) ListByAuthor(ctx context.Context, querier interfaces.DBTX, author string) ([]models.Character, error) {
	rows := make([]models.Character, 0)
	if err := pgxscan.Select(ctx, querier, &rows, listCharactersByAuthorQuery, author); err != nil {
		r.logger.Error("Failed to list characters by author", zap.String("author", author), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list characters by author: %w", models.ErrInternalServer, err)
	}
	return rows, nil
}
