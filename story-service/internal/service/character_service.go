package service

import (
	"context"
	"strings"
	"time"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CharacterService manages characters outside of the story aggregate.
//
//go:generate mockery --name CharacterService --output ./mocks --outpkg mocks --case=underscore
type CharacterService interface {
	CreateCharacter(ctx context.Context, input models.CharacterInput, actor string) (*models.CharacterView, error)
	UpdateCharacter(ctx context.Context, id uuid.UUID, input models.CharacterInput, actor string) (*models.CharacterView, error)
	DeleteCharacter(ctx context.Context, id uuid.UUID, actor string) error
	ListMyCharacters(ctx context.Context, actor string) ([]models.CharacterView, error)
}

type characterServiceImpl struct {
	db        interfaces.DBTX
	tx        interfaces.Transactor
	charRepo  interfaces.CharacterRepository
	storyRepo interfaces.StoryRepository
	logger    *zap.Logger
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(
	db interfaces.DBTX,
	tx interfaces.Transactor,
	charRepo interfaces.CharacterRepository,
	storyRepo interfaces.StoryRepository,
	logger *zap.Logger,
) CharacterService {
	return &characterServiceImpl{
		db:        db,
		tx:        tx,
		charRepo:  charRepo,
		storyRepo: storyRepo,
		logger:    logger.Named("CharacterService"),
	}
}

// CreateCharacter creates a standalone character with no owning story.
func (s *characterServiceImpl) CreateCharacter(ctx context.Context, input models.CharacterInput, actor string) (*models.CharacterView, error) {
	if err := requireNonBlank("name", input.Name); err != nil {
		return nil, err
	}
	c := &models.Character{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Role:        input.Role,
		ActorName:   input.ActorName,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.charRepo.Create(ctx, s.db, c); err != nil {
		return nil, err
	}
	s.logger.Info("Standalone character created", zap.String("characterID", c.ID.String()), zap.String("actor", actor))
	view := c.ToView()
	return &view, nil
}

func (s *characterServiceImpl) UpdateCharacter(ctx context.Context, id uuid.UUID, input models.CharacterInput, actor string) (*models.CharacterView, error) {
	var c *models.Character
	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		var err error
		c, err = s.loadForMutation(ctx, tx, id, actor)
		if err != nil {
			return err
		}
		if err := requireNonBlank("name", input.Name); err != nil {
			return err
		}
		c.Name = strings.TrimSpace(input.Name)
		c.Description = input.Description
		c.Role = input.Role
		c.ActorName = input.ActorName
		c.ImageURL = input.ImageURL
		return s.charRepo.Update(ctx, tx, c)
	})
	if err != nil {
		return nil, err
	}
	view := c.ToView()
	return &view, nil
}

// DeleteCharacter checks ownership only when the character belongs to a story.
// Standalone characters carry no owner and can be removed by any authenticated actor.
func (s *characterServiceImpl) DeleteCharacter(ctx context.Context, id uuid.UUID, actor string) error {
	return s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		if _, err := s.loadForMutation(ctx, tx, id, actor); err != nil {
			return err
		}
		if err := s.charRepo.Delete(ctx, tx, id); err != nil {
			return err
		}
		s.logger.Info("Character deleted", zap.String("characterID", id.String()), zap.String("actor", actor))
		return nil
	})
}

func (s *characterServiceImpl) ListMyCharacters(ctx context.Context, actor string) ([]models.CharacterView, error) {
	rows, err := s.charRepo.ListByAuthor(ctx, s.db, actor)
	if err != nil {
		return nil, err
	}
	views := make([]models.CharacterView, len(rows))
	for i, c := range rows {
		views[i] = c.ToView()
	}
	return views, nil
}

func (s *characterServiceImpl) loadForMutation(ctx context.Context, tx interfaces.DBTX, id uuid.UUID, actor string) (*models.Character, error) {
	c, err := s.charRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if c.StoryID == nil {
		return c, nil
	}
	story, err := s.storyRepo.GetByID(ctx, tx, *c.StoryID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, story.AuthorUsername) {
		s.logger.Warn("Character mutation denied",
			zap.String("characterID", id.String()),
			zap.String("actor", actor),
			zap.String("owner", story.AuthorUsername),
		)
		return nil, models.ErrUnauthorized
	}
	return c, nil
}
