package service

import (
	"context"
	"fmt"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReplaceEngine swaps the owned collections of a story (characters, image URLs)
// for the submitted ones. Character identities are not preserved across updates.
// It always runs on the querier of the surrounding story transaction.
type ReplaceEngine struct {
	storyRepo     interfaces.StoryRepository
	characterRepo interfaces.CharacterRepository
	logger        *zap.Logger
}

// NewReplaceEngine creates a ReplaceEngine.
func NewReplaceEngine(
	storyRepo interfaces.StoryRepository,
	characterRepo interfaces.CharacterRepository,
	logger *zap.Logger,
) *ReplaceEngine {
	return &ReplaceEngine{
		storyRepo:     storyRepo,
		characterRepo: characterRepo,
		logger:        logger.Named("ReplaceEngine"),
	}
}

// ReplaceStoryContent deletes the current characters and images of the story and
// inserts the submitted ones in submission order. Nil slices mean "none".
func (e *ReplaceEngine) ReplaceStoryContent(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID, characters []models.CharacterInput, imageURLs []string) error {
	rows := make([]models.Character, len(characters))
	for i, in := range characters {
		rows[i] = models.Character{
			Name:        in.Name,
			Description: in.Description,
			Role:        in.Role,
			ActorName:   in.ActorName,
			ImageURL:    in.ImageURL,
		}
	}
	if imageURLs == nil {
		imageURLs = []string{}
	}

	if err := e.characterRepo.ReplaceForStory(ctx, tx, storyID, rows); err != nil {
		return fmt.Errorf("replace characters: %w", err)
	}
	if err := e.storyRepo.ReplaceImages(ctx, tx, storyID, imageURLs); err != nil {
		return fmt.Errorf("replace images: %w", err)
	}
	e.logger.Debug("Story content replaced",
		zap.String("storyID", storyID.String()),
		zap.Int("characters", len(rows)),
		zap.Int("images", len(imageURLs)),
	)
	return nil
}
