package service_test

import (
	"context"
	"testing"

	sharedMocks "story-server/shared/interfaces/mocks"
	"story-server/shared/models"
	"story-server/story-service/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCharacterService(t *testing.T) {
	ctx := context.Background()
	setup := func(t *testing.T) (service.CharacterService, *sharedMocks.CharacterRepository, *sharedMocks.StoryRepository) {
		chars := sharedMocks.NewCharacterRepository(t)
		stories := sharedMocks.NewStoryRepository(t)
		return service.NewCharacterService(nil, passthroughTx{}, chars, stories, zap.NewNop()), chars, stories
	}

	t.Run("create standalone character", func(t *testing.T) {
		svc, chars, _ := setup(t)
		chars.On("Create", ctx, mock.Anything, mock.MatchedBy(func(c *models.Character) bool {
			return c.StoryID == nil && c.Name == "Wanderer"
		})).Return(nil).Once()

		view, err := svc.CreateCharacter(ctx, models.CharacterInput{Name: " Wanderer ", Role: "guide"}, "alice")

		require.NoError(t, err)
		assert.Equal(t, "Wanderer", view.Name)
		assert.Nil(t, view.StoryID)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.CreateCharacter(ctx, models.CharacterInput{Name: ""}, "alice")

		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("update requires story ownership", func(t *testing.T) {
		svc, chars, stories := setup(t)
		story := newStory("alice", true)
		c := &models.Character{ID: uuid.New(), StoryID: &story.ID, Name: "Keeper"}
		chars.On("GetByID", ctx, mock.Anything, c.ID).Return(c, nil).Once()
		stories.On("GetByID", ctx, mock.Anything, story.ID).Return(story, nil).Once()

		_, err := svc.UpdateCharacter(ctx, c.ID, models.CharacterInput{Name: "Thief"}, "bob")

		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("author updates character of own story", func(t *testing.T) {
		svc, chars, stories := setup(t)
		story := newStory("alice", true)
		c := &models.Character{ID: uuid.New(), StoryID: &story.ID, Name: "Keeper"}
		chars.On("GetByID", ctx, mock.Anything, c.ID).Return(c, nil).Once()
		stories.On("GetByID", ctx, mock.Anything, story.ID).Return(story, nil).Once()
		chars.On("Update", ctx, mock.Anything, mock.MatchedBy(func(u *models.Character) bool {
			return u.Name == "Old Keeper" && u.ActorName == "Jane"
		})).Return(nil).Once()

		view, err := svc.UpdateCharacter(ctx, c.ID, models.CharacterInput{Name: "Old Keeper", ActorName: "Jane"}, "alice")

		require.NoError(t, err)
		assert.Equal(t, "Old Keeper", view.Name)
	})

	t.Run("standalone character can be deleted by any actor", func(t *testing.T) {
		svc, chars, _ := setup(t)
		c := &models.Character{ID: uuid.New(), Name: "Orphan"}
		chars.On("GetByID", ctx, mock.Anything, c.ID).Return(c, nil).Once()
		chars.On("Delete", ctx, mock.Anything, c.ID).Return(nil).Once()

		assert.NoError(t, svc.DeleteCharacter(ctx, c.ID, "bob"))
	})

	t.Run("delete missing character", func(t *testing.T) {
		svc, chars, _ := setup(t)
		id := uuid.New()
		chars.On("GetByID", ctx, mock.Anything, id).Return(nil, models.ErrNotFound).Once()

		assert.ErrorIs(t, svc.DeleteCharacter(ctx, id, "bob"), models.ErrNotFound)
	})

	t.Run("list my characters", func(t *testing.T) {
		svc, chars, _ := setup(t)
		sid := uuid.New()
		chars.On("ListByAuthor", ctx, mock.Anything, "alice").Return([]models.Character{
			{ID: uuid.New(), StoryID: &sid, Name: "A"},
			{ID: uuid.New(), StoryID: &sid, Name: "B"},
		}, nil).Once()

		views, err := svc.ListMyCharacters(ctx, "alice")

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "B", views[1].Name)
	})
}
