package service_test

import (
	"context"
	"testing"
	"time"

	"story-server/shared/interfaces"
	sharedMocks "story-server/shared/interfaces/mocks"
	"story-server/shared/models"
	"story-server/story-service/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// passthroughTx runs fn without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithTx(_ context.Context, fn func(tx interfaces.DBTX) error) error {
	return fn(nil)
}

type storyFixture struct {
	stories   *sharedMocks.StoryRepository
	chars     *sharedMocks.CharacterRepository
	scenes    *sharedMocks.SceneRepository
	likes     *sharedMocks.LikeRepository
	favorites *sharedMocks.FavoriteRepository
	comments  *sharedMocks.CommentRepository
	storage   *sharedMocks.MediaStorage
	publisher *sharedMocks.StoryEventPublisher
	svc       service.StoryService
}

func newStoryFixture(t *testing.T) *storyFixture {
	f := &storyFixture{
		stories:   sharedMocks.NewStoryRepository(t),
		chars:     sharedMocks.NewCharacterRepository(t),
		scenes:    sharedMocks.NewSceneRepository(t),
		likes:     sharedMocks.NewLikeRepository(t),
		favorites: sharedMocks.NewFavoriteRepository(t),
		comments:  sharedMocks.NewCommentRepository(t),
		storage:   sharedMocks.NewMediaStorage(t),
		publisher: sharedMocks.NewStoryEventPublisher(t),
	}
	f.svc = service.NewStoryService(service.StoryServiceDeps{
		Transactor:    passthroughTx{},
		StoryRepo:     f.stories,
		CharacterRepo: f.chars,
		SceneRepo:     f.scenes,
		LikeRepo:      f.likes,
		FavoriteRepo:  f.favorites,
		CommentRepo:   f.comments,
		Storage:       f.storage,
		Publisher:     f.publisher,
	}, zap.NewNop())
	return f
}

// expectEmptyProjection stubs the batch loads of the story projector with empty results.
func (f *storyFixture) expectEmptyProjection() {
	f.chars.On("ListByStories", mock.Anything, mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]models.Character{}, nil).Maybe()
	f.stories.On("ListImageURLs", mock.Anything, mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]string{}, nil).Maybe()
	f.comments.On("CountByStories", mock.Anything, mock.Anything, mock.Anything).
		Return(map[uuid.UUID]int{}, nil).Maybe()
	f.likes.On("LikedStoryIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(map[uuid.UUID]bool{}, nil).Maybe()
	f.favorites.On("FavoritedStoryIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(map[uuid.UUID]bool{}, nil).Maybe()
}

func (f *storyFixture) expectEvent(eventType models.StoryEventType) {
	f.publisher.On("PublishStoryEvent", mock.Anything, mock.MatchedBy(func(e models.StoryEvent) bool {
		return e.Type == eventType
	})).Return(nil).Once()
}

func newStory(author string, published bool) *models.Story {
	now := time.Now().UTC()
	return &models.Story{
		ID:             uuid.New(),
		Title:          "The Lighthouse",
		Content:        "Once upon a time",
		AuthorUsername: author,
		IsPublished:    published,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func boolPtr(b bool) *bool { return &b }
