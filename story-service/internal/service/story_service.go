package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoryService is the aggregate service behind every story, like, favorite and comment endpoint.
// viewer/actor is the verified username of the caller; viewer may be "" for anonymous reads.
//
//go:generate mockery --name StoryService --output ./mocks --outpkg mocks --case=underscore
type StoryService interface {
	CreateStory(ctx context.Context, input models.StoryInput, actor string) (*models.StoryView, error)
	UpdateStory(ctx context.Context, id uuid.UUID, input models.StoryInput, actor string) (*models.StoryView, error)
	DeleteStory(ctx context.Context, id uuid.UUID, actor string) error
	TogglePublish(ctx context.Context, id uuid.UUID, actor string) error
	GetStory(ctx context.Context, id uuid.UUID, viewer string) (*models.StoryView, error)
	ListPublicStories(ctx context.Context, viewer string) ([]models.StoryView, error)
	ListMyStories(ctx context.Context, actor string) ([]models.StoryView, error)

	LikeStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error)
	// UnlikeStory and UnfavoriteStory work on stories hidden from actor too, so a
	// like or favorite can be withdrawn after unpublishing. The view is nil then.
	UnlikeStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error)
	FavoriteStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error)
	UnfavoriteStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error)
	ListFavorites(ctx context.Context, actor string) ([]models.StoryView, error)

	AddComment(ctx context.Context, storyID uuid.UUID, actor, content string) (*models.CommentView, error)
	ListComments(ctx context.Context, storyID uuid.UUID, viewer string) ([]models.CommentView, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID, actor string) error

	UploadStoryImages(ctx context.Context, files []models.MediaFile) ([]string, error)
}

// StoryServiceDeps groups the collaborators of the story service.
type StoryServiceDeps struct {
	DB            interfaces.DBTX
	Transactor    interfaces.Transactor
	StoryRepo     interfaces.StoryRepository
	CharacterRepo interfaces.CharacterRepository
	SceneRepo     interfaces.SceneRepository
	LikeRepo      interfaces.LikeRepository
	FavoriteRepo  interfaces.FavoriteRepository
	CommentRepo   interfaces.CommentRepository
	Storage       interfaces.MediaStorage
	Publisher     interfaces.StoryEventPublisher
}

type storyServiceImpl struct {
	db           interfaces.DBTX
	tx           interfaces.Transactor
	storyRepo    interfaces.StoryRepository
	sceneRepo    interfaces.SceneRepository
	charRepo     interfaces.CharacterRepository
	favoriteRepo interfaces.FavoriteRepository
	commentRepo  interfaces.CommentRepository
	replacer     *ReplaceEngine
	ledger       *SocialLedger
	projector    *storyProjector
	uploader     *mediaUploader
	events       *eventNotifier
	logger       *zap.Logger
}

// NewStoryService creates a new StoryService.
func NewStoryService(deps StoryServiceDeps, logger *zap.Logger) StoryService {
	log := logger.Named("StoryService")
	return &storyServiceImpl{
		db:           deps.DB,
		tx:           deps.Transactor,
		storyRepo:    deps.StoryRepo,
		sceneRepo:    deps.SceneRepo,
		charRepo:     deps.CharacterRepo,
		favoriteRepo: deps.FavoriteRepo,
		commentRepo:  deps.CommentRepo,
		replacer:     NewReplaceEngine(deps.StoryRepo, deps.CharacterRepo, logger),
		ledger:       NewSocialLedger(deps.StoryRepo, deps.LikeRepo, deps.FavoriteRepo, deps.CommentRepo, logger),
		projector: &storyProjector{
			characterRepo: deps.CharacterRepo,
			storyRepo:     deps.StoryRepo,
			likeRepo:      deps.LikeRepo,
			favoriteRepo:  deps.FavoriteRepo,
			commentRepo:   deps.CommentRepo,
		},
		uploader: &mediaUploader{storage: deps.Storage, logger: log},
		events:   newEventNotifier(deps.Publisher, log),
		logger:   log,
	}
}

func (s *storyServiceImpl) CreateStory(ctx context.Context, input models.StoryInput, actor string) (*models.StoryView, error) {
	log := s.logger.With(zap.String("actor", actor))
	if err := validateStoryInput(input); err != nil {
		log.Warn("Rejected story create", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	story := &models.Story{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(input.Title),
		Content:        input.Content,
		Description:    input.Description,
		Writers:        input.Writers,
		TimelineJSON:   input.TimelineJSON,
		IsPublished:    input.IsPublished != nil && *input.IsPublished,
		AuthorUsername: actor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		// 1. Title must be unique per author
		exists, err := s.storyRepo.ExistsByAuthorAndTitle(ctx, tx, actor, story.Title, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: story title already exists for this author", models.ErrConflict)
		}
		// 2. Root row, then the owned collections
		if err := s.storyRepo.Create(ctx, tx, story); err != nil {
			return err
		}
		return s.replacer.ReplaceStoryContent(ctx, tx, story.ID, input.Characters, input.ImageURLs)
	})
	if err != nil {
		return nil, err
	}

	storiesMutatedTotal.WithLabelValues("create").Inc()
	log.Info("Story created", zap.String("storyID", story.ID.String()))
	s.events.notify(ctx, models.NewStoryEvent(models.EventStoryCreated, story.ID, actor))
	return s.projector.projectOne(ctx, s.db, story, actor)
}

func (s *storyServiceImpl) UpdateStory(ctx context.Context, id uuid.UUID, input models.StoryInput, actor string) (*models.StoryView, error) {
	log := s.logger.With(zap.String("storyID", id.String()), zap.String("actor", actor))

	var story *models.Story
	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		var err error
		// Row lock: concurrent updates of the same story serialize here
		story, err = s.storyRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !CanMutate(actor, story.AuthorUsername) {
			log.Warn("Story update denied", zap.String("owner", story.AuthorUsername))
			return models.ErrUnauthorized
		}
		if err := validateStoryInput(input); err != nil {
			return err
		}
		title := strings.TrimSpace(input.Title)
		// Own row excluded, so keeping the same title is fine
		exists, err := s.storyRepo.ExistsByAuthorAndTitle(ctx, tx, actor, title, id)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: story title already exists for this author", models.ErrConflict)
		}

		// likeCount and author are never taken from the request
		story.Title = title
		story.Content = input.Content
		story.Description = input.Description
		story.Writers = input.Writers
		story.TimelineJSON = input.TimelineJSON
		if input.IsPublished != nil {
			story.IsPublished = *input.IsPublished
		}
		if err := s.storyRepo.Update(ctx, tx, story); err != nil {
			return err
		}
		// Characters and images are replaced wholesale, never merged
		return s.replacer.ReplaceStoryContent(ctx, tx, id, input.Characters, input.ImageURLs)
	})
	if err != nil {
		return nil, err
	}

	storiesMutatedTotal.WithLabelValues("update").Inc()
	log.Info("Story updated")
	s.events.notify(ctx, models.NewStoryEvent(models.EventStoryUpdated, id, actor))
	return s.projector.projectOne(ctx, s.db, story, actor)
}

func (s *storyServiceImpl) DeleteStory(ctx context.Context, id uuid.UUID, actor string) error {
	log := s.logger.With(zap.String("storyID", id.String()), zap.String("actor", actor))

	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		story, err := s.storyRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !CanMutate(actor, story.AuthorUsername) {
			log.Warn("Story delete denied", zap.String("owner", story.AuthorUsername))
			return models.ErrUnauthorized
		}
		// Children first: scenes (with media), social facts, characters, images.
		if err := s.sceneRepo.DeleteByStory(ctx, tx, id); err != nil {
			return fmt.Errorf("delete scenes: %w", err)
		}
		if err := s.ledger.PurgeStory(ctx, tx, id); err != nil {
			return err
		}
		if err := s.charRepo.DeleteByStory(ctx, tx, id); err != nil {
			return fmt.Errorf("delete characters: %w", err)
		}
		if err := s.storyRepo.DeleteImages(ctx, tx, id); err != nil {
			return err
		}
		return s.storyRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	// Events only after commit; a rolled back delete publishes nothing
	storiesMutatedTotal.WithLabelValues("delete").Inc()
	log.Info("Story deleted")
	s.events.notify(ctx, models.NewStoryEvent(models.EventStoryDeleted, id, actor))
	return nil
}

func (s *storyServiceImpl) TogglePublish(ctx context.Context, id uuid.UUID, actor string) error {
	log := s.logger.With(zap.String("storyID", id.String()), zap.String("actor", actor))

	var published bool
	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		story, err := s.storyRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !CanMutate(actor, story.AuthorUsername) {
			log.Warn("Publish toggle denied", zap.String("owner", story.AuthorUsername))
			return models.ErrUnauthorized
		}
		published = !story.IsPublished
		return s.storyRepo.SetPublished(ctx, tx, id, published)
	})
	if err != nil {
		return err
	}

	eventType := models.EventStoryUnpublished
	if published {
		eventType = models.EventStoryPublished
	}
	storiesMutatedTotal.WithLabelValues("toggle_publish").Inc()
	log.Info("Story publish flag toggled", zap.Bool("isPublished", published))
	s.events.notify(ctx, models.NewStoryEvent(eventType, id, actor))
	return nil
}

func (s *storyServiceImpl) GetStory(ctx context.Context, id uuid.UUID, viewer string) (*models.StoryView, error) {
	story, err := s.visibleStory(ctx, s.db, id, viewer)
	if err != nil {
		return nil, err
	}
	return s.projector.projectOne(ctx, s.db, story, viewer)
}

func (s *storyServiceImpl) ListPublicStories(ctx context.Context, viewer string) ([]models.StoryView, error) {
	stories, err := s.storyRepo.ListPublished(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return s.projector.project(ctx, s.db, FilterVisible(stories, viewer), viewer)
}

func (s *storyServiceImpl) ListMyStories(ctx context.Context, actor string) ([]models.StoryView, error) {
	stories, err := s.storyRepo.ListByAuthor(ctx, s.db, actor)
	if err != nil {
		return nil, err
	}
	return s.projector.project(ctx, s.db, stories, actor)
}

func (s *storyServiceImpl) LikeStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error) {
	return s.socialAction(ctx, "like", id, actor, models.EventStoryLiked, s.ledger.Like, false)
}

func (s *storyServiceImpl) UnlikeStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error) {
	return s.socialAction(ctx, "unlike", id, actor, models.EventStoryUnliked, s.ledger.Unlike, true)
}

func (s *storyServiceImpl) FavoriteStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error) {
	return s.socialAction(ctx, "favorite", id, actor, "", s.ledger.Favorite, false)
}

func (s *storyServiceImpl) UnfavoriteStory(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error) {
	return s.socialAction(ctx, "unfavorite", id, actor, "", s.ledger.Unfavorite, true)
}

type ledgerFunc func(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID, username string) (bool, error)

// socialAction runs an idempotent ledger operation and returns the story as seen by
// actor after commit. eventType "" publishes nothing.
// A withdrawal only needs the story to exist; everything else needs it visible to actor.
func (s *storyServiceImpl) socialAction(ctx context.Context, action string, id uuid.UUID, actor string, eventType models.StoryEventType, apply ledgerFunc, withdrawal bool) (*models.StoryView, error) {
	log := s.logger.With(zap.String("action", action), zap.String("storyID", id.String()), zap.String("actor", actor))

	var changed bool
	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		if withdrawal {
			if _, err := s.storyRepo.GetByID(ctx, tx, id); err != nil {
				return err
			}
		} else if _, err := s.visibleStory(ctx, tx, id, actor); err != nil {
			return err
		}
		var err error
		changed, err = apply(ctx, tx, id, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	socialActionsTotal.WithLabelValues(action, changedLabel(changed)).Inc()
	log.Debug("Social action applied", zap.Bool("changed", changed))
	if changed && eventType != "" {
		s.events.notify(ctx, models.NewStoryEvent(eventType, id, actor))
	}
	// Re-read so likeCount reflects the committed counter.
	story, err := s.storyRepo.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !IsVisible(story, actor) {
		// Withdrawn from a story actor can no longer see; nothing to show.
		return nil, nil
	}
	return s.projector.projectOne(ctx, s.db, story, actor)
}

func (s *storyServiceImpl) ListFavorites(ctx context.Context, actor string) ([]models.StoryView, error) {
	ids, err := s.favoriteRepo.ListStoryIDsByUser(ctx, s.db, actor)
	if err != nil {
		return nil, err
	}
	stories, err := s.storyRepo.ListByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Story, len(stories))
	for _, st := range stories {
		byID[st.ID] = st
	}
	// Keep the order in which the stories were favorited.
	ordered := make([]*models.Story, 0, len(ids))
	for _, id := range ids {
		if st, ok := byID[id]; ok && IsVisible(st, actor) {
			ordered = append(ordered, st)
		}
	}
	return s.projector.project(ctx, s.db, ordered, actor)
}

func (s *storyServiceImpl) AddComment(ctx context.Context, storyID uuid.UUID, actor, content string) (*models.CommentView, error) {
	var comment *models.Comment
	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		if _, err := s.visibleStory(ctx, tx, storyID, actor); err != nil {
			return err
		}
		var err error
		comment, err = s.ledger.AddComment(ctx, tx, storyID, actor, content)
		return err
	})
	if err != nil {
		return nil, err
	}

	socialActionsTotal.WithLabelValues("comment", "true").Inc()
	event := models.NewStoryEvent(models.EventCommentAdded, storyID, actor)
	event.CommentID = &comment.ID
	s.events.notify(ctx, event)
	view := comment.ToView()
	return &view, nil
}

func (s *storyServiceImpl) ListComments(ctx context.Context, storyID uuid.UUID, viewer string) ([]models.CommentView, error) {
	if _, err := s.visibleStory(ctx, s.db, storyID, viewer); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByStory(ctx, s.db, storyID)
	if err != nil {
		return nil, err
	}
	views := make([]models.CommentView, len(comments))
	for i, c := range comments {
		views[i] = c.ToView()
	}
	return views, nil
}

func (s *storyServiceImpl) DeleteComment(ctx context.Context, commentID uuid.UUID, actor string) error {
	var comment *models.Comment
	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		var err error
		comment, err = s.ledger.DeleteComment(ctx, tx, commentID, actor)
		return err
	})
	if err != nil {
		return err
	}

	socialActionsTotal.WithLabelValues("uncomment", "true").Inc()
	event := models.NewStoryEvent(models.EventCommentDeleted, comment.StoryID, actor)
	event.CommentID = &comment.ID
	s.events.notify(ctx, event)
	return nil
}

func (s *storyServiceImpl) UploadStoryImages(ctx context.Context, files []models.MediaFile) ([]string, error) {
	files = nonEmpty(files)
	for _, f := range files {
		if err := ValidateExtension(models.MediaTypeImage, f.Filename); err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return []string{}, nil
	}
	return s.uploader.storeAll(ctx, storyImagesFolder, files)
}

// visibleStory loads a story and masks it as ErrNotFound when viewer may not see it.
func (s *storyServiceImpl) visibleStory(ctx context.Context, db interfaces.DBTX, id uuid.UUID, viewer string) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if !IsVisible(story, viewer) {
		s.logger.Debug("Story hidden from viewer", zap.String("storyID", id.String()), zap.String("viewer", viewer))
		return nil, models.ErrNotFound
	}
	return story, nil
}

func validateStoryInput(input models.StoryInput) error {
	return requireNonBlank("title", input.Title)
}
