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

// SceneService manages the scenes of a story and their media.
//
//go:generate mockery --name SceneService --output ./mocks --outpkg mocks --case=underscore
type SceneService interface {
	CreateScene(ctx context.Context, input models.SceneInput, actor string) (*models.SceneView, error)
	UpdateScene(ctx context.Context, id uuid.UUID, input models.SceneInput, actor string) (*models.SceneView, error)
	ListScenes(ctx context.Context, storyID uuid.UUID, viewer string) ([]models.SceneView, error)
	DeleteScene(ctx context.Context, id uuid.UUID, actor string) error
	AddMedia(ctx context.Context, sceneID uuid.UUID, mediaType string, files []models.MediaFile, actor string) (*models.SceneView, error)
}

type sceneServiceImpl struct {
	db        interfaces.DBTX
	tx        interfaces.Transactor
	sceneRepo interfaces.SceneRepository
	storyRepo interfaces.StoryRepository
	uploader  *mediaUploader
	logger    *zap.Logger
}

// NewSceneService creates a new SceneService.
func NewSceneService(
	db interfaces.DBTX,
	tx interfaces.Transactor,
	sceneRepo interfaces.SceneRepository,
	storyRepo interfaces.StoryRepository,
	storage interfaces.MediaStorage,
	logger *zap.Logger,
) SceneService {
	log := logger.Named("SceneService")
	return &sceneServiceImpl{
		db:        db,
		tx:        tx,
		sceneRepo: sceneRepo,
		storyRepo: storyRepo,
		uploader:  &mediaUploader{storage: storage, logger: log},
		logger:    log,
	}
}

func (s *sceneServiceImpl) CreateScene(ctx context.Context, input models.SceneInput, actor string) (*models.SceneView, error) {
	if input.StoryID == nil || *input.StoryID == uuid.Nil {
		return nil, fmt.Errorf("%w: storyId is required", models.ErrValidation)
	}
	scene := &models.Scene{
		ID:        uuid.New(),
		StoryID:   *input.StoryID,
		CreatedAt: time.Now().UTC(),
	}
	applySceneInput(scene, input)

	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		if err := s.requireStoryAuthor(ctx, tx, scene.StoryID, actor); err != nil {
			return err
		}
		if err := requireNonBlank("title", scene.Title); err != nil {
			return err
		}
		return s.sceneRepo.Create(ctx, tx, scene)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Scene created", zap.String("sceneID", scene.ID.String()), zap.String("storyID", scene.StoryID.String()))
	view := scene.ToView()
	return &view, nil
}

// UpdateScene replaces the scalar fields and character names. Media is untouched.
func (s *sceneServiceImpl) UpdateScene(ctx context.Context, id uuid.UUID, input models.SceneInput, actor string) (*models.SceneView, error) {
	var scene *models.Scene
	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		var err error
		scene, err = s.sceneRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.requireStoryAuthor(ctx, tx, scene.StoryID, actor); err != nil {
			return err
		}
		if err := requireNonBlank("title", input.Title); err != nil {
			return err
		}
		applySceneInput(scene, input)
		return s.sceneRepo.Update(ctx, tx, scene)
	})
	if err != nil {
		return nil, err
	}
	view := scene.ToView()
	return &view, nil
}

func (s *sceneServiceImpl) ListScenes(ctx context.Context, storyID uuid.UUID, viewer string) ([]models.SceneView, error) {
	story, err := s.storyRepo.GetByID(ctx, s.db, storyID)
	if err != nil {
		return nil, err
	}
	if !IsVisible(story, viewer) {
		return nil, models.ErrNotFound
	}
	scenes, err := s.sceneRepo.ListByStory(ctx, s.db, storyID)
	if err != nil {
		return nil, err
	}
	views := make([]models.SceneView, len(scenes))
	for i, sc := range scenes {
		views[i] = sc.ToView()
	}
	return views, nil
}

func (s *sceneServiceImpl) DeleteScene(ctx context.Context, id uuid.UUID, actor string) error {
	return s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		scene, err := s.sceneRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.requireStoryAuthor(ctx, tx, scene.StoryID, actor); err != nil {
			return err
		}
		return s.sceneRepo.Delete(ctx, tx, id)
	})
}

// AddMedia validates every file before storing any of them, stores them, then
// appends the media rows. Files stored before a failed insert are left behind.
func (s *sceneServiceImpl) AddMedia(ctx context.Context, sceneID uuid.UUID, mediaType string, files []models.MediaFile, actor string) (*models.SceneView, error) {
	log := s.logger.With(zap.String("sceneID", sceneID.String()), zap.String("actor", actor))

	mt, err := models.ParseMediaType(mediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrValidation, err)
	}
	files = nonEmpty(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files uploaded", models.ErrValidation)
	}
	for _, f := range files {
		if err := ValidateExtension(mt, f.Filename); err != nil {
			return nil, err
		}
	}

	scene, err := s.sceneRepo.GetByID(ctx, s.db, sceneID)
	if err != nil {
		return nil, err
	}
	if err := s.requireStoryAuthor(ctx, s.db, scene.StoryID, actor); err != nil {
		return nil, err
	}

	urls, err := s.uploader.storeAll(ctx, sceneFolder(mt), files)
	if err != nil {
		return nil, err
	}
	media := make([]models.SceneMedia, len(urls))
	for i, url := range urls {
		media[i] = models.SceneMedia{ID: uuid.New(), SceneID: sceneID, URL: url, Type: mt}
	}

	err = s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		return s.sceneRepo.AddMedia(ctx, tx, media)
	})
	if err != nil {
		log.Error("Failed to record scene media", zap.Int("files", len(media)), zap.Error(err))
		return nil, err
	}
	scene.Media = append(scene.Media, media...)
	log.Info("Scene media added", zap.String("type", string(mt)), zap.Int("files", len(media)))
	view := scene.ToView()
	return &view, nil
}

func (s *sceneServiceImpl) requireStoryAuthor(ctx context.Context, db interfaces.DBTX, storyID uuid.UUID, actor string) error {
	story, err := s.storyRepo.GetByID(ctx, db, storyID)
	if err != nil {
		return err
	}
	if !CanMutate(actor, story.AuthorUsername) {
		s.logger.Warn("Scene mutation denied",
			zap.String("storyID", storyID.String()),
			zap.String("actor", actor),
			zap.String("owner", story.AuthorUsername),
		)
		return models.ErrUnauthorized
	}
	return nil
}

func applySceneInput(scene *models.Scene, input models.SceneInput) {
	scene.Title = strings.TrimSpace(input.Title)
	scene.Description = input.Description
	if input.Order != nil {
		scene.Order = *input.Order
	}
	scene.CharacterNames = input.CharacterNames
	if scene.CharacterNames == nil {
		scene.CharacterNames = []string{}
	}
}
