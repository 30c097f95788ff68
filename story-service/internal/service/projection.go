package service

import (
	"context"
	"fmt"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// storyProjector builds StoryViews for a viewer. Children and viewer flags are
// loaded in batches, one query per collection regardless of the page size.
// The batches run concurrently, so db must be the pool, never a transaction.
type storyProjector struct {
	characterRepo interfaces.CharacterRepository
	storyRepo     interfaces.StoryRepository
	likeRepo      interfaces.LikeRepository
	favoriteRepo  interfaces.FavoriteRepository
	commentRepo   interfaces.CommentRepository
}

func (p *storyProjector) project(ctx context.Context, db interfaces.DBTX, stories []*models.Story, viewer string) ([]models.StoryView, error) {
	views := make([]models.StoryView, 0, len(stories))
	if len(stories) == 0 {
		return views, nil
	}
	ids := collectStoryIDs(stories)

	var (
		characters map[uuid.UUID][]models.Character
		images     map[uuid.UUID][]string
		comments   map[uuid.UUID]int
		liked      map[uuid.UUID]bool
		favorited  map[uuid.UUID]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		characters, err = p.characterRepo.ListByStories(gctx, db, ids)
		return err
	})
	g.Go(func() (err error) {
		images, err = p.storyRepo.ListImageURLs(gctx, db, ids)
		return err
	})
	g.Go(func() (err error) {
		comments, err = p.commentRepo.CountByStories(gctx, db, ids)
		return err
	})
	if viewer != "" {
		g.Go(func() (err error) {
			liked, err = p.likeRepo.LikedStoryIDs(gctx, db, viewer, ids)
			return err
		})
		g.Go(func() (err error) {
			favorited, err = p.favoriteRepo.FavoritedStoryIDs(gctx, db, viewer, ids)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load story projections: %w", err)
	}

	for _, s := range stories {
		charViews := make([]models.CharacterView, 0, len(characters[s.ID]))
		for _, c := range characters[s.ID] {
			charViews = append(charViews, c.ToView())
		}
		urls := images[s.ID]
		if urls == nil {
			urls = []string{}
		}
		views = append(views, models.StoryView{
			ID:                       s.ID,
			Title:                    s.Title,
			Content:                  s.Content,
			Description:              s.Description,
			Writers:                  s.Writers,
			TimelineJSON:             s.TimelineJSON,
			ImageURLs:                urls,
			AuthorUsername:           s.AuthorUsername,
			CreatedAt:                s.CreatedAt,
			Characters:               charViews,
			IsPublished:              s.IsPublished,
			LikeCount:                s.LikeCount,
			IsLikedByCurrentUser:     liked[s.ID],
			IsFavoritedByCurrentUser: favorited[s.ID],
			CommentCount:             comments[s.ID],
		})
	}
	return views, nil
}

func (p *storyProjector) projectOne(ctx context.Context, db interfaces.DBTX, story *models.Story, viewer string) (*models.StoryView, error) {
	views, err := p.project(ctx, db, []*models.Story{story}, viewer)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
