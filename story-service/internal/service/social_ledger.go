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

// SocialLedger records likes, favorites and comments. Every method expects the
// querier of an open transaction; like and unlike adjust the cached like counter
// in that same transaction so the counter always equals the number of like rows.
type SocialLedger struct {
	storyRepo    interfaces.StoryRepository
	likeRepo     interfaces.LikeRepository
	favoriteRepo interfaces.FavoriteRepository
	commentRepo  interfaces.CommentRepository
	logger       *zap.Logger
}

// NewSocialLedger creates a SocialLedger.
func NewSocialLedger(
	storyRepo interfaces.StoryRepository,
	likeRepo interfaces.LikeRepository,
	favoriteRepo interfaces.FavoriteRepository,
	commentRepo interfaces.CommentRepository,
	logger *zap.Logger,
) *SocialLedger {
	return &SocialLedger{
		storyRepo:    storyRepo,
		likeRepo:     likeRepo,
		favoriteRepo: favoriteRepo,
		commentRepo:  commentRepo,
		logger:       logger.Named("SocialLedger"),
	}
}

// Like is idempotent. It returns true when a new like row was created.
func (l *SocialLedger) Like(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	added, err := l.likeRepo.AddLike(ctx, tx, storyID, username)
	if err != nil {
		return false, fmt.Errorf("add like: %w", err)
	}
	if !added {
		l.logger.Debug("Story already liked, nothing to do",
			zap.String("storyID", storyID.String()), zap.String("username", username))
		return false, nil
	}
	if err := l.storyRepo.IncrementLikeCount(ctx, tx, storyID); err != nil {
		return false, fmt.Errorf("increment like count: %w", err)
	}
	return true, nil
}

// Unlike is idempotent. It returns true when an existing like row was removed.
func (l *SocialLedger) Unlike(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	removed, err := l.likeRepo.RemoveLike(ctx, tx, storyID, username)
	if err != nil {
		return false, fmt.Errorf("remove like: %w", err)
	}
	if !removed {
		l.logger.Debug("Story was not liked, nothing to do",
			zap.String("storyID", storyID.String()), zap.String("username", username))
		return false, nil
	}
	if err := l.storyRepo.DecrementLikeCount(ctx, tx, storyID); err != nil {
		return false, fmt.Errorf("decrement like count: %w", err)
	}
	return true, nil
}

// Favorite is idempotent.
func (l *SocialLedger) Favorite(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	added, err := l.favoriteRepo.AddFavorite(ctx, tx, storyID, username)
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return added, nil
}

// Unfavorite is idempotent.
func (l *SocialLedger) Unfavorite(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID, username string) (bool, error) {
	removed, err := l.favoriteRepo.RemoveFavorite(ctx, tx, storyID, username)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	return removed, nil
}

// AddComment stores trimmed content. Blank content is ErrValidation.
func (l *SocialLedger) AddComment(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID, username, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if err := requireNonBlank("content", content); err != nil {
		return nil, err
	}
	comment := &models.Comment{
		ID:        uuid.New(),
		StoryID:   storyID,
		Username:  username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.commentRepo.Create(ctx, tx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment owned by actor and returns it.
// The story author has no special rights over other users' comments.
func (l *SocialLedger) DeleteComment(ctx context.Context, tx interfaces.DBTX, commentID uuid.UUID, actor string) (*models.Comment, error) {
	comment, err := l.commentRepo.GetByID(ctx, tx, commentID)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actor, comment.Username) {
		l.logger.Warn("Comment delete denied",
			zap.String("commentID", commentID.String()),
			zap.String("actor", actor),
			zap.String("owner", comment.Username),
		)
		return nil, models.ErrUnauthorized
	}
	if err := l.commentRepo.Delete(ctx, tx, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}

// PurgeStory removes every social fact attached to a story. Used by story deletion.
func (l *SocialLedger) PurgeStory(ctx context.Context, tx interfaces.DBTX, storyID uuid.UUID) error {
	if err := l.commentRepo.DeleteByStory(ctx, tx, storyID); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if err := l.likeRepo.DeleteByStory(ctx, tx, storyID); err != nil {
		return fmt.Errorf("delete likes: %w", err)
	}
	if err := l.favoriteRepo.DeleteByStory(ctx, tx, storyID); err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}
	return nil
}
