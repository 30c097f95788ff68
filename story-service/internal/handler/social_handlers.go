package handler

import (
	"context"
	"net/http"

	"story-server/shared/middleware"
	"story-server/shared/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type socialFunc func(ctx context.Context, id uuid.UUID, actor string) (*models.StoryView, error)

// social runs an idempotent like/favorite toggle and answers with the fresh story view.
func (h *StoryHandler) social(c *gin.Context, fn socialFunc) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := fn(c.Request.Context(), id, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	if view == nil {
		// Withdrawn from a story hidden from the actor.
		respondNoContent(c)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) likeStory(c *gin.Context)       { h.social(c, h.stories.LikeStory) }
func (h *StoryHandler) unlikeStory(c *gin.Context)     { h.social(c, h.stories.UnlikeStory) }
func (h *StoryHandler) favoriteStory(c *gin.Context)   { h.social(c, h.stories.FavoriteStory) }
func (h *StoryHandler) unfavoriteStory(c *gin.Context) { h.social(c, h.stories.UnfavoriteStory) }

func (h *StoryHandler) listFavorites(c *gin.Context) {
	views, err := h.stories.ListFavorites(c.Request.Context(), middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *StoryHandler) addComment(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.CommentInput
	if !h.bindJSON(c, &input) {
		return
	}
	view, err := h.stories.AddComment(c.Request.Context(), id, middleware.ActorFromGin(c), input.Content)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) listComments(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.stories.ListComments(c.Request.Context(), id, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *StoryHandler) deleteComment(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.stories.DeleteComment(c.Request.Context(), id, middleware.ActorFromGin(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	respondNoContent(c)
}
