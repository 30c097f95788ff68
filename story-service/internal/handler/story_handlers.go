package handler

import (
	"net/http"

	"story-server/shared/middleware"
	"story-server/shared/models"

	"github.com/gin-gonic/gin"
)

func (h *StoryHandler) createStory(c *gin.Context) {
	var input models.StoryInput
	if !h.bindJSON(c, &input) {
		return
	}
	view, err := h.stories.CreateStory(c.Request.Context(), input, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.Header("Location", "/api/stories/"+view.ID.String())
	c.JSON(http.StatusCreated, view)
}

func (h *StoryHandler) listPublicStories(c *gin.Context) {
	views, err := h.stories.ListPublicStories(c.Request.Context(), middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *StoryHandler) listMyStories(c *gin.Context) {
	views, err := h.stories.ListMyStories(c.Request.Context(), middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *StoryHandler) getStory(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.stories.GetStory(c.Request.Context(), id, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) updateStory(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.StoryInput
	if !h.bindJSON(c, &input) {
		return
	}
	view, err := h.stories.UpdateStory(c.Request.Context(), id, input, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) deleteStory(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.stories.DeleteStory(c.Request.Context(), id, middleware.ActorFromGin(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	respondNoContent(c)
}

func (h *StoryHandler) togglePublish(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.stories.TogglePublish(c.Request.Context(), id, middleware.ActorFromGin(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.Status(http.StatusOK)
}

func (h *StoryHandler) uploadStoryImages(c *gin.Context) {
	files, ok := h.multipartFiles(c)
	if !ok {
		return
	}
	urls, err := h.stories.UploadStoryImages(c.Request.Context(), files)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, urls)
}
