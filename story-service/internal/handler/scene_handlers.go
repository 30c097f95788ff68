package handler

import (
	"net/http"

	"story-server/shared/middleware"
	"story-server/shared/models"

	"github.com/gin-gonic/gin"
)

func (h *StoryHandler) createScene(c *gin.Context) {
	var input models.SceneInput
	if !h.bindJSON(c, &input) {
		return
	}
	view, err := h.scenes.CreateScene(c.Request.Context(), input, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) updateScene(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.SceneInput
	if !h.bindJSON(c, &input) {
		return
	}
	view, err := h.scenes.UpdateScene(c.Request.Context(), id, input, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) listScenes(c *gin.Context) {
	storyID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.scenes.ListScenes(c.Request.Context(), storyID, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *StoryHandler) deleteScene(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.scenes.DeleteScene(c.Request.Context(), id, middleware.ActorFromGin(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	respondNoContent(c)
}

// addSceneMedia expects multipart "files" and a "type" form field (image, video or audio).
func (h *StoryHandler) addSceneMedia(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	files, ok := h.multipartFiles(c)
	if !ok {
		return
	}
	view, err := h.scenes.AddMedia(c.Request.Context(), id, c.PostForm("type"), files, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}
