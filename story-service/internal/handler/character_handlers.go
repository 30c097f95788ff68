package handler

import (
	"net/http"

	"story-server/shared/middleware"
	"story-server/shared/models"

	"github.com/gin-gonic/gin"
)

func (h *StoryHandler) createCharacter(c *gin.Context) {
	var input models.CharacterInput
	if !h.bindJSON(c, &input) {
		return
	}
	view, err := h.characters.CreateCharacter(c.Request.Context(), input, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) updateCharacter(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.CharacterInput
	if !h.bindJSON(c, &input) {
		return
	}
	view, err := h.characters.UpdateCharacter(c.Request.Context(), id, input, middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StoryHandler) deleteCharacter(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.characters.DeleteCharacter(c.Request.Context(), id, middleware.ActorFromGin(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	respondNoContent(c)
}

func (h *StoryHandler) listMyCharacters(c *gin.Context) {
	views, err := h.characters.ListMyCharacters(c.Request.Context(), middleware.ActorFromGin(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, views)
}
