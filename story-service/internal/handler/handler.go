package handler

import (
	"fmt"
	"net/http"

	"story-server/shared/middleware"
	"story-server/shared/models"
	"story-server/story-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoryHandler serves the /api/stories and /api/scenes routes.
type StoryHandler struct {
	stories        service.StoryService
	characters     service.CharacterService
	scenes         service.SceneService
	verifier       middleware.TokenVerifier
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewStoryHandler creates the handler. maxUploadBytes caps a whole multipart request.
func NewStoryHandler(
	stories service.StoryService,
	characters service.CharacterService,
	scenes service.SceneService,
	verifier middleware.TokenVerifier,
	maxUploadBytes int64,
	logger *zap.Logger,
) *StoryHandler {
	return &StoryHandler{
		stories:        stories,
		characters:     characters,
		scenes:         scenes,
		verifier:       verifier,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.Named("StoryHandler"),
	}
}

// RegisterRoutes mounts every route. socialLimiter guards like, favorite and comment writes
// and runs after authentication so it can key on the actor; nil disables it.
func (h *StoryHandler) RegisterRoutes(router gin.IRouter, socialLimiter gin.HandlerFunc) {
	auth := middleware.RequireAuth(h.verifier, h.logger)
	optional := middleware.OptionalAuth(h.verifier, h.logger)
	social := []gin.HandlerFunc{auth}
	if socialLimiter != nil {
		social = append(social, socialLimiter)
	}
	withSocial := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, social...), handler)
	}

	stories := router.Group("/api/stories")
	{
		stories.POST("", auth, h.createStory)
		stories.GET("", optional, h.listPublicStories)
		stories.GET("/my-stories", auth, h.listMyStories)
		stories.GET("/favorites", auth, h.listFavorites)
		stories.POST("/upload-images", auth, h.uploadStoryImages)

		stories.GET("/:id", optional, h.getStory)
		stories.PUT("/:id", auth, h.updateStory)
		stories.DELETE("/:id", auth, h.deleteStory)
		stories.POST("/:id/toggle-publish", auth, h.togglePublish)

		stories.POST("/:id/like", withSocial(h.likeStory)...)
		stories.DELETE("/:id/like", withSocial(h.unlikeStory)...)
		stories.POST("/:id/favorite", withSocial(h.favoriteStory)...)
		stories.DELETE("/:id/favorite", withSocial(h.unfavoriteStory)...)
		stories.POST("/:id/comments", withSocial(h.addComment)...)
		stories.GET("/:id/comments", optional, h.listComments)
		stories.DELETE("/comments/:id", auth, h.deleteComment)

		stories.POST("/characters", auth, h.createCharacter)
		stories.GET("/characters", auth, h.listMyCharacters)
		stories.PUT("/characters/:id", auth, h.updateCharacter)
		stories.DELETE("/characters/:id", auth, h.deleteCharacter)
	}

	scenes := router.Group("/api/scenes")
	{
		scenes.POST("", auth, h.createScene)
		scenes.GET("/story/:id", optional, h.listScenes)
		scenes.PUT("/:id", auth, h.updateScene)
		scenes.DELETE("/:id", auth, h.deleteScene)
		scenes.POST("/:id/media", auth, h.addSceneMedia)
	}
}

// parseIDParam reads a uuid path parameter, answering 400 itself on failure.
func (h *StoryHandler) parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Debug("Invalid id in path", zap.String("param", name), zap.String("value", raw))
		handleServiceError(c, fmt.Errorf("%w: invalid %s '%s'", models.ErrBadRequest, name, raw), h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, answering 400 itself on failure.
func (h *StoryHandler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		handleServiceError(c, fmt.Errorf("%w: invalid request body: %v", models.ErrBadRequest, err), h.logger)
		return false
	}
	return true
}

func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
