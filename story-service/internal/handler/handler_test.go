package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"story-server/shared/models"
	"story-server/story-service/internal/handler"
	serviceMocks "story-server/story-service/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeVerifier accepts "token-<username>" and rejects "expired".
func fakeVerifier(_ context.Context, token string) (*models.Claims, error) {
	switch {
	case token == "expired":
		return nil, models.ErrTokenExpired
	case strings.HasPrefix(token, "token-"):
		return &models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: strings.TrimPrefix(token, "token-")}}, nil
	default:
		return nil, models.ErrTokenInvalid
	}
}

type testServer struct {
	router     *gin.Engine
	stories    *serviceMocks.StoryService
	characters *serviceMocks.CharacterService
	scenes     *serviceMocks.SceneService
}

func newTestServer(t *testing.T, limiter gin.HandlerFunc) *testServer {
	s := &testServer{
		router:     gin.New(),
		stories:    serviceMocks.NewStoryService(t),
		characters: serviceMocks.NewCharacterService(t),
		scenes:     serviceMocks.NewSceneService(t),
	}
	h := handler.NewStoryHandler(s.stories, s.characters, s.scenes, fakeVerifier, 1<<20, zap.NewNop())
	h.RegisterRoutes(s.router, limiter)
	return s
}

func (s *testServer) do(method, path, user string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if user != "" {
		req.Header.Set("Authorization", "Bearer token-"+user)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) doJSON(method, path, user string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	return s.do(method, path, user, body, "application/json")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateStory(t *testing.T) {
	t.Run("created with location", func(t *testing.T) {
		s := newTestServer(t, nil)
		id := uuid.New()
		s.stories.On("CreateStory", mock.Anything, mock.MatchedBy(func(in models.StoryInput) bool {
			return in.Title == "Dawn"
		}), "alice").Return(&models.StoryView{ID: id, Title: "Dawn", AuthorUsername: "alice"}, nil).Once()

		w := s.doJSON(http.MethodPost, "/api/stories", "alice", models.StoryInput{Title: "Dawn"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/stories/"+id.String(), w.Header().Get("Location"))
		var view models.StoryView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "Dawn", view.Title)
	})

	t.Run("requires auth", func(t *testing.T) {
		s := newTestServer(t, nil)
		w := s.doJSON(http.MethodPost, "/api/stories", "", models.StoryInput{Title: "Dawn"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, models.ErrCodeUnauthenticated, decodeError(t, w).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, nil)
		w := s.do(http.MethodPost, "/api/stories", "alice", strings.NewReader("{"), "application/json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.ErrCodeBadRequest, decodeError(t, w).Code)
	})

	t.Run("conflict", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.stories.On("CreateStory", mock.Anything, mock.Anything, "alice").
			Return(nil, fmt.Errorf("%w: duplicate", models.ErrConflict)).Once()
		w := s.doJSON(http.MethodPost, "/api/stories", "alice", models.StoryInput{Title: "Dawn"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, models.ErrCodeConflict, decodeError(t, w).Code)
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody int
	}{
		{"validation", fmt.Errorf("%w: title is required", models.ErrValidation), http.StatusBadRequest, models.ErrCodeValidation},
		{"media type", fmt.Errorf("%w: %w", models.ErrValidation, models.ErrInvalidMediaType), http.StatusBadRequest, models.ErrCodeValidation},
		{"not owner", models.ErrUnauthorized, http.StatusForbidden, models.ErrCodeForbidden},
		{"not found", models.ErrNotFound, http.StatusNotFound, models.ErrCodeNotFound},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError, models.ErrCodeInternal},
		{"persistence", fmt.Errorf("%w: failed to update story: %w", models.ErrInternalServer, fmt.Errorf("conn closed")), http.StatusInternalServerError, models.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)
			id := uuid.New()
			s.stories.On("UpdateStory", mock.Anything, id, mock.Anything, "bob").Return(nil, tt.err).Once()

			w := s.doJSON(http.MethodPut, "/api/stories/"+id.String(), "bob", models.StoryInput{Title: "x"})

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, w).Code)
			assert.NotContains(t, w.Body.String(), "conn closed")
		})
	}
}

func TestGetStory_OptionalAuth(t *testing.T) {
	id := uuid.New()

	t.Run("anonymous viewer", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.stories.On("GetStory", mock.Anything, id, "").Return(&models.StoryView{ID: id}, nil).Once()
		w := s.do(http.MethodGet, "/api/stories/"+id.String(), "", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("authenticated viewer", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.stories.On("GetStory", mock.Anything, id, "alice").
			Return(&models.StoryView{ID: id, IsLikedByCurrentUser: true}, nil).Once()
		w := s.do(http.MethodGet, "/api/stories/"+id.String(), "alice", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"isLikedByCurrentUser":true`)
	})

	t.Run("bad token is rejected", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/stories/"+id.String(), nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, models.ErrCodeTokenExpired, decodeError(t, w).Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		s := newTestServer(t, nil)
		w := s.do(http.MethodGet, "/api/stories/not-a-uuid", "", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStaticRoutesWinOverID(t *testing.T) {
	s := newTestServer(t, nil)
	s.stories.On("ListMyStories", mock.Anything, "alice").Return([]models.StoryView{}, nil).Once()
	s.stories.On("ListFavorites", mock.Anything, "alice").Return([]models.StoryView{}, nil).Once()
	s.characters.On("ListMyCharacters", mock.Anything, "alice").Return([]models.CharacterView{}, nil).Once()

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/stories/my-stories", "alice", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/stories/favorites", "alice", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/stories/characters", "alice", nil, "").Code)
}

func TestDeleteAndToggle(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()
	s.stories.On("DeleteStory", mock.Anything, id, "alice").Return(nil).Once()
	s.stories.On("TogglePublish", mock.Anything, id, "alice").Return(nil).Once()

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/stories/"+id.String(), "alice", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/stories/"+id.String()+"/toggle-publish", "alice", nil, "").Code)
}

func TestSocialRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()
	view := &models.StoryView{ID: id, LikeCount: 1}
	s.stories.On("LikeStory", mock.Anything, id, "bob").Return(view, nil).Once()
	s.stories.On("UnlikeStory", mock.Anything, id, "bob").Return(&models.StoryView{ID: id}, nil).Once()
	s.stories.On("FavoriteStory", mock.Anything, id, "bob").Return(view, nil).Once()
	s.stories.On("UnfavoriteStory", mock.Anything, id, "bob").Return(view, nil).Once()

	w := s.do(http.MethodPost, "/api/stories/"+id.String()+"/like", "bob", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likeCount":1`)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/stories/"+id.String()+"/like", "bob", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/stories/"+id.String()+"/favorite", "bob", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/stories/"+id.String()+"/favorite", "bob", nil, "").Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/stories/"+id.String()+"/like", "", nil, "").Code)
}

func TestSocialRoutes_WithdrawFromHiddenStory(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()
	s.stories.On("UnlikeStory", mock.Anything, id, "bob").Return((*models.StoryView)(nil), nil).Once()
	s.stories.On("UnfavoriteStory", mock.Anything, id, "bob").Return((*models.StoryView)(nil), nil).Once()

	w := s.do(http.MethodDelete, "/api/stories/"+id.String()+"/like", "bob", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/stories/"+id.String()+"/favorite", "bob", nil, "").Code)
}

func TestComments(t *testing.T) {
	s := newTestServer(t, nil)
	storyID := uuid.New()
	commentID := uuid.New()
	s.stories.On("AddComment", mock.Anything, storyID, "bob", "nice").
		Return(&models.CommentView{ID: commentID, StoryID: storyID, Username: "bob", Content: "nice"}, nil).Once()
	s.stories.On("ListComments", mock.Anything, storyID, "").
		Return([]models.CommentView{{ID: commentID, Content: "nice"}}, nil).Once()
	s.stories.On("DeleteComment", mock.Anything, commentID, "carol").Return(models.ErrUnauthorized).Once()

	w := s.doJSON(http.MethodPost, "/api/stories/"+storyID.String()+"/comments", "bob", models.CommentInput{Content: "nice"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/stories/"+storyID.String()+"/comments", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.CommentView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = s.do(http.MethodDelete, "/api/stories/comments/"+commentID.String(), "carol", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSocialRateLimit(t *testing.T) {
	s := newTestServer(t, handler.NewSocialRateLimiter(nil, 2, zap.NewNop()))
	id := uuid.New()
	s.stories.On("LikeStory", mock.Anything, id, "bob").Return(&models.StoryView{ID: id}, nil).Times(2)

	path := "/api/stories/" + id.String() + "/like"
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, path, "bob", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, path, "bob", nil, "").Code)

	w := s.do(http.MethodPost, path, "bob", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, models.ErrCodeTooManyRequests, decodeError(t, w).Code)
}

func TestCharacterRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.New()
	s.characters.On("CreateCharacter", mock.Anything, models.CharacterInput{Name: "Ann"}, "alice").
		Return(&models.CharacterView{ID: id, Name: "Ann"}, nil).Once()
	s.characters.On("UpdateCharacter", mock.Anything, id, models.CharacterInput{Name: "Anna"}, "alice").
		Return(&models.CharacterView{ID: id, Name: "Anna"}, nil).Once()
	s.characters.On("DeleteCharacter", mock.Anything, id, "alice").Return(nil).Once()

	assert.Equal(t, http.StatusOK, s.doJSON(http.MethodPost, "/api/stories/characters", "alice", models.CharacterInput{Name: "Ann"}).Code)
	assert.Equal(t, http.StatusOK, s.doJSON(http.MethodPut, "/api/stories/characters/"+id.String(), "alice", models.CharacterInput{Name: "Anna"}).Code)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/stories/characters/"+id.String(), "alice", nil, "").Code)
}

func TestSceneRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	storyID := uuid.New()
	sceneID := uuid.New()
	s.scenes.On("CreateScene", mock.Anything, mock.MatchedBy(func(in models.SceneInput) bool {
		return in.StoryID != nil && *in.StoryID == storyID && in.Title == "Opening"
	}), "alice").Return(&models.SceneView{ID: sceneID}, nil).Once()
	s.scenes.On("ListScenes", mock.Anything, storyID, "").Return([]models.SceneView{{ID: sceneID}}, nil).Once()
	s.scenes.On("DeleteScene", mock.Anything, sceneID, "alice").Return(nil).Once()

	w := s.doJSON(http.MethodPost, "/api/scenes", "alice", models.SceneInput{StoryID: &storyID, Title: "Opening"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/scenes/story/"+storyID.String(), "", nil, "").Code)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/scenes/"+sceneID.String(), "alice", nil, "").Code)
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestAddSceneMedia_Multipart(t *testing.T) {
	s := newTestServer(t, nil)
	sceneID := uuid.New()
	s.scenes.On("AddMedia", mock.Anything, sceneID, "video", mock.MatchedBy(func(files []models.MediaFile) bool {
		if len(files) != 1 || files[0].Filename != "clip.mp4" || files[0].Size != 6 {
			return false
		}
		rc, err := files[0].Open()
		if err != nil {
			return false
		}
		defer rc.Close()
		data, _ := io.ReadAll(rc)
		return string(data) == "frames"
	}), "alice").Return(&models.SceneView{ID: sceneID, VideoURLs: []string{"/uploads/scenes/video/x_clip.mp4"}}, nil).Once()

	body, ct := multipartBody(t, map[string]string{"type": "video"}, map[string]string{"clip.mp4": "frames"})
	w := s.do(http.MethodPost, "/api/scenes/"+sceneID.String()+"/media", "alice", body, ct)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "x_clip.mp4")
}

func TestUploadStoryImages(t *testing.T) {
	t.Run("returns urls", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.stories.On("UploadStoryImages", mock.Anything, mock.MatchedBy(func(files []models.MediaFile) bool {
			return len(files) == 1 && files[0].Filename == "cover.png"
		})).Return([]string{"/uploads/stories/1_cover.png"}, nil).Once()

		body, ct := multipartBody(t, nil, map[string]string{"cover.png": "png"})
		w := s.do(http.MethodPost, "/api/stories/upload-images", "alice", body, ct)

		assert.Equal(t, http.StatusOK, w.Code)
		var urls []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &urls))
		assert.Equal(t, []string{"/uploads/stories/1_cover.png"}, urls)
	})

	t.Run("not multipart", func(t *testing.T) {
		s := newTestServer(t, nil)
		w := s.doJSON(http.MethodPost, "/api/stories/upload-images", "alice", map[string]string{"a": "b"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
