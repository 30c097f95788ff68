package service_test

import (
	"testing"

	"story-server/shared/models"
	"story-server/story-service/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name  string
		actor string
		owner string
		want  bool
	}{
		{"owner", "alice", "alice", true},
		{"other user", "bob", "alice", false},
		{"case differs", "Alice", "alice", false},
		{"anonymous", "", "alice", false},
		{"anonymous against empty owner", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CanMutate(tt.actor, tt.owner))
		})
	}
}

func TestIsVisible(t *testing.T) {
	published := &models.Story{AuthorUsername: "alice", IsPublished: true}
	draft := &models.Story{AuthorUsername: "alice"}

	assert.True(t, service.IsVisible(published, ""))
	assert.True(t, service.IsVisible(published, "bob"))
	assert.True(t, service.IsVisible(draft, "alice"))
	assert.False(t, service.IsVisible(draft, "bob"))
	assert.False(t, service.IsVisible(draft, ""))
	assert.False(t, service.IsVisible(nil, "alice"))
}

func TestFilterVisible(t *testing.T) {
	a := &models.Story{Title: "a", AuthorUsername: "alice", IsPublished: true}
	b := &models.Story{Title: "b", AuthorUsername: "bob"}
	c := &models.Story{Title: "c", AuthorUsername: "carol", IsPublished: true}

	got := service.FilterVisible([]*models.Story{a, b, c}, "carol")

	assert.Equal(t, []*models.Story{a, c}, got)
}

func TestValidateExtension(t *testing.T) {
	assert.NoError(t, service.ValidateExtension(models.MediaTypeImage, "cover.JPG"))
	assert.NoError(t, service.ValidateExtension(models.MediaTypeAudio, "theme.ogg"))
	assert.NoError(t, service.ValidateExtension(models.MediaTypeVideo, "clip.ogg"))
	assert.ErrorIs(t, service.ValidateExtension(models.MediaTypeVideo, "theme.mp3"), models.ErrValidation)
	assert.ErrorIs(t, service.ValidateExtension(models.MediaTypeImage, "noext"), models.ErrValidation)
}
