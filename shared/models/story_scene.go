package models

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaType categorizes scene attachments.
type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
	MediaTypeAudio MediaType = "AUDIO"
)

// ParseMediaType accepts the type case-insensitively.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(strings.ToUpper(strings.TrimSpace(s))) {
	case MediaTypeImage:
		return MediaTypeImage, nil
	case MediaTypeVideo:
		return MediaTypeVideo, nil
	case MediaTypeAudio:
		return MediaTypeAudio, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMediaType, s)
}

// Folder is the storage sub-folder for the media type ("image", "video", "audio").
func (t MediaType) Folder() string {
	return strings.ToLower(string(t))
}

// Scene belongs to exactly one story. CharacterNames reference characters by name only.
type Scene struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	StoryID        uuid.UUID    `json:"storyId" db:"story_id"`
	Title          string       `json:"title" db:"title"`
	Description    string       `json:"description" db:"description"`
	Order          int          `json:"order" db:"scene_order"`
	CharacterNames []string     `json:"characters" db:"character_names"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	Media          []SceneMedia `json:"-" db:"-"`
}

// SceneMedia is an append-only attachment of a scene.
type SceneMedia struct {
	ID        uuid.UUID `db:"id"`
	SceneID   uuid.UUID `db:"scene_id"`
	URL       string    `db:"url"`
	Type      MediaType `db:"media_type"`
	CreatedAt time.Time `db:"created_at"`
}

// SceneInput is the request body for scene create/update.
type SceneInput struct {
	StoryID        *uuid.UUID `json:"storyId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Order          *int       `json:"order"`
	CharacterNames []string   `json:"characters"`
}

// SceneView buckets media URLs by type, preserving attachment order.
type SceneView struct {
	ID             uuid.UUID `json:"id"`
	StoryID        uuid.UUID `json:"storyId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Order          int       `json:"order"`
	CharacterNames []string  `json:"characters"`
	ImageURLs      []string  `json:"imageUrls"`
	VideoURLs      []string  `json:"videoUrls"`
	AudioURLs      []string  `json:"audioUrls"`
}

// ToView projects the scene and its media.
func (s Scene) ToView() SceneView {
	v := SceneView{
		ID:             s.ID,
		StoryID:        s.StoryID,
		Title:          s.Title,
		Description:    s.Description,
		Order:          s.Order,
		CharacterNames: s.CharacterNames,
		ImageURLs:      []string{},
		VideoURLs:      []string{},
		AudioURLs:      []string{},
	}
	if v.CharacterNames == nil {
		v.CharacterNames = []string{}
	}
	for _, m := range s.Media {
		switch m.Type {
		case MediaTypeImage:
			v.ImageURLs = append(v.ImageURLs, m.URL)
		case MediaTypeVideo:
			v.VideoURLs = append(v.VideoURLs, m.URL)
		case MediaTypeAudio:
			v.AudioURLs = append(v.AudioURLs, m.URL)
		}
	}
	return v
}

// MediaFile is a raw upload handed to the service by the boundary layer.
type MediaFile struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}
