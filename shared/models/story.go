package models

import (
	"time"

	"github.com/google/uuid"
)

// Story is the aggregate root. Characters and ImageURLs are owned exclusively
// and are fully replaced on every update.
type Story struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	Description    string    `json:"description" db:"description"`
	Writers        string    `json:"writers" db:"writers"`
	TimelineJSON   string    `json:"timelineJson" db:"timeline_json"` // opaque blob, never parsed by the server
	IsPublished    bool      `json:"isPublished" db:"is_published"`
	LikeCount      int       `json:"likeCount" db:"like_count"` // maintained only by the social ledger
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	Characters []Character `json:"characters" db:"-"`
	ImageURLs  []string    `json:"imageUrls" db:"-"`
}

// Character is either owned by a story (StoryID set) or standalone.
type Character struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	StoryID     *uuid.UUID `json:"storyId,omitempty" db:"story_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Role        string     `json:"role" db:"role"`
	ActorName   string     `json:"actorName" db:"actor_name"`
	ImageURL    string     `json:"imageUrl" db:"image_url"`
	Position    int        `json:"-" db:"position"`
	CreatedAt   time.Time  `json:"-" db:"created_at"`
}

// StoryImage is a row of story_images; only the URL is exposed to clients.
type StoryImage struct {
	ID       uuid.UUID `db:"id"`
	StoryID  uuid.UUID `db:"story_id"`
	URL      string    `db:"url"`
	Position int       `db:"position"`
}

// CharacterInput is the client-submitted shape of a character.
type CharacterInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Role        string `json:"role"`
	ActorName   string `json:"actorName"`
	ImageURL    string `json:"imageUrl"`
}

// StoryInput is the full nested state submitted by the authoring UI on create and update.
type StoryInput struct {
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	Description  string           `json:"description"`
	Writers      string           `json:"writers"`
	TimelineJSON string           `json:"timelineJson"`
	ImageURLs    []string         `json:"imageUrls"`
	Characters   []CharacterInput `json:"characters"`
	IsPublished  *bool            `json:"isPublished"` // nil keeps the current value on update, false on create
}

// StoryView is the read projection returned by every story operation.
// Viewer-specific flags are computed per request and are false for anonymous viewers.
type StoryView struct {
	ID                       uuid.UUID       `json:"id"`
	Title                    string          `json:"title"`
	Content                  string          `json:"content"`
	Description              string          `json:"description"`
	Writers                  string          `json:"writers"`
	TimelineJSON             string          `json:"timelineJson"`
	ImageURLs                []string        `json:"imageUrls"`
	AuthorUsername           string          `json:"authorUsername"`
	CreatedAt                time.Time       `json:"createdAt"`
	Characters               []CharacterView `json:"characters"`
	IsPublished              bool            `json:"isPublished"`
	LikeCount                int             `json:"likeCount"`
	IsLikedByCurrentUser     bool            `json:"isLikedByCurrentUser"`
	IsFavoritedByCurrentUser bool            `json:"isFavoritedByCurrentUser"`
	CommentCount             int             `json:"commentCount"`
}

// CharacterView is the client projection of a character.
type CharacterView struct {
	ID          uuid.UUID  `json:"id"`
	StoryID     *uuid.UUID `json:"storyId,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Role        string     `json:"role"`
	ActorName   string     `json:"actorName"`
	ImageURL    string     `json:"imageUrl"`
}

// ToView converts a character row to its projection.
func (c Character) ToView() CharacterView {
	return CharacterView{
		ID:          c.ID,
		StoryID:     c.StoryID,
		Name:        c.Name,
		Description: c.Description,
		Role:        c.Role,
		ActorName:   c.ActorName,
		ImageURL:    c.ImageURL,
	}
}
