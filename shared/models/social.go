package models

import (
	"time"

	"github.com/google/uuid"
)

// Like is a unique (story, username) fact.
type Like struct {
	StoryID   uuid.UUID `db:"story_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// Favorite is a unique (story, username) fact. Favorites are listed, never counted.
type Favorite struct {
	StoryID   uuid.UUID `db:"story_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// Comment is owned by its author, not by the story owner.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoryID   uuid.UUID `json:"storyId" db:"story_id"`
	Username  string    `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CommentInput is the request body for adding a comment.
type CommentInput struct {
	Content string `json:"content"`
}

// CommentView is the client projection of a comment.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	StoryID   uuid.UUID `json:"storyId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToView converts a comment row to its projection.
func (c Comment) ToView() CommentView {
	return CommentView{
		ID:        c.ID,
		StoryID:   c.StoryID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
