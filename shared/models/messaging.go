package models

import (
	"time"

	"github.com/google/uuid"
)

// StoryEventType is also used as the AMQP routing key.
type StoryEventType string

const (
	EventStoryCreated     StoryEventType = "story.created"
	EventStoryUpdated     StoryEventType = "story.updated"
	EventStoryDeleted     StoryEventType = "story.deleted"
	EventStoryPublished   StoryEventType = "story.published"
	EventStoryUnpublished StoryEventType = "story.unpublished"
	EventStoryLiked       StoryEventType = "story.liked"
	EventStoryUnliked     StoryEventType = "story.unliked"
	EventCommentAdded     StoryEventType = "comment.added"
	EventCommentDeleted   StoryEventType = "comment.deleted"
)

// StoryEvent is published after a mutating transaction commits.
type StoryEvent struct {
	EventID    uuid.UUID      `json:"event_id"`
	Type       StoryEventType `json:"type"`
	StoryID    uuid.UUID      `json:"story_id"`
	CommentID  *uuid.UUID     `json:"comment_id,omitempty"`
	Actor      string         `json:"actor"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewStoryEvent fills the event id and timestamp.
func NewStoryEvent(t StoryEventType, storyID uuid.UUID, actor string) StoryEvent {
	return StoryEvent{
		EventID:    uuid.New(),
		Type:       t,
		StoryID:    storyID,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
}
