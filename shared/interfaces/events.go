package interfaces

import (
	"context"
	"story-server/shared/models"
)

// StoryEventPublisher delivers domain events to other services after commit.
//
//go:generate mockery --name StoryEventPublisher --output ./mocks --outpkg mocks --case=underscore
type StoryEventPublisher interface {
	PublishStoryEvent(ctx context.Context, event models.StoryEvent) error
}
