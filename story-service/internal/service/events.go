package service

import (
	"context"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"go.uber.org/zap"
)

// eventNotifier publishes domain events after commit. Failures are logged and
// counted, never returned: the committed state is the source of truth.
type eventNotifier struct {
	publisher interfaces.StoryEventPublisher
	logger    *zap.Logger
}

func newEventNotifier(publisher interfaces.StoryEventPublisher, logger *zap.Logger) *eventNotifier {
	return &eventNotifier{publisher: publisher, logger: logger}
}

func (n *eventNotifier) notify(ctx context.Context, event models.StoryEvent) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.PublishStoryEvent(ctx, event); err != nil {
		eventPublishFailuresTotal.Inc()
		n.logger.Warn("Failed to publish story event",
			zap.String("type", string(event.Type)),
			zap.String("storyID", event.StoryID.String()),
			zap.Error(err),
		)
	}
}
