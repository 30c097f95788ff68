package messaging

// Exchange defaults
const (
	StoryEventsExchangeName = "story_events"
	StoryEventsExchangeType = "topic"
)

// Routing key patterns for consumers binding to the story events exchange.
const (
	AllStoryEventsKey   = "story.#"
	AllCommentEventsKey = "comment.#"
)
