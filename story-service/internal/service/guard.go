package service

import (
	"story-server/shared/models"
)

// CanMutate reports whether actor may change a resource owned by owner.
// Usernames are compared exactly; an empty actor never matches.
func CanMutate(actor, owner string) bool {
	return actor != "" && actor == owner
}

// IsVisible reports whether a story can be read by viewer ("" for anonymous).
// Published stories are public, drafts are visible to their author only.
func IsVisible(story *models.Story, viewer string) bool {
	if story == nil {
		return false
	}
	return story.IsPublished || CanMutate(viewer, story.AuthorUsername)
}

// FilterVisible keeps the stories viewer may read, preserving order.
func FilterVisible(stories []*models.Story, viewer string) []*models.Story {
	visible := make([]*models.Story, 0, len(stories))
	for _, s := range stories {
		if IsVisible(s, viewer) {
			visible = append(visible, s)
		}
	}
	return visible
}
