package service

import (
	"fmt"
	"strings"

	"story-server/shared/models"

	"github.com/google/uuid"
)

// requireNonBlank returns ErrValidation when value is empty after trimming.
func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s must not be blank", models.ErrValidation, field)
	}
	return nil
}

func collectStoryIDs(stories []*models.Story) []uuid.UUID {
	ids := make([]uuid.UUID, len(stories))
	for i, s := range stories {
		ids[i] = s.ID
	}
	return ids
}
