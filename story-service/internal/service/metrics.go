package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storiesMutatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "story_service_stories_mutated_total",
			Help: "Total number of committed story mutations by operation.",
		},
		[]string{"operation"},
	)

	socialActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "story_service_social_actions_total",
			Help: "Total number of social actions by action and whether state changed.",
		},
		[]string{"action", "changed"},
	)

	mediaStoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "story_service_media_stored_total",
			Help: "Total number of uploaded media files stored, by folder.",
		},
		[]string{"folder"},
	)

	eventPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "story_service_event_publish_failures_total",
		Help: "Total number of domain events that could not be published.",
	})
)

func changedLabel(changed bool) string {
	if changed {
		return "true"
	}
	return "false"
}
