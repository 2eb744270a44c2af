// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_applications_total",
			Help: "Total number of submitted membership applications",
		},
		[]string{"position"},
	)

	NewsletterEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_newsletter_events_total",
			Help: "Newsletter subscribe outcomes",
		},
		[]string{"result"},
	)

	ContactMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "club_contact_messages_total",
			Help: "Total number of contact form messages",
		},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
