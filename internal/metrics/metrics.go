package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_logins_total",
			Help: "Total login attempts by outcome",
		},
		[]string{"outcome"},
	)

	InterviewsScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "platform_interviews_scheduled_total",
			Help: "Total interviews scheduled",
		},
	)

	InterviewTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_interview_transitions_total",
			Help: "Total interview status transitions by target state",
		},
		[]string{"to"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_notifications_sent_total",
			Help: "Total outcome notifications by delivery result",
		},
		[]string{"result"},
	)

	AccessDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_access_denied_total",
			Help: "Total gate denials by kind (unauthenticated, forbidden)",
		},
		[]string{"kind"},
	)
)
