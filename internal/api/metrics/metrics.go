// Package metrics defines and registers all custom Prometheus metrics for the
// charity site API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "charity"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "profile_unresolved", or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// ── Submission metrics ────────────────────────────────────────────────────────

// SubmissionsTotal counts accepted public form submissions.
// Label:
//   - form: "contact", "volunteer", or "donation"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of accepted public form submissions, by form.",
	},
	[]string{"form"},
)

// SubmissionErrorsTotal counts public form submissions rejected by the store.
// Label:
//   - form: "contact", "volunteer", or "donation"
var SubmissionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_errors_total",
		Help:      "Total number of public form submissions that failed to persist.",
	},
	[]string{"form"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts operator notifications delivered by the
// dispatcher. The orphaned_credential kind doubles as the counter for
// staff-creation step-two failures.
// Label:
//   - kind: "contact_message", "volunteer_application", or "orphaned_credential"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of operator notifications delivered, by kind.",
	},
	[]string{"kind"},
)

// NotificationQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
