// Package metrics defines and registers all custom Prometheus metrics for the
// consultant portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login submissions.
// Label:
//   - outcome: "success", "unknown_id", "invalid_credentials", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login submissions, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration submissions.
// Label:
//   - outcome: "success", "password_mismatch", "identity_failed", "insert_failed", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration submissions, by outcome.",
	},
	[]string{"outcome"},
)

// ConsultantIDCollisionsTotal counts generated ids rejected as duplicates.
var ConsultantIDCollisionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "consultant_id_collisions_total",
		Help:      "Total number of generated consultant ids that collided with an existing record.",
	},
)

// OrphanedIdentitiesTotal counts identities left behind because the
// compensating delete failed.
var OrphanedIdentitiesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orphaned_identities_total",
		Help:      "Total number of identities that could not be removed after a failed consultant insert.",
	},
)

// TabSelectionsTotal counts tab selection requests.
// Label:
//   - result: "accepted" or "ignored"
var TabSelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tab_selections_total",
		Help:      "Total number of dashboard tab selections, labelled by result (accepted/ignored).",
	},
	[]string{"result"},
)

// ActiveClients tracks the number of live session controllers.
var ActiveClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_clients",
		Help:      "Current number of portal clients holding a session controller.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events written or dropped.
// Label:
//   - result: "written", "failed", "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of session audit events, labelled by result.",
	},
	[]string{"result"},
)
