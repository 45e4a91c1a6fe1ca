// Package metrics defines all custom Prometheus metrics for the clinic
// backend. It is the single source of truth for metric names, labels, and
// help strings; counters register themselves on the default registry via
// promauto at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts requests rejected by the authorization policy.
// Label:
//   - reason: the policy denial reason (e.g. "role_mismatch", "not_owner", "not_assigned", "unauthenticated")
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by the authorization policy, by reason.",
	},
	[]string{"reason"},
)

// ── Treatment metrics ─────────────────────────────────────────────────────────

// TreatmentApplicationsTotal counts assistant treatment applications.
// Label:
//   - result: "success", "not_assigned", or "error"
var TreatmentApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "treatment_applications_total",
		Help:      "Total number of treatment application attempts, by result.",
	},
	[]string{"result"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportRequestsTotal counts report endpoint requests.
// Label:
//   - report: "doctors_patients" or "patient_treatments"
var ReportRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_requests_total",
		Help:      "Total number of report requests, by report kind.",
	},
	[]string{"report"},
)

// ReportCacheTotal counts cache lookups for the statistics report.
// Label:
//   - result: "hit" or "miss"
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of statistics report cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
