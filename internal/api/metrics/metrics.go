// Package metrics defines all custom Prometheus metrics for the vetgate
// dashboard gateway. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vetgate"

// ── Upstream (clinic backend) metrics ─────────────────────────────────────────

// UpstreamRequestsTotal counts requests issued to the clinic backend.
// Labels:
//   - method: HTTP method
//   - status: numeric HTTP status of the response, or "error" when the
//     request never produced one (network failure)
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the clinic backend.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures round-trip time to the clinic backend.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of clinic backend round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionLoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (bad credentials) or "superseded"
//     (logout raced the in-flight login and won)
var SessionLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionInvalidationsTotal counts forced session teardowns triggered by an
// upstream 401 on any endpoint.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions torn down after an upstream 401.",
	},
)

// SessionRevalidationsTotal counts startup revalidations of token-only
// session records against /auth/me.
// Label:
//   - result: "success", "failure" or "superseded" (logout raced the
//     in-flight revalidation and won)
var SessionRevalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_revalidations_total",
		Help:      "Total number of /auth/me revalidations of cached tokens.",
	},
	[]string{"result"},
)
