// Package metrics defines and registers all custom Prometheus metrics
// for the POS admin gateway. It is the single source of truth for metric
// names, labels, and help strings; metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos_gateway"

// ── Backend proxy metrics ─────────────────────────────────────────────────────

// BackendRequestsTotal counts proxied backend calls.
// Labels:
//   - resource: leading resource segment of the backend path (e.g. "products")
//   - method: HTTP method of the proxied call
//   - outcome: "ok", "backend_error", "unreachable", "parse_error", "auth_required"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of proxied backend API calls, by resource and outcome.",
	},
	[]string{"resource", "method", "outcome"},
)

// BackendRequestDuration measures the wall time of one proxied call.
// Label:
//   - resource: leading resource segment of the backend path
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of proxied backend API calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"resource"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts credential exchanges.
// Label:
//   - result: "success", "invalid", "locked", "unreachable", "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsExpiredTotal counts requests rejected because the session's
// thirty-day absolute window had closed.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of requests carrying a session past its absolute expiry.",
	},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditQueueDepth tracks pending audit records per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit records dropped because a worker
// channel was full. Audit writes never block the request path.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit records dropped due to a full worker queue.",
	},
)
