// Package metrics defines and registers all custom Prometheus metrics for the
// Bastille identity API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import
// (promauto) and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bastille"

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheLookupsTotal counts cache reads.
// Labels:
//   - cache: logical cache name ("admin_status", "tenant")
//   - result: "hit", "miss" or "error"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of cache reads, by cache and result.",
	},
	[]string{"cache", "result"},
)

// CacheWritesTotal counts cache writes and removals.
// Labels:
//   - cache: logical cache name
//   - op: "set" or "remove"
//   - result: "ok" or "error"
var CacheWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_writes_total",
		Help:      "Total number of cache writes and removals, by cache, operation and result.",
	},
	[]string{"cache", "op", "result"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthorizationDecisionsTotal counts access checks served over HTTP.
// Labels:
//   - check: "read_user", "manage_user", "remove_user", "access_group", "manage_group"
//   - result: "allowed", "denied" or "error"
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of authorization decisions, by check and result.",
	},
	[]string{"check", "result"},
)

// AdminRoleChangesTotal counts administrator role mutations.
// Labels:
//   - action: "grant" or "revoke"
//   - outcome: "succeeded", "failed", "denied" or "error"
var AdminRoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_role_changes_total",
		Help:      "Total number of administrator role changes, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// ── Tenant metrics ────────────────────────────────────────────────────────────

// TenantResolutionsTotal counts per-request tenant bindings.
// Label:
//   - result: "found", "not_found", "error" or "none" (no key supplied)
var TenantResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tenant_resolutions_total",
		Help:      "Total number of tenant resolutions performed by the request pipeline.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker channel.
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

// AuditWriteFailuresTotal counts audit events that could not be persisted or enqueued.
// Label:
//   - reason: "enqueue_timeout", "context_done" or "insert_failed"
var AuditWriteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit events lost before persistence.",
	},
	[]string{"reason"},
)
