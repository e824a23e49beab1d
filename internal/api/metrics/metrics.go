// Package metrics defines all custom Prometheus metrics for the storefront
// admin API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Gate metrics ──────────────────────────────────────────────────────────────

// GateDecisionsTotal counts route-authorization outcomes.
// Labels:
//   - outcome: "allow", "redirect_login", "redirect_not_found"
//   - section: leading path segment being gated (e.g. "admin", "sr")
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of route authorization decisions, by outcome and section.",
	},
	[]string{"outcome", "section"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListDerivationsTotal counts full pipeline runs (filter + sort recomputed).
// Label:
//   - collection: "orders", "withdrawals", "products"
var ListDerivationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_derivations_total",
		Help:      "Total number of list derivations that recomputed filter and sort.",
	},
	[]string{"collection"},
)

// ListSnapshotTotal counts snapshot cache lookups.
// Label:
//   - result: "hit" (ordered slice reused) or "miss" (recomputed)
var ListSnapshotTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_snapshot_total",
		Help:      "Total number of ordered-snapshot lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ListDerivationDuration measures one derivation end-to-end, snapshot reuse
// included.
// Label:
//   - collection: "orders", "withdrawals", "products"
var ListDerivationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "list_derivation_duration_seconds",
		Help:      "Duration of list derivation from repository rows to rendered page.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"collection"},
)

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

// ── Coupon metrics ────────────────────────────────────────────────────────────

// CouponsExpiredTotal counts coupons deactivated by the expiry sweeper.
var CouponsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coupons_expired_total",
		Help:      "Total number of coupons deactivated by the expiry sweep.",
	},
)
