// Package metrics defines the custom Prometheus metrics for the HR platform
// identity service. It is the single source of truth for metric names,
// labels, and help strings; collectors register themselves with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr_identity"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "locked", or "inactive"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// ThrottledLoginsTotal counts login submissions rejected by the per-IP
// throttle before reaching the authenticator.
var ThrottledLoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "throttled_logins_total",
		Help:      "Total number of login submissions rejected by the per-IP throttle.",
	},
)

// TokenRejectionsTotal counts requests whose bearer token failed validation.
// Label:
//   - reason: "expired", "malformed", or "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected for a bad session token.",
	},
	[]string{"reason"},
)

// MenuBuildDuration measures how long one role-filtered menu assembly takes.
var MenuBuildDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "menu_build_duration_seconds",
		Help:      "Duration of a single role-filtered menu tree assembly.",
		Buckets:   prometheus.DefBuckets,
	},
)
