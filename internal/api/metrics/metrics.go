// Package metrics defines the custom Prometheus metrics for the campus
// companion API. HTTP request metrics come from the echoprometheus middleware;
// everything here is feature level.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campus"

// ── Identity ─────────────────────────────────────────────────────────────────

// LoginsTotal counts identity attempts.
// Labels:
//   - method: "login", "register" or "guest"
//   - result: "success" or a short failure reason (e.g. "invalid_credentials")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login, registration and guest entry attempts.",
	},
	[]string{"method", "result"},
)

// ── Community ────────────────────────────────────────────────────────────────

var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of community posts created, by community.",
	},
	[]string{"community"},
)

// VotesTotal counts vote toggles by requested direction and resulting vote.
var VotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_total",
		Help:      "Total number of vote toggles.",
	},
	[]string{"direction", "result"},
)

// ── Chat ─────────────────────────────────────────────────────────────────────

// ChatRepliesTotal counts assistant replies.
// Labels:
//   - intent: classified intent
//   - source: "canned", "generative" or "fallback"
var ChatRepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_replies_total",
		Help:      "Total number of assistant replies, by intent and source.",
	},
	[]string{"intent", "source"},
)

// ── Reports ──────────────────────────────────────────────────────────────────

var ReportsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_submitted_total",
		Help:      "Total number of incident reports submitted, by category.",
	},
	[]string{"category"},
)

var ReportsRoutedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_routed_total",
		Help:      "Total number of reports handed to staff by the routing workers.",
	},
	[]string{"category", "urgent"},
)

// Recorder adapts the report counters to the queue's Recorder interface.
type Recorder struct{}

func (Recorder) ReportRouted(category string, urgent bool) {
	ReportsRoutedTotal.WithLabelValues(category, strconv.FormatBool(urgent)).Inc()
}
