// Package metrics holds the Prometheus collectors shared across modules.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LeadsQualified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plaza_leads_qualified_total",
			Help: "Questionnaires scored, by resulting priority",
		},
		[]string{"priority"},
	)

	LeadsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plaza_leads_submitted_total",
			Help: "Inquiries accepted, by property and priority",
		},
		[]string{"property", "priority"},
	)

	LeadScoreMismatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plaza_lead_score_mismatch_total",
			Help: "Inquiries whose client-side score differed from the server score",
		},
	)

	LeadStoreFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plaza_lead_store_failures_total",
			Help: "Inquiries that could not be persisted",
		},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plaza_emails_sent_total",
			Help: "Outbound emails, by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	FunnelEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plaza_funnel_events_total",
			Help: "Analytics funnel events, by property and event name",
		},
		[]string{"property", "event"},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "plaza_job_duration_seconds",
			Help: "Background job processing time in seconds",
		},
		[]string{"task_type"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
