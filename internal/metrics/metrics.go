package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchingRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_requests_total",
			Help: "Total number of match-finding requests",
		},
	)

	CandidatesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_candidates_scored_total",
			Help: "Total number of mentor candidates scored",
		},
	)

	MatchesPersisted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_matches_persisted_total",
			Help: "Total number of matches written to the store",
		},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of LLM calls by operation",
		},
		[]string{"operation"},
	)

	LLMFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_failures_total",
			Help: "Total number of failed LLM calls by operation",
		},
		[]string{"operation"},
	)

	LLMParseFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_parse_fallbacks_total",
			Help: "Total number of LLM responses replaced by fixed fallbacks",
		},
		[]string{"operation"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "llm_request_duration_seconds",
			Help: "Duration of LLM calls in seconds",
		},
		[]string{"operation"},
	)
)
