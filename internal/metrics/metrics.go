// Package metrics exposes prometheus instrumentation for the analysis
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConversationsAnalyzed counts completed analyses by source ("text" or
	// "audio") and outcome ("ok" or "error").
	ConversationsAnalyzed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "speech2sense_conversations_analyzed_total",
		Help: "Conversations processed by the analytics engine.",
	}, []string{"source", "outcome"})

	// ClassificationDegraded counts collaborator calls that fell back to the
	// documented default, by task ("sentiment", "intent", "topic").
	ClassificationDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "speech2sense_classification_degraded_total",
		Help: "Classifier calls replaced by the neutral default after failure.",
	}, []string{"task"})

	// AnalysisDuration observes end-to-end analysis latency per source.
	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "speech2sense_analysis_duration_seconds",
		Help:    "Wall time for a full conversation analysis.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"source"})
)
