package metrics

import "github.com/prometheus/client_golang/prometheus"

// Corpus and recommendation Prometheus metrics.
var (
	CorpusBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "corpus_build_duration_seconds",
			Help:      "Time to fetch records and assemble the text corpus",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	CorpusDocuments = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "corpus_documents",
			Help:      "Documents in the most recently built corpus",
		},
		[]string{"type"}, // "job" / "seeker"
	)

	CVExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cv_extractions_total",
			Help:      "CV text extraction outcomes",
		},
		[]string{"result"}, // "ok" / "empty" / "unsupported" / "error"
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendation requests by kind and outcome",
		},
		[]string{"kind", "status"}, // kind: jobs_for_seeker / seekers_for_job / jobs_for_user
	)
)
