// Package metrics holds the Prometheus collectors of the engine.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "talentflow"

var registerOnce sync.Once

// Register registers all collectors with the default registry. Must be called from main;
// repeated calls are no-ops.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestDuration,
			httpRequestsTotal,
			EmbeddingRequestsTotal,
			EmbeddingRequestDuration,
			EmbeddingTokensTotal,
			EmbeddingErrorsTotal,
			EmbeddingTextsTotal,
			CorpusBuildDuration,
			CorpusDocuments,
			CVExtractionsTotal,
			RecommendationsTotal,
		)
	})
}
