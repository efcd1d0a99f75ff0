package similarity

import (
	"context"
	"fmt"
)

// Engine scores one corpus document against the whole corpus.
type Engine struct {
	vectorizer Vectorizer
}

// NewEngine creates an engine backed by vectorizer.
func NewEngine(vectorizer Vectorizer) *Engine {
	return &Engine{vectorizer: vectorizer}
}

// Scores vectorizes texts and returns the cosine similarity of texts[query]
// against every text, itself included. An empty corpus yields no scores.
func (e *Engine) Scores(ctx context.Context, texts []string, query int) ([]float64, error) {
	if len(texts) == 0 {
		return []float64{}, nil
	}
	if query < 0 || query >= len(texts) {
		return nil, fmt.Errorf("query index %d out of range [0,%d)", query, len(texts))
	}

	vectors, err := e.vectorizer.Vectorize(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("vectorize: %w", err)
	}

	scores := make([]float64, len(vectors))
	q := vectors[query]
	for i, v := range vectors {
		scores[i] = Cosine(q, v)
	}
	return scores, nil
}
