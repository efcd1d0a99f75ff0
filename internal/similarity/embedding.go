package similarity

import (
	"context"
	"fmt"
	"strings"

	"github.com/LBuyana/talentflow-app/internal/domain"
)

// Embedding vectorizes texts with a learned embedding model in one batch call.
type Embedding struct {
	embedder domain.BatchEmbedder
}

// NewEmbedding wraps a batch embedder.
func NewEmbedding(embedder domain.BatchEmbedder) *Embedding {
	return &Embedding{embedder: embedder}
}

// Vectorize embeds texts, preserving order. Blank texts are not sent to the provider
// and get a nil vector, which scores 0 against everything.
func (e *Embedding) Vectorize(ctx context.Context, texts []string) ([]Vector, error) {
	out := make([]Vector, len(texts))

	var (
		batch []string
		index []int
	)
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		batch = append(batch, t)
		index = append(index, i)
	}
	if len(batch) == 0 {
		return out, nil
	}

	res, err := e.embedder.BatchEmbed(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	if len(res.Embeddings) != len(batch) {
		return nil, fmt.Errorf(
			"embed corpus: got %d vectors for %d texts: %w",
			len(res.Embeddings), len(batch), domain.ErrEmbeddingProviderError,
		)
	}

	for k, emb := range res.Embeddings {
		v := make(Vector, len(emb))
		for j, x := range emb {
			v[j] = float64(x)
		}
		out[index[k]] = v
	}
	return out, nil
}
