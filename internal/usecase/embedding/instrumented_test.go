package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/LBuyana/talentflow-app/internal/domain"
	"github.com/LBuyana/talentflow-app/internal/metrics"
)

type mockEmbedder struct {
	vector     []float32
	tokens     int
	err        error
	short      bool
	healthErr  error
	batchSizes []int
}

func (m *mockEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	m.batchSizes = append(m.batchSizes, len(texts))
	if m.err != nil {
		return domain.BatchEmbeddingResult{}, m.err
	}
	n := len(texts)
	if m.short {
		n--
	}
	embeddings := make([][]float32, n)
	for i := range embeddings {
		embeddings[i] = m.vector
	}
	return domain.BatchEmbeddingResult{
		Embeddings:   embeddings,
		PromptTokens: m.tokens * len(texts),
		TotalTokens:  m.tokens * len(texts),
	}, nil
}

func (m *mockEmbedder) HealthCheck(_ context.Context) error { return m.healthErr }

func TestInstrumentedEmbedder_BatchEmbed_Success(t *testing.T) {
	inner := &mockEmbedder{vector: []float32{0.1, 0.2}, tokens: 3}
	p := NewInstrumentedEmbedder(inner, "test", "success-model", zap.NewNop())

	res, err := p.BatchEmbed(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Embeddings) != 3 {
		t.Fatalf("expected 3 embeddings, got %d", len(res.Embeddings))
	}
	if res.TotalTokens != 9 {
		t.Errorf("expected TotalTokens=9, got %d", res.TotalTokens)
	}
	if got := testutil.ToFloat64(metrics.EmbeddingTextsTotal.WithLabelValues("test", "success-model")); got != 3 {
		t.Errorf("expected 3 texts counted, got %f", got)
	}
}

func TestInstrumentedEmbedder_BatchEmbed_Chunks(t *testing.T) {
	inner := &mockEmbedder{vector: []float32{1}, tokens: 1}
	p := NewInstrumentedEmbedder(inner, "test", "m", nil).WithMaxBatchSize(2)

	texts := []string{"a", "b", "c", "d", "e"}
	res, err := p.BatchEmbed(context.Background(), texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Embeddings) != len(texts) {
		t.Errorf("expected %d embeddings, got %d", len(texts), len(res.Embeddings))
	}
	want := []int{2, 2, 1}
	if len(inner.batchSizes) != len(want) {
		t.Fatalf("expected chunks %v, got %v", want, inner.batchSizes)
	}
	for i := range want {
		if inner.batchSizes[i] != want[i] {
			t.Errorf("chunk %d: expected size %d, got %d", i, want[i], inner.batchSizes[i])
		}
	}
	if res.TotalTokens != 5 {
		t.Errorf("expected TotalTokens=5, got %d", res.TotalTokens)
	}
}

func TestInstrumentedEmbedder_BatchEmbed_Empty(t *testing.T) {
	inner := &mockEmbedder{}
	res, err := NewInstrumentedEmbedder(inner, "test", "m", nil).BatchEmbed(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Embeddings != nil || len(inner.batchSizes) != 0 {
		t.Error("expected no provider call for empty input")
	}
}

func TestInstrumentedEmbedder_BatchEmbed_InnerError(t *testing.T) {
	inner := &mockEmbedder{err: errors.New("connection reset")}

	_, err := NewInstrumentedEmbedder(inner, "test", "m", nil).BatchEmbed(context.Background(), []string{"a"})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected ErrEmbeddingProviderError, got %v", err)
	}
}

func TestInstrumentedEmbedder_BatchEmbed_CountMismatch(t *testing.T) {
	inner := &mockEmbedder{vector: []float32{1}, short: true}

	_, err := NewInstrumentedEmbedder(inner, "test", "m", nil).BatchEmbed(context.Background(), []string{"a", "b"})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected ErrEmbeddingProviderError, got %v", err)
	}
}

func TestInstrumentedEmbedder_HealthCheck(t *testing.T) {
	healthy := NewInstrumentedEmbedder(&mockEmbedder{}, "test", "m", nil)
	if err := healthy.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	down := NewInstrumentedEmbedder(&mockEmbedder{healthErr: errors.New("401")}, "test", "m", nil)
	if err := down.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}
