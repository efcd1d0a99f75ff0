package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"

	"github.com/LBuyana/talentflow-app/internal/domain"
)

type fakeModels struct {
	resp     *genai.EmbedContentResponse
	err      error
	getErr   error
	model    string
	contents []*genai.Content
	config   *genai.EmbedContentConfig
}

func (f *fakeModels) EmbedContent(
	_ context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig,
) (*genai.EmbedContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func (f *fakeModels) Get(_ context.Context, _ string, _ *genai.GetModelConfig) (*genai.Model, error) {
	return &genai.Model{}, f.getErr
}

func TestNewEmbedder_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing key", Config{Model: "text-embedding-004"}},
		{"missing model", Config{APIKey: "k"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewEmbedder(context.Background(), &tc.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestBatchEmbed(t *testing.T) {
	fake := &fakeModels{resp: &genai.EmbedContentResponse{Embeddings: []*genai.ContentEmbedding{
		{Values: []float32{0.1, 0.2}},
		{Values: []float32{0.3, 0.4}},
	}}}
	emb := newEmbedder(fake, "text-embedding-004", 2, nil)

	res, err := emb.BatchEmbed(context.Background(), []string{"go developer", "designer"})
	if err != nil {
		t.Fatalf("BatchEmbed failed: %v", err)
	}
	if len(res.Embeddings) != 2 || res.Embeddings[1][0] != 0.3 {
		t.Errorf("unexpected embeddings %v", res.Embeddings)
	}
	if fake.model != "text-embedding-004" {
		t.Errorf("unexpected model %q", fake.model)
	}
	if len(fake.contents) != 2 || fake.contents[0].Parts[0].Text != "go developer" {
		t.Errorf("unexpected contents %+v", fake.contents)
	}
	if fake.config.OutputDimensionality == nil || *fake.config.OutputDimensionality != 2 {
		t.Errorf("expected output dimensionality 2, got %v", fake.config.OutputDimensionality)
	}
}

func TestBatchEmbed_Empty(t *testing.T) {
	fake := &fakeModels{}
	res, err := newEmbedder(fake, "m", 0, nil).BatchEmbed(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Embeddings != nil || fake.contents != nil {
		t.Error("expected no API call for empty input")
	}
}

func TestBatchEmbed_CountMismatch(t *testing.T) {
	fake := &fakeModels{resp: &genai.EmbedContentResponse{Embeddings: []*genai.ContentEmbedding{{Values: []float32{1}}}}}

	_, err := newEmbedder(fake, "m", 0, nil).BatchEmbed(context.Background(), []string{"a", "b"})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected ErrEmbeddingProviderError, got %v", err)
	}
}

func TestBatchEmbed_APIError(t *testing.T) {
	fake := &fakeModels{err: genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}}

	_, err := newEmbedder(fake, "m", 0, nil).BatchEmbed(context.Background(), []string{"a"})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected ErrEmbeddingProviderError, got %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	if err := newEmbedder(&fakeModels{}, "m", 0, nil).HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fake := &fakeModels{getErr: errors.New("unauthenticated")}
	if err := newEmbedder(fake, "m", 0, nil).HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
