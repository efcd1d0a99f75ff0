// Package gemini embeds corpus texts through the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/LBuyana/talentflow-app/internal/domain"
	"github.com/LBuyana/talentflow-app/internal/metrics"
)

// ProviderName labels metrics emitted by this provider.
const ProviderName = "gemini"

const taskType = "SEMANTIC_SIMILARITY"

// modelsAPI is the subset of genai.Models used by the embedder.
type modelsAPI interface {
	EmbedContent(
		ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig,
	) (*genai.EmbedContentResponse, error)
	Get(ctx context.Context, model string, config *genai.GetModelConfig) (*genai.Model, error)
}

// Config holds the Gemini embedding settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
	Logger     *zap.Logger
}

// Embedder is an embedding provider backed by the Gemini API.
type Embedder struct {
	models     modelsAPI
	model      string
	dimensions int
	logger     *zap.Logger
}

// NewEmbedder creates a Gemini embedding provider.
func NewEmbedder(ctx context.Context, cfg *Config) (*Embedder, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("gemini embedding model is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newEmbedder(client.Models, model, cfg.Dimensions, cfg.Logger), nil
}

func newEmbedder(models modelsAPI, model string, dimensions int, logger *zap.Logger) *Embedder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Embedder{models: models, model: model, dimensions: dimensions, logger: logger}
}

// BatchEmbed implements domain.BatchEmbedder with a single EmbedContent call.
func (e *Embedder) BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	if len(texts) == 0 {
		return domain.BatchEmbeddingResult{}, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	config := &genai.EmbedContentConfig{TaskType: taskType}
	if e.dimensions > 0 {
		dims := int32(e.dimensions) //nolint:gosec // bounded by config.Validate
		config.OutputDimensionality = &dims
	}

	start := time.Now()
	resp, err := e.models.EmbedContent(ctx, e.model, contents, config)
	duration := time.Since(start)

	if err != nil {
		e.fail("api_error")
		e.logger.Warn("Gemini embedding request failed", zap.Int("texts", len(texts)), zap.Error(err))
		return domain.BatchEmbeddingResult{}, parseAPIError(err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		got := 0
		if resp != nil {
			got = len(resp.Embeddings)
		}
		e.fail("count_mismatch")
		return domain.BatchEmbeddingResult{}, fmt.Errorf(
			"embedding count mismatch: got %d, want %d: %w", got, len(texts), domain.ErrEmbeddingProviderError,
		)
	}

	embeddings := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil {
			e.fail("empty_response")
			return domain.BatchEmbeddingResult{}, fmt.Errorf(
				"empty embedding at %d: %w", i, domain.ErrEmbeddingProviderError,
			)
		}
		embeddings[i] = emb.Values
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(ProviderName, e.model, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(ProviderName, e.model).Observe(duration.Seconds())

	return domain.BatchEmbeddingResult{Embeddings: embeddings}, nil
}

// HealthCheck verifies the configured model is reachable.
func (e *Embedder) HealthCheck(ctx context.Context) error {
	if _, err := e.models.Get(ctx, e.model, nil); err != nil {
		return fmt.Errorf("get model %s: %w", e.model, err)
	}
	return nil
}

func (e *Embedder) fail(errorType string) {
	metrics.EmbeddingRequestsTotal.WithLabelValues(ProviderName, e.model, "error").Inc()
	metrics.EmbeddingErrorsTotal.WithLabelValues(ProviderName, e.model, errorType).Inc()
}

func parseAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("gemini API error %d %s: %s: %w",
			apiErr.Code, apiErr.Status, apiErr.Message, domain.ErrEmbeddingProviderError)
	}
	return fmt.Errorf("gemini request failed: %v: %w", err, domain.ErrEmbeddingProviderError)
}
