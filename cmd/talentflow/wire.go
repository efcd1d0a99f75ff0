package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LBuyana/talentflow-app/internal/config"
	"github.com/LBuyana/talentflow-app/internal/db/postgres"
	"github.com/LBuyana/talentflow-app/internal/domain"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
	"github.com/LBuyana/talentflow-app/internal/extract"
	"github.com/LBuyana/talentflow-app/internal/metrics"
	jobrepo "github.com/LBuyana/talentflow-app/internal/repository/job"
	profilerepo "github.com/LBuyana/talentflow-app/internal/repository/profile"
	seekerrepo "github.com/LBuyana/talentflow-app/internal/repository/seeker"
	"github.com/LBuyana/talentflow-app/internal/similarity"
	geminiEmb "github.com/LBuyana/talentflow-app/internal/transport/gemini"
	openaiEmb "github.com/LBuyana/talentflow-app/internal/transport/openai"
	"github.com/LBuyana/talentflow-app/internal/transport/supabase"
	cataloguc "github.com/LBuyana/talentflow-app/internal/usecase/catalog"
	corpusuc "github.com/LBuyana/talentflow-app/internal/usecase/corpus"
	embeddinguc "github.com/LBuyana/talentflow-app/internal/usecase/embedding"
	healthuc "github.com/LBuyana/talentflow-app/internal/usecase/health"
	recommenduc "github.com/LBuyana/talentflow-app/internal/usecase/recommend"
)

// app is the assembled object graph.
type app struct {
	store     *postgres.Store
	recommend *recommenduc.Service
	catalog   *cataloguc.Service
	health    *healthuc.Service
}

func (a *app) Close() { a.store.Close() }

// buildApp is the composition root: store -> repositories -> corpus -> similarity -> services.
func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	metrics.Register()

	store, err := postgres.NewStore(ctx, postgres.Config{URL: cfg.Database.URL, MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return nil, fmt.Errorf("create database store: %w", err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database")

	jobs := jobrepo.New(store)
	seekers := seekerrepo.New(store)
	profiles := profilerepo.New(store)

	var files extract.Downloader = supabase.Disabled{}
	if cfg.Storage.URL != "" {
		bucket, err := supabase.NewBucket(supabase.Config{
			URL:    cfg.Storage.URL,
			Key:    cfg.Storage.Key,
			Bucket: cfg.Storage.Bucket,
		})
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("create storage bucket: %w", err)
		}
		files = bucket
	} else {
		logger.Warn("Storage URL not configured, CV text extraction disabled")
	}

	w := cfg.Corpus.Weights
	builder := corpusuc.New(jobs, seekers, extract.New(files)).
		WithWeights(domseeker.Weights{Bio: w.Bio, Skills: w.Skills, CV: w.CV}).
		WithConcurrency(cfg.Corpus.ExtractConcurrency)

	vectorizer, embedder, err := buildVectorizer(ctx, cfg, logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	var embeddingCheck healthuc.EmbeddingChecker
	if embedder != nil {
		embeddingCheck = embedder
	}

	return &app{
		store:     store,
		recommend: recommenduc.New(builder, similarity.NewEngine(vectorizer), profiles, seekers),
		catalog:   cataloguc.New(jobs, seekers),
		health:    healthuc.New(store, embeddingCheck, profiles),
	}, nil
}

// buildVectorizer selects TF-IDF or a provider-backed embedding vectorizer.
// The embedder is nil for TF-IDF.
func buildVectorizer(
	ctx context.Context, cfg *config.Config, logger *zap.Logger,
) (similarity.Vectorizer, *embeddinguc.InstrumentedEmbedder, error) {
	if cfg.Similarity.Vectorizer == config.VectorizerTFIDF {
		logger.Info("Using TF-IDF vectorizer")
		return similarity.NewTFIDF(), nil, nil
	}

	emb := cfg.Embedding
	var (
		provider string
		inner    domain.BatchEmbedder
	)
	switch emb.Provider {
	case config.ProviderGemini:
		g, err := geminiEmb.NewEmbedder(ctx, &geminiEmb.Config{
			APIKey:     emb.APIKey,
			BaseURL:    emb.BaseURL,
			Model:      emb.Model,
			Dimensions: emb.Dimensions,
			Logger:     logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create gemini embedder: %w", err)
		}
		provider, inner = geminiEmb.ProviderName, g
	default:
		provider = openaiEmb.ProviderName
		inner = openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     emb.APIKey,
			BaseURL:    emb.BaseURL,
			Model:      emb.Model,
			Dimensions: emb.Dimensions,
			Logger:     logger,
		})
	}

	instrumented := embeddinguc.NewInstrumentedEmbedder(inner, provider, emb.Model, logger).
		WithMaxBatchSize(emb.MaxBatchSize)
	logger.Info("Using embedding vectorizer",
		zap.String("provider", provider),
		zap.String("model", emb.Model),
		zap.Int("dimensions", emb.Dimensions),
	)
	return similarity.NewEmbedding(instrumented), instrumented, nil
}
