package corpus

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domcorpus "github.com/LBuyana/talentflow-app/internal/domain/corpus"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
	logpkg "github.com/LBuyana/talentflow-app/internal/logger"
	"github.com/LBuyana/talentflow-app/internal/metrics"
)

// Service assembles the job and seeker corpus from fresh backend reads.
type Service struct {
	jobs        JobLister
	seekers     SeekerLister
	extractor   TextExtractor
	weights     domseeker.Weights
	concurrency int
}

// New creates a corpus builder with default weights and extraction concurrency 4.
func New(jobs JobLister, seekers SeekerLister, extractor TextExtractor) *Service {
	return &Service{
		jobs:        jobs,
		seekers:     seekers,
		extractor:   extractor,
		weights:     domseeker.DefaultWeights(),
		concurrency: 4,
	}
}

// WithWeights overrides the seeker field repetition counts.
func (s *Service) WithWeights(w domseeker.Weights) *Service {
	s.weights = w
	return s
}

// WithConcurrency bounds parallel CV extraction. 1 extracts sequentially.
func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}
	return s
}

// Build returns all jobs (fetch order) followed by all seekers (fetch order).
// Only fetch failures are returned; CV problems degrade to an empty CV text.
func (s *Service) Build(ctx context.Context) (domcorpus.Corpus, error) {
	start := time.Now()
	defer func() {
		metrics.CorpusBuildDuration.Observe(time.Since(start).Seconds())
	}()

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return domcorpus.Corpus{}, fmt.Errorf("fetch jobs: %w", err)
	}

	seekers, err := s.seekers.List(ctx)
	if err != nil {
		return domcorpus.Corpus{}, fmt.Errorf("fetch seekers: %w", err)
	}

	cvTexts, err := s.extractCVs(ctx, seekers)
	if err != nil {
		return domcorpus.Corpus{}, err
	}

	c := domcorpus.New(len(jobs) + len(seekers))
	for i := range jobs {
		c.Add(jobs[i].Text(), domcorpus.NewJobDocument(jobs[i]))
	}
	for i := range seekers {
		c.Add(seekers[i].Text(s.weights, cvTexts[i]), domcorpus.NewSeekerDocument(seekers[i]))
	}

	metrics.CorpusDocuments.WithLabelValues(string(domcorpus.TypeJob)).Set(float64(len(jobs)))
	metrics.CorpusDocuments.WithLabelValues(string(domcorpus.TypeSeeker)).Set(float64(len(seekers)))

	logpkg.FromContext(ctx).Debug("Corpus built",
		zap.Int("jobs", len(jobs)),
		zap.Int("seekers", len(seekers)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return c, nil
}

// extractCVs returns CV text per seeker, indexed like seekers.
func (s *Service) extractCVs(ctx context.Context, seekers []domseeker.Profile) ([]string, error) {
	texts := make([]string, len(seekers))
	if s.extractor == nil {
		return texts, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range seekers {
		if !seekers[i].HasCV() {
			continue
		}
		path := seekers[i].CVFilePath
		g.Go(func() error {
			texts[i] = s.extractor.Extract(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extract cvs: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract cvs: %w", err)
	}
	return texts, nil
}
