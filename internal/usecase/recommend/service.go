package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/LBuyana/talentflow-app/internal/domain"
	domcorpus "github.com/LBuyana/talentflow-app/internal/domain/corpus"
	"github.com/LBuyana/talentflow-app/internal/domain/recommendation"
	logpkg "github.com/LBuyana/talentflow-app/internal/logger"
	"github.com/LBuyana/talentflow-app/internal/metrics"
)

// Kinds label recommendation metrics.
const (
	KindJobsForSeeker = "jobs_for_seeker"
	KindSeekersForJob = "seekers_for_job"
	KindJobsForUser   = "jobs_for_user"
)

// Service ranks jobs for seekers and seekers for jobs over a per-request corpus.
type Service struct {
	corpus   CorpusBuilder
	scorer   Scorer
	profiles ProfileResolver
	seekers  SeekerChecker
}

// New creates a recommendation service.
func New(corpus CorpusBuilder, scorer Scorer, profiles ProfileResolver, seekers SeekerChecker) *Service {
	return &Service{corpus: corpus, scorer: scorer, profiles: profiles, seekers: seekers}
}

// match is a candidate corpus document with its similarity score.
type match struct {
	doc   *domcorpus.Document
	score float64
}

// JobsForSeeker returns the jobs most similar to the seeker's profile.
func (s *Service) JobsForSeeker(ctx context.Context, seekerID string, limit int) ([]recommendation.Job, error) {
	ctx = logpkg.With(ctx, zap.String("seeker_id", seekerID))
	jobs, err := s.jobsForSeeker(ctx, seekerID, limit)
	observe(ctx, KindJobsForSeeker, len(jobs), err)
	return jobs, err
}

func (s *Service) jobsForSeeker(ctx context.Context, seekerID string, limit int) ([]recommendation.Job, error) {
	matches, err := s.rank(ctx, seekerID, domcorpus.TypeSeeker, limit)
	if err != nil {
		return nil, err
	}

	out := make([]recommendation.Job, len(matches))
	for i, m := range matches {
		j := m.doc.Job()
		out[i] = recommendation.Job{
			JobID:       j.ID,
			Score:       recommendation.RoundScore(m.score),
			Title:       j.Title,
			CompanyName: j.CompanyName,
			Description: j.Description,
		}
	}
	return out, nil
}

// SeekersForJob returns the seekers most similar to the job posting.
func (s *Service) SeekersForJob(ctx context.Context, jobID string, limit int) ([]recommendation.Seeker, error) {
	ctx = logpkg.With(ctx, zap.String("job_id", jobID))
	seekers, err := s.seekersForJob(ctx, jobID, limit)
	observe(ctx, KindSeekersForJob, len(seekers), err)
	return seekers, err
}

func (s *Service) seekersForJob(ctx context.Context, jobID string, limit int) ([]recommendation.Seeker, error) {
	matches, err := s.rank(ctx, jobID, domcorpus.TypeJob, limit)
	if err != nil {
		return nil, err
	}

	out := make([]recommendation.Seeker, len(matches))
	for i, m := range matches {
		p := m.doc.Seeker()
		out[i] = recommendation.Seeker{
			ProfileID: p.ProfileID,
			Score:     recommendation.RoundScore(m.score),
			FullName:  p.FullName,
			Bio:       p.Bio,
			Skills:    p.Skills,
		}
	}
	return out, nil
}

// JobsForUser resolves the seeker profile of an auth user and returns its job recommendations.
func (s *Service) JobsForUser(ctx context.Context, userID string, limit int) ([]recommendation.Job, error) {
	ctx = logpkg.With(ctx, zap.String("user_id", userID))
	jobs, err := s.jobsForUser(ctx, userID, limit)
	observe(ctx, KindJobsForUser, len(jobs), err)
	return jobs, err
}

func (s *Service) jobsForUser(ctx context.Context, userID string, limit int) ([]recommendation.Job, error) {
	profileID, err := s.profiles.IDByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	ok, err := s.seekers.Exists(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("check seeker profile: %w", err)
	}
	if !ok {
		return nil, domain.ErrSeekerNotSetUp
	}

	return s.jobsForSeeker(logpkg.With(ctx, zap.String("seeker_id", profileID)), profileID, limit)
}

// rank scores the corpus against document (id, typ) and returns the top documents of the opposite type.
func (s *Service) rank(ctx context.Context, id string, typ domcorpus.Type, limit int) ([]match, error) {
	c, err := s.corpus.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}
	if c.Len() == 0 {
		return []match{}, nil
	}

	query, ok := c.IndexOf(id, typ)
	if !ok {
		return nil, notFound(typ)
	}

	scores, err := s.scorer.Scores(ctx, c.Texts, query)
	if err != nil {
		return nil, fmt.Errorf("score corpus: %w", err)
	}

	want := typ.Opposite()
	matches := make([]match, 0, c.Count(want))
	for i := range c.Documents {
		if c.Documents[i].Type() == want {
			matches = append(matches, match{doc: &c.Documents[i], score: scores[i]})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if n := recommendation.ClampLimit(limit); len(matches) > n {
		matches = matches[:n]
	}
	return matches, nil
}

func notFound(typ domcorpus.Type) error {
	if typ == domcorpus.TypeJob {
		return domain.ErrJobNotFound
	}
	return domain.ErrSeekerNotFound
}

func observe(ctx context.Context, kind string, n int, err error) {
	log := logpkg.FromContext(ctx)
	switch {
	case err == nil:
		metrics.RecommendationsTotal.WithLabelValues(kind, "success").Inc()
		log.Info("Recommendations ranked", zap.String("kind", kind), zap.Int("results", n))
	case errors.Is(err, domain.ErrNotFound):
		metrics.RecommendationsTotal.WithLabelValues(kind, "not_found").Inc()
		log.Info("Recommendation target not found", zap.String("kind", kind), zap.Error(err))
	default:
		metrics.RecommendationsTotal.WithLabelValues(kind, "error").Inc()
		log.Error("Recommendation failed", zap.String("kind", kind), zap.Error(err))
	}
}
