package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/LBuyana/talentflow-app/internal/domain"
	domcorpus "github.com/LBuyana/talentflow-app/internal/domain/corpus"
	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
	"github.com/LBuyana/talentflow-app/internal/metrics"
	"github.com/LBuyana/talentflow-app/internal/similarity"
)

// --- Mocks ---

type mockCorpus struct {
	corpus domcorpus.Corpus
	err    error
	calls  int
}

func (m *mockCorpus) Build(_ context.Context) (domcorpus.Corpus, error) {
	m.calls++
	return m.corpus, m.err
}

type mockScorer struct {
	scores []float64
	err    error
	query  int
}

func (m *mockScorer) Scores(_ context.Context, _ []string, query int) ([]float64, error) {
	m.query = query
	return m.scores, m.err
}

type mockProfiles struct {
	ids map[string]string
	err error
}

func (m *mockProfiles) IDByUser(_ context.Context, userID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	id, ok := m.ids[userID]
	if !ok {
		return "", fmt.Errorf("profile by user %s: %w", userID, domain.ErrProfileNotFound)
	}
	return id, nil
}

type mockSeekers struct {
	exists map[string]bool
	err    error
}

func (m *mockSeekers) Exists(_ context.Context, profileID string) (bool, error) {
	return m.exists[profileID], m.err
}

// scenarioCorpus holds two jobs and one seeker whose skills match the first job.
func scenarioCorpus() domcorpus.Corpus {
	jobs := []domjob.Posting{
		{
			ID: "j1", Title: "Backend Engineer", Description: "Build APIs",
			RequiredSkills: domain.Skills{"Go", "SQL"}, CompanyName: "Acme",
		},
		{
			ID: "j2", Title: "Graphic Designer", Description: "Create illustrations",
			RequiredSkills: domain.Skills{"Photoshop"}, CompanyName: "Studio",
		},
	}
	seekers := []domseeker.Profile{
		{ProfileID: "s1", Bio: "Backend developer building APIs", Skills: domain.Skills{"SQL", "Postgres"}, FullName: "Ada"},
	}

	c := domcorpus.New(3)
	for i := range jobs {
		c.Add(jobs[i].Text(), domcorpus.NewJobDocument(jobs[i]))
	}
	for i := range seekers {
		c.Add(seekers[i].Text(domseeker.DefaultWeights(), ""), domcorpus.NewSeekerDocument(seekers[i]))
	}
	return c
}

func newScenarioService(c domcorpus.Corpus) *Service {
	return New(&mockCorpus{corpus: c}, similarity.NewEngine(similarity.NewTFIDF()), &mockProfiles{}, &mockSeekers{})
}

// --- Tests ---

func TestJobsForSeeker_Scenario(t *testing.T) {
	svc := newScenarioService(scenarioCorpus())

	jobs, err := svc.JobsForSeeker(context.Background(), "s1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].JobID != "j1" {
		t.Errorf("expected j1 first, got %s", jobs[0].JobID)
	}
	if jobs[0].Score <= jobs[1].Score {
		t.Errorf("expected descending scores, got %f then %f", jobs[0].Score, jobs[1].Score)
	}
	if jobs[1].Score != 0 {
		t.Errorf("expected unrelated job to score 0, got %f", jobs[1].Score)
	}
	if jobs[0].Title != "Backend Engineer" || jobs[0].CompanyName != "Acme" || jobs[0].Description != "Build APIs" {
		t.Errorf("unexpected job details %+v", jobs[0])
	}
}

func TestSeekersForJob_Scenario(t *testing.T) {
	svc := newScenarioService(scenarioCorpus())

	seekers, err := svc.SeekersForJob(context.Background(), "j1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seekers) != 1 {
		t.Fatalf("expected 1 seeker, got %d", len(seekers))
	}
	s := seekers[0]
	if s.ProfileID != "s1" || s.FullName != "Ada" || s.Bio != "Backend developer building APIs" {
		t.Errorf("unexpected seeker %+v", s)
	}
	if len(s.Skills) != 2 || s.Score <= 0 {
		t.Errorf("unexpected skills/score %+v", s)
	}
}

func TestJobsForSeeker_TypeMismatchIsNotFound(t *testing.T) {
	svc := newScenarioService(scenarioCorpus())

	// j1 exists but is a job, not a seeker
	_, err := svc.JobsForSeeker(context.Background(), "j1", 10)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "Seeker profile not found" {
		t.Errorf("unexpected message %q", err.Error())
	}

	_, err = svc.SeekersForJob(context.Background(), "s1", 10)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobsForSeeker_EmptyCorpus(t *testing.T) {
	scorer := &mockScorer{err: errors.New("must not be called")}
	svc := New(&mockCorpus{}, scorer, &mockProfiles{}, &mockSeekers{})

	jobs, err := svc.JobsForSeeker(context.Background(), "missing", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", jobs)
	}
}

func TestRank_StableDescendingAndLimit(t *testing.T) {
	c := domcorpus.New(5)
	c.Add("q", domcorpus.NewSeekerDocument(domseeker.Profile{ProfileID: "s1"}))
	for _, id := range []string{"a", "b", "c", "d"} {
		c.Add(id, domcorpus.NewJobDocument(domjob.Posting{ID: id}))
	}
	scorer := &mockScorer{scores: []float64{1, 0.2, 0.5, 0.2, 0.123456}}
	svc := New(&mockCorpus{corpus: c}, scorer, &mockProfiles{}, &mockSeekers{})

	jobs, err := svc.JobsForSeeker(context.Background(), "s1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scorer.query != 0 {
		t.Errorf("expected query index 0, got %d", scorer.query)
	}
	want := []string{"b", "a", "c", "d"}
	for i, j := range jobs {
		if j.JobID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, j.JobID, want[i])
		}
	}
	if jobs[3].Score != 0.1235 {
		t.Errorf("expected score rounded to 0.1235, got %f", jobs[3].Score)
	}

	limited, err := svc.JobsForSeeker(context.Background(), "s1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 2 || limited[0].JobID != "b" || limited[1].JobID != "a" {
		t.Errorf("unexpected limited result %+v", limited)
	}
}

func TestRank_LimitClamped(t *testing.T) {
	c := domcorpus.New(61)
	c.Add("q", domcorpus.NewJobDocument(domjob.Posting{ID: "j"}))
	scores := []float64{1}
	for i := range 60 {
		c.Add("s", domcorpus.NewSeekerDocument(domseeker.Profile{ProfileID: fmt.Sprintf("s%d", i)}))
		scores = append(scores, 0.5)
	}
	svc := New(&mockCorpus{corpus: c}, &mockScorer{scores: scores}, &mockProfiles{}, &mockSeekers{})

	tests := []struct {
		limit int
		want  int
	}{
		{0, 1},
		{-5, 1},
		{7, 7},
		{500, 50},
	}
	for _, tc := range tests {
		got, err := svc.SeekersForJob(context.Background(), "j", tc.limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != tc.want {
			t.Errorf("limit %d: expected %d results, got %d", tc.limit, tc.want, len(got))
		}
	}
}

func TestJobsForSeeker_Errors(t *testing.T) {
	dbErr := errors.New("connection refused")

	_, err := New(&mockCorpus{err: dbErr}, &mockScorer{}, &mockProfiles{}, &mockSeekers{}).
		JobsForSeeker(context.Background(), "s1", 10)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected corpus error, got %v", err)
	}

	scorer := &mockScorer{err: domain.ErrEmptyVocabulary}
	_, err = New(&mockCorpus{corpus: scenarioCorpus()}, scorer, &mockProfiles{}, &mockSeekers{}).
		JobsForSeeker(context.Background(), "s1", 10)
	if !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Fatalf("expected scorer error, got %v", err)
	}
}

func TestSeekersForJob_Errors(t *testing.T) {
	scorer := &mockScorer{err: domain.ErrEmptyVocabulary}
	svc := New(&mockCorpus{corpus: scenarioCorpus()}, scorer, &mockProfiles{}, &mockSeekers{})
	counter := metrics.RecommendationsTotal.WithLabelValues(KindSeekersForJob, "error")
	before := testutil.ToFloat64(counter)

	seekers, err := svc.SeekersForJob(context.Background(), "j1", 10)
	if !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Fatalf("expected scorer error, got %v", err)
	}
	if seekers != nil {
		t.Errorf("expected nil seekers on error, got %#v", seekers)
	}
	if scorer.query != 0 {
		t.Errorf("expected query index 0 for j1, got %d", scorer.query)
	}
	if after := testutil.ToFloat64(counter); after != before+1 {
		t.Errorf("expected error counter to increase by 1, got %f -> %f", before, after)
	}
}

func TestJobsForUser(t *testing.T) {
	profiles := &mockProfiles{ids: map[string]string{"u1": "s1", "u2": "p2"}}
	seekers := &mockSeekers{exists: map[string]bool{"s1": true}}
	svc := New(&mockCorpus{corpus: scenarioCorpus()}, similarity.NewEngine(similarity.NewTFIDF()), profiles, seekers)

	jobs, err := svc.JobsForUser(context.Background(), "u1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].JobID != "j1" {
		t.Errorf("unexpected jobs %+v", jobs)
	}

	_, err = svc.JobsForUser(context.Background(), "nobody", 10)
	var nfe *domain.NotFoundError
	if !errors.As(err, &nfe) || nfe != domain.ErrProfileNotFound {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}

	_, err = svc.JobsForUser(context.Background(), "u2", 10)
	if !errors.As(err, &nfe) || nfe != domain.ErrSeekerNotSetUp {
		t.Errorf("expected ErrSeekerNotSetUp, got %v", err)
	}
}

func TestJobsForUser_ExistsError(t *testing.T) {
	dbErr := errors.New("timeout")
	profiles := &mockProfiles{ids: map[string]string{"u1": "s1"}}
	corpus := &mockCorpus{corpus: scenarioCorpus()}
	svc := New(corpus, &mockScorer{}, profiles, &mockSeekers{err: dbErr})

	_, err := svc.JobsForUser(context.Background(), "u1", 10)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
	if corpus.calls != 0 {
		t.Errorf("corpus must not be built when the seeker check fails")
	}
}

func TestMetrics_RecordOutcome(t *testing.T) {
	svc := newScenarioService(scenarioCorpus())
	counter := metrics.RecommendationsTotal.WithLabelValues(KindSeekersForJob, "not_found")
	before := testutil.ToFloat64(counter)

	_, _ = svc.SeekersForJob(context.Background(), "missing", 10)

	if after := testutil.ToFloat64(counter); after != before+1 {
		t.Errorf("expected not_found counter to increase by 1, got %f -> %f", before, after)
	}
}
