package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/LBuyana/talentflow-app/internal/domain"
	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

type mockJobs struct {
	briefs []domjob.Brief
	err    error
}

func (m *mockJobs) ListBriefs(_ context.Context) ([]domjob.Brief, error) { return m.briefs, m.err }

type mockSeekers struct {
	summaries []domseeker.Summary
	err       error
}

func (m *mockSeekers) ListSummaries(_ context.Context) ([]domseeker.Summary, error) {
	return m.summaries, m.err
}

func TestJobs(t *testing.T) {
	svc := New(&mockJobs{briefs: []domjob.Brief{{ID: "j1", Title: "Backend Engineer"}}}, &mockSeekers{})

	jobs, err := svc.Jobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Backend Engineer" {
		t.Errorf("unexpected jobs %+v", jobs)
	}
}

func TestSeekers(t *testing.T) {
	summaries := []domseeker.Summary{{ProfileID: "s1", Bio: "gopher", Skills: domain.Skills{"Go"}}}
	svc := New(&mockJobs{}, &mockSeekers{summaries: summaries})

	seekers, err := svc.Seekers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seekers) != 1 || seekers[0].ProfileID != "s1" {
		t.Errorf("unexpected seekers %+v", seekers)
	}
}

func TestEmptyListingsAreNotNil(t *testing.T) {
	svc := New(&mockJobs{}, &mockSeekers{})

	jobs, err := svc.Jobs(context.Background())
	if err != nil || jobs == nil {
		t.Errorf("expected empty job list, got %v / %v", jobs, err)
	}
	seekers, err := svc.Seekers(context.Background())
	if err != nil || seekers == nil {
		t.Errorf("expected empty seeker list, got %v / %v", seekers, err)
	}
}

func TestErrorsWrapped(t *testing.T) {
	dbErr := errors.New("relation does not exist")
	svc := New(&mockJobs{err: dbErr}, &mockSeekers{err: dbErr})

	if _, err := svc.Jobs(context.Background()); !errors.Is(err, dbErr) {
		t.Errorf("expected wrapped error, got %v", err)
	}
	if _, err := svc.Seekers(context.Background()); !errors.Is(err, dbErr) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}
