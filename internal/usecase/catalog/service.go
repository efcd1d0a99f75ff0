// Package catalog serves the diagnostic listings of stored records.
package catalog

import (
	"context"
	"fmt"

	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

// Service lists jobs and seekers as stored.
type Service struct {
	jobs    JobBriefLister
	seekers SeekerSummaryLister
}

// New creates a catalog service.
func New(jobs JobBriefLister, seekers SeekerSummaryLister) *Service {
	return &Service{jobs: jobs, seekers: seekers}
}

// Jobs returns every job id and title. The result is never nil.
func (s *Service) Jobs(ctx context.Context) ([]domjob.Brief, error) {
	jobs, err := s.jobs.ListBriefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []domjob.Brief{}
	}
	return jobs, nil
}

// Seekers returns every seeker profile row. The result is never nil.
func (s *Service) Seekers(ctx context.Context) ([]domseeker.Summary, error) {
	seekers, err := s.seekers.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seekers: %w", err)
	}
	if seekers == nil {
		seekers = []domseeker.Summary{}
	}
	return seekers, nil
}
