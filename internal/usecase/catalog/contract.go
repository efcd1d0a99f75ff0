package catalog

import (
	"context"

	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

// JobBriefLister reads job ids and titles.
type JobBriefLister interface {
	ListBriefs(ctx context.Context) ([]domjob.Brief, error)
}

// SeekerSummaryLister reads raw seeker rows.
type SeekerSummaryLister interface {
	ListSummaries(ctx context.Context) ([]domseeker.Summary, error)
}
