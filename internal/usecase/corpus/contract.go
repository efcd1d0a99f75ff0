package corpus

import (
	"context"

	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

// JobLister reads every job posting.
type JobLister interface {
	List(ctx context.Context) ([]domjob.Posting, error)
}

// SeekerLister reads every seeker profile joined with its display name.
type SeekerLister interface {
	List(ctx context.Context) ([]domseeker.Profile, error)
}

// TextExtractor converts a stored CV to text. It returns "" on any failure.
type TextExtractor interface {
	Extract(ctx context.Context, path string) string
}
