package chi

import (
	"context"

	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
	"github.com/LBuyana/talentflow-app/internal/domain/recommendation"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
	healthuc "github.com/LBuyana/talentflow-app/internal/usecase/health"
)

// Recommender ranks jobs and seekers.
type Recommender interface {
	JobsForSeeker(ctx context.Context, seekerID string, limit int) ([]recommendation.Job, error)
	SeekersForJob(ctx context.Context, jobID string, limit int) ([]recommendation.Seeker, error)
	JobsForUser(ctx context.Context, userID string, limit int) ([]recommendation.Job, error)
}

// Catalog lists stored records for diagnostics.
type Catalog interface {
	Jobs(ctx context.Context) ([]domjob.Brief, error)
	Seekers(ctx context.Context) ([]domseeker.Summary, error)
}

// HealthService reports backend reachability.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
	TestDB(ctx context.Context) healthuc.DBCheck
}
