// Package health reports backend reachability.
package health

import (
	"context"

	"go.uber.org/zap"

	logpkg "github.com/LBuyana/talentflow-app/internal/logger"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// DBCheck is the outcome of a test query. Err is nil on success.
type DBCheck struct {
	IDs []string
	Err error
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	embedding EmbeddingChecker
	profiles  ProfileSampler
}

// New creates a Service. embedding and profiles can be nil.
func New(db DBPinger, embedding EmbeddingChecker, profiles ProfileSampler) *Service {
	return &Service{db: db, embedding: embedding, profiles: profiles}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	log := logpkg.FromContext(ctx)

	if err := s.db.Ping(ctx); err != nil {
		log.Warn("Database health check failed", zap.Error(err))
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			log.Warn("Embedding health check failed", zap.Error(err))
			checks["embedding"] = CheckError
		} else {
			checks["embedding"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

// TestDB reads one profile id. Failures are reported in the check, never returned.
func (s *Service) TestDB(ctx context.Context) DBCheck {
	if s.profiles == nil {
		return DBCheck{IDs: []string{}}
	}
	ids, err := s.profiles.SampleIDs(ctx, 1)
	if err != nil {
		logpkg.FromContext(ctx).Warn("Test query failed", zap.Error(err))
		return DBCheck{Err: err}
	}
	return DBCheck{IDs: ids}
}
