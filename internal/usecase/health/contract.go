package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}

// ProfileSampler reads a few profile ids to prove the backend answers queries.
type ProfileSampler interface {
	SampleIDs(ctx context.Context, limit int) ([]string, error)
}
