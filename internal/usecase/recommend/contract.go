package recommend

import (
	"context"

	domcorpus "github.com/LBuyana/talentflow-app/internal/domain/corpus"
)

// CorpusBuilder assembles a fresh corpus from the backend.
type CorpusBuilder interface {
	Build(ctx context.Context) (domcorpus.Corpus, error)
}

// Scorer returns the similarity of texts[query] to every text.
type Scorer interface {
	Scores(ctx context.Context, texts []string, query int) ([]float64, error)
}

// ProfileResolver maps an auth user id to a profile id.
type ProfileResolver interface {
	IDByUser(ctx context.Context, userID string) (string, error)
}

// SeekerChecker reports whether a seeker profile row exists.
type SeekerChecker interface {
	Exists(ctx context.Context, profileID string) (bool, error)
}
