// Package profile reads the shared profiles table (one row per auth user).
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LBuyana/talentflow-app/internal/db"
	"github.com/LBuyana/talentflow-app/internal/domain"
)

const (
	idByUserSQL = `SELECT id::text FROM profiles WHERE user_id::text = $1 LIMIT 1`
	sampleSQL   = `SELECT id::text FROM profiles LIMIT $1`
)

// Repo reads profiles.
type Repo struct {
	q db.Querier
}

// New creates a profile repository.
func New(q db.Querier) *Repo {
	return &Repo{q: q}
}

// IDByUser resolves the profile id owned by an auth user.
func (r *Repo) IDByUser(ctx context.Context, userID string) (string, error) {
	var id string
	err := r.q.QueryRow(ctx, idByUserSQL, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("user %s: %w", userID, domain.ErrProfileNotFound)
		}
		return "", &db.Error{Op: db.OpProfileByUser, Err: err}
	}
	if id == "" {
		return "", fmt.Errorf("user %s: %w", userID, domain.ErrProfileNotFound)
	}
	return id, nil
}

// SampleIDs returns up to limit profile ids.
func (r *Repo) SampleIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.q.Query(ctx, sampleSQL, limit)
	if err != nil {
		return nil, &db.Error{Op: db.OpSampleProfiles, Err: err}
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &db.Error{Op: db.OpSampleProfiles, Err: err}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpSampleProfiles, Err: err}
	}
	return ids, nil
}
