package seeker

import (
	"context"

	"github.com/LBuyana/talentflow-app/internal/db"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

const (
	// The display name is joined in the same query to avoid a lookup per seeker.
	listSQL = `SELECT sp.profile_id::text,
       COALESCE(sp.bio, ''),
       to_jsonb(sp.skills),
       COALESCE(sp.cv_file_path, ''),
       COALESCE(p.full_name, $1)
FROM seeker_profiles sp
LEFT JOIN profiles p ON p.id = sp.profile_id`

	listSummariesSQL = `SELECT profile_id::text, COALESCE(bio, ''), to_jsonb(skills) FROM seeker_profiles`

	existsSQL = `SELECT EXISTS (SELECT 1 FROM seeker_profiles WHERE profile_id::text = $1)`
)

// Repo reads seeker profiles.
type Repo struct {
	q db.Querier
}

// New creates a seeker profile repository.
func New(q db.Querier) *Repo {
	return &Repo{q: q}
}

// List returns every seeker profile with its joined display name, in table order.
func (r *Repo) List(ctx context.Context) ([]domseeker.Profile, error) {
	rows, err := r.q.Query(ctx, listSQL, domseeker.UnknownName)
	if err != nil {
		return nil, &db.Error{Op: db.OpListSeekers, Err: err}
	}
	defer rows.Close()

	var out []domseeker.Profile
	for rows.Next() {
		var row profileRow
		if err := rows.Scan(&row.profileID, &row.bio, &row.skills, &row.cvFilePath, &row.fullName); err != nil {
			return nil, &db.Error{Op: db.OpListSeekers, Err: err}
		}
		p, err := row.toDomain()
		if err != nil {
			return nil, &db.Error{Op: db.OpListSeekers, Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpListSeekers, Err: err}
	}
	return out, nil
}

// ListSummaries returns profile_id, bio and skills of every seeker.
func (r *Repo) ListSummaries(ctx context.Context) ([]domseeker.Summary, error) {
	rows, err := r.q.Query(ctx, listSummariesSQL)
	if err != nil {
		return nil, &db.Error{Op: db.OpListSummaries, Err: err}
	}
	defer rows.Close()

	var out []domseeker.Summary
	for rows.Next() {
		var row summaryRow
		if err := rows.Scan(&row.profileID, &row.bio, &row.skills); err != nil {
			return nil, &db.Error{Op: db.OpListSummaries, Err: err}
		}
		s, err := row.toDomain()
		if err != nil {
			return nil, &db.Error{Op: db.OpListSummaries, Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpListSummaries, Err: err}
	}
	return out, nil
}

// Exists reports whether a seeker profile row exists for profileID.
func (r *Repo) Exists(ctx context.Context, profileID string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, existsSQL, profileID).Scan(&exists); err != nil {
		return false, &db.Error{Op: db.OpSeekerExists, Err: err}
	}
	return exists, nil
}
