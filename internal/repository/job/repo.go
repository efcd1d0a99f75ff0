package job

import (
	"context"

	"github.com/LBuyana/talentflow-app/internal/db"
	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
)

const (
	listSQL = `SELECT id::text,
       COALESCE(title, ''),
       COALESCE(description, ''),
       to_jsonb(required_skills),
       COALESCE(company_name, '')
FROM job_postings`

	listBriefsSQL = `SELECT id::text, COALESCE(title, '') FROM job_postings`
)

// Repo reads job postings.
type Repo struct {
	q db.Querier
}

// New creates a job posting repository.
func New(q db.Querier) *Repo {
	return &Repo{q: q}
}

// List returns every job posting in table order.
func (r *Repo) List(ctx context.Context) ([]domjob.Posting, error) {
	rows, err := r.q.Query(ctx, listSQL)
	if err != nil {
		return nil, &db.Error{Op: db.OpListJobs, Err: err}
	}
	defer rows.Close()

	var out []domjob.Posting
	for rows.Next() {
		var row postingRow
		if err := rows.Scan(&row.id, &row.title, &row.description, &row.skills, &row.company); err != nil {
			return nil, &db.Error{Op: db.OpListJobs, Err: err}
		}
		p, err := row.toDomain()
		if err != nil {
			return nil, &db.Error{Op: db.OpListJobs, Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpListJobs, Err: err}
	}
	return out, nil
}

// ListBriefs returns id and title of every job posting.
func (r *Repo) ListBriefs(ctx context.Context) ([]domjob.Brief, error) {
	rows, err := r.q.Query(ctx, listBriefsSQL)
	if err != nil {
		return nil, &db.Error{Op: db.OpListJobBriefs, Err: err}
	}
	defer rows.Close()

	var out []domjob.Brief
	for rows.Next() {
		var b domjob.Brief
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, &db.Error{Op: db.OpListJobBriefs, Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpListJobBriefs, Err: err}
	}
	return out, nil
}
