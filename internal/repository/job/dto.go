package job

import (
	"github.com/LBuyana/talentflow-app/internal/domain"
	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
)

// postingRow mirrors the columns selected by listSQL.
type postingRow struct {
	id          string
	title       string
	description string
	skills      []byte
	company     string
}

func (r *postingRow) toDomain() (domjob.Posting, error) {
	skills, err := domain.ParseSkills(r.skills)
	if err != nil {
		return domjob.Posting{}, err
	}
	return domjob.Posting{
		ID:             r.id,
		Title:          r.title,
		Description:    r.description,
		RequiredSkills: skills,
		CompanyName:    r.company,
	}, nil
}
