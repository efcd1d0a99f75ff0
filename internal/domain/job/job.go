// Package job holds the job posting entity.
package job

import (
	"strings"

	"github.com/LBuyana/talentflow-app/internal/domain"
)

// Posting is a read-only snapshot of a job_postings row. Absent text columns are "".
type Posting struct {
	ID             string
	Title          string
	Description    string
	RequiredSkills domain.Skills
	CompanyName    string
}

// Text returns the corpus blob: title, description and skills separated by spaces, trimmed.
func (p *Posting) Text() string {
	return strings.TrimSpace(p.Title + " " + p.Description + " " + p.RequiredSkills.Text())
}

// Brief is the id/title pair shown by diagnostic listings.
type Brief struct {
	ID    string
	Title string
}
