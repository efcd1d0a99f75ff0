package seeker

import (
	"github.com/LBuyana/talentflow-app/internal/domain"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

// profileRow mirrors the columns selected by listSQL.
type profileRow struct {
	profileID  string
	bio        string
	skills     []byte
	cvFilePath string
	fullName   string
}

func (r *profileRow) toDomain() (domseeker.Profile, error) {
	skills, err := domain.ParseSkills(r.skills)
	if err != nil {
		return domseeker.Profile{}, err
	}
	return domseeker.Profile{
		ProfileID:  r.profileID,
		Bio:        r.bio,
		Skills:     skills,
		CVFilePath: r.cvFilePath,
		FullName:   r.fullName,
	}, nil
}

// summaryRow mirrors the columns selected by listSummariesSQL.
type summaryRow struct {
	profileID string
	bio       string
	skills    []byte
}

func (r *summaryRow) toDomain() (domseeker.Summary, error) {
	skills, err := domain.ParseSkills(r.skills)
	if err != nil {
		return domseeker.Summary{}, err
	}
	return domseeker.Summary{ProfileID: r.profileID, Bio: r.bio, Skills: skills}, nil
}
