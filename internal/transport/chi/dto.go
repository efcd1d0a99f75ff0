package chi

import (
	"github.com/LBuyana/talentflow-app/internal/domain"
	domjob "github.com/LBuyana/talentflow-app/internal/domain/job"
	"github.com/LBuyana/talentflow-app/internal/domain/recommendation"
	domseeker "github.com/LBuyana/talentflow-app/internal/domain/seeker"
)

const statusSuccess = "success"

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type idRow struct {
	ID string `json:"id"`
}

type testDBSuccess struct {
	Status string  `json:"status"`
	Data   []idRow `json:"data"`
}

type testDBFailure struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type jobRecommendation struct {
	JobID       string  `json:"job_id"`
	Score       float64 `json:"score"`
	Title       string  `json:"title"`
	CompanyName string  `json:"company_name"`
	Description string  `json:"description"`
}

type seekerRecommendation struct {
	ProfileID string        `json:"profile_id"`
	Score     float64       `json:"score"`
	FullName  string        `json:"full_name"`
	Bio       string        `json:"bio"`
	Skills    domain.Skills `json:"skills" swaggertype:"array,string"`
}

type jobRecommendationsResponse struct {
	Status          string              `json:"status"`
	Recommendations []jobRecommendation `json:"recommendations"`
}

type seekerRecommendationsResponse struct {
	Status          string                 `json:"status"`
	Recommendations []seekerRecommendation `json:"recommendations"`
}

type seekerRow struct {
	ProfileID string        `json:"profile_id"`
	Bio       string        `json:"bio"`
	Skills    domain.Skills `json:"skills" swaggertype:"array,string"`
}

type debugSeekersResponse struct {
	Count   int         `json:"count"`
	Seekers []seekerRow `json:"seekers"`
}

type jobRow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type debugJobsResponse struct {
	Count int      `json:"count"`
	Jobs  []jobRow `json:"jobs"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func jobsToDTO(jobs []recommendation.Job) []jobRecommendation {
	out := make([]jobRecommendation, len(jobs))
	for i, j := range jobs {
		out[i] = jobRecommendation{
			JobID:       j.JobID,
			Score:       j.Score,
			Title:       j.Title,
			CompanyName: j.CompanyName,
			Description: j.Description,
		}
	}
	return out
}

func seekersToDTO(seekers []recommendation.Seeker) []seekerRecommendation {
	out := make([]seekerRecommendation, len(seekers))
	for i, s := range seekers {
		out[i] = seekerRecommendation{
			ProfileID: s.ProfileID,
			Score:     s.Score,
			FullName:  s.FullName,
			Bio:       s.Bio,
			Skills:    s.Skills,
		}
	}
	return out
}

func seekerRowsToDTO(summaries []domseeker.Summary) []seekerRow {
	out := make([]seekerRow, len(summaries))
	for i, s := range summaries {
		out[i] = seekerRow{ProfileID: s.ProfileID, Bio: s.Bio, Skills: s.Skills}
	}
	return out
}

func jobRowsToDTO(briefs []domjob.Brief) []jobRow {
	out := make([]jobRow, len(briefs))
	for i, b := range briefs {
		out[i] = jobRow{ID: b.ID, Title: b.Title}
	}
	return out
}

func idRowsToDTO(ids []string) []idRow {
	out := make([]idRow, len(ids))
	for i, id := range ids {
		out[i] = idRow{ID: id}
	}
	return out
}
