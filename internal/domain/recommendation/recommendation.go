// Package recommendation holds ranked results returned to API callers.
package recommendation

import (
	"math"

	"github.com/LBuyana/talentflow-app/internal/domain"
)

// Limit bounds.
const (
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 50
)

// ClampLimit forces limit into [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	return max(MinLimit, min(limit, MaxLimit))
}

// RoundScore rounds a similarity score to 4 decimal digits.
func RoundScore(score float64) float64 {
	return math.Round(score*1e4) / 1e4
}

// Job is a job recommended to a seeker.
type Job struct {
	JobID       string  `json:"job_id"`
	Score       float64 `json:"score"`
	Title       string  `json:"title"`
	CompanyName string  `json:"company_name"`
	Description string  `json:"description"`
}

// Seeker is a seeker recommended for a job.
type Seeker struct {
	ProfileID string        `json:"profile_id"`
	Score     float64       `json:"score"`
	FullName  string        `json:"full_name"`
	Bio       string        `json:"bio"`
	Skills    domain.Skills `json:"skills"`
}
