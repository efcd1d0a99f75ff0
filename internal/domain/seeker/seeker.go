// Package seeker holds the candidate profile entity.
package seeker

import (
	"strings"

	"github.com/LBuyana/talentflow-app/internal/domain"
)

// UnknownName is used when a seeker has no joined profile name.
const UnknownName = "Unknown"

// Profile is a read-only snapshot of a seeker_profiles row joined with its profiles row.
type Profile struct {
	ProfileID  string
	Bio        string
	Skills     domain.Skills
	CVFilePath string
	FullName   string
}

// HasCV reports whether the profile references an uploaded CV.
func (p *Profile) HasCV() bool {
	return strings.TrimSpace(p.CVFilePath) != ""
}

// Weights sets how many copies of each field go into the text blob.
// Repetition raises term frequency, so skills > bio > CV in the defaults.
type Weights struct {
	Bio    int
	Skills int
	CV     int
}

// DefaultWeights returns the 3x bio, 5x skills, 1x CV blend.
func DefaultWeights() Weights {
	return Weights{Bio: 3, Skills: 5, CV: 1}
}

// Text returns the weighted corpus blob for the profile with the given CV text.
func (p *Profile) Text(w Weights, cvText string) string {
	parts := make([]string, 0, w.Bio+w.Skills+w.CV)
	parts = appendCopies(parts, p.Bio, w.Bio)
	parts = appendCopies(parts, p.Skills.Text(), w.Skills)
	parts = appendCopies(parts, cvText, w.CV)
	return strings.TrimSpace(strings.Join(parts, " "))
}

func appendCopies(parts []string, s string, n int) []string {
	for range n {
		parts = append(parts, s)
	}
	return parts
}

// Summary is the raw listing row shown by diagnostic endpoints.
type Summary struct {
	ProfileID string
	Bio       string
	Skills    domain.Skills
}
