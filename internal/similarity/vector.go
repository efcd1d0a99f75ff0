// Package similarity vectorizes corpus texts and scores them by cosine similarity.
package similarity

import (
	"context"
	"math"
)

// Vector is a dense document vector.
type Vector []float64

// Vectorizer maps every text of a corpus to a vector. Vectors are only comparable
// within one call.
type Vectorizer interface {
	Vectorize(ctx context.Context, texts []string) ([]Vector, error)
}

// Cosine returns the cosine similarity of a and b. A zero-norm vector scores 0.
func Cosine(a, b Vector) float64 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := range n {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
