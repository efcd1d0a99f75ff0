package similarity

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/LBuyana/talentflow-app/internal/domain"
)

// TFIDF is a term-frequency / inverse-document-frequency vectorizer fitted on
// each corpus it is given: lowercase tokens of two or more word characters,
// English stop words dropped, smooth idf, L2-normalised rows.
type TFIDF struct{}

// NewTFIDF creates a TF-IDF vectorizer.
func NewTFIDF() *TFIDF { return &TFIDF{} }

// Vectorize fits the vocabulary on texts and returns one row per text.
func (t *TFIDF) Vectorize(_ context.Context, texts []string) ([]Vector, error) {
	docs := make([]map[string]int, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		counts := make(map[string]int)
		for _, tok := range tokenize(text) {
			counts[tok]++
		}
		for term := range counts {
			df[term]++
		}
		docs[i] = counts
	}

	if len(df) == 0 {
		return nil, fmt.Errorf("tfidf: %w", domain.ErrEmptyVocabulary)
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	n := float64(len(texts))
	for i, term := range vocab {
		index[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	out := make([]Vector, len(texts))
	for i, counts := range docs {
		row := make(Vector, len(vocab))
		var norm float64
		for term, c := range counts {
			j := index[term]
			row[j] = float64(c) * idf[j]
			norm += row[j] * row[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
		out[i] = row
	}
	return out, nil
}

// tokenize lowercases s and returns runs of at least two letters, digits or
// underscores that are not stop words.
func tokenize(s string) []string {
	isWord := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool { return !isWord(r) })

	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
