package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrEmptyVocabulary signals a corpus with no indexable terms after stop-word filtering.
	ErrEmptyVocabulary = errors.New("empty vocabulary; perhaps the documents only contain stop words")
)

// Lookup failures surfaced to API callers. Each wraps ErrNotFound.
var (
	ErrSeekerNotFound  = &NotFoundError{Detail: "Seeker profile not found"}
	ErrJobNotFound     = &NotFoundError{Detail: "Job posting not found"}
	ErrProfileNotFound = &NotFoundError{Detail: "Profile not found for user_id"}
	ErrSeekerNotSetUp  = &NotFoundError{Detail: "Seeker profile not found. Complete seeker profile setup first."}
)

// NotFoundError carries the client-facing message of a failed lookup.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
