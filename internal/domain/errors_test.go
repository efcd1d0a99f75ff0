package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_WrapsSentinel(t *testing.T) {
	err := fmt.Errorf("recommend jobs: %w", ErrSeekerNotFound)

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
	if !errors.Is(err, ErrSeekerNotFound) {
		t.Error("expected errors.Is(err, ErrSeekerNotFound)")
	}
	if errors.Is(err, ErrJobNotFound) {
		t.Error("seeker error must not match job sentinel")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Detail != "Seeker profile not found" {
		t.Errorf("unexpected detail: %v", nf)
	}
}
