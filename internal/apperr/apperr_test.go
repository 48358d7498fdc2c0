package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestTaxonomyMatching(t *testing.T) {
	v := Validation("topic", "must not be empty")
	if !IsValidation(v) {
		t.Fatal("Validation error not matched by IsValidation")
	}
	if IsNotFound(v) {
		t.Fatal("Validation error matched by IsNotFound")
	}

	nf := NotFound("session", "abc")
	if !IsNotFound(nf) {
		t.Fatal("NotFound error not matched by IsNotFound")
	}

	// Wrapping must not break matching.
	wrapped := fmt.Errorf("ending session: %w", nf)
	if !IsNotFound(wrapped) {
		t.Fatal("wrapped NotFound error not matched")
	}
}

func TestStorageUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("session create", cause)
	if !errors.Is(err, cause) {
		t.Fatal("StorageError must unwrap to its cause")
	}
	var se *StorageError
	if !errors.As(err, &se) || se.Op != "session create" {
		t.Fatalf("unexpected storage error: %v", err)
	}
}
