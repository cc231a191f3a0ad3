package errors

import (
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	underlying := errors.New("must be between 0 and 100")
	err := NewConfigError("extract.score_cutoff", "120", underlying)

	if err.Type != ErrorTypeConfig {
		t.Errorf("Expected Type to be ErrorTypeConfig, got %v", err.Type)
	}

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := "config error for field extract.score_cutoff (value 120): must be between 0 and 100"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if err.Timestamp.IsZero() {
		t.Errorf("Expected Timestamp to be set")
	}
}

func TestConfigError_NoValue(t *testing.T) {
	err := NewConfigError("batch", "", ErrOutOfRange)

	expectedMsg := "config error for field batch: value out of range"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestLookupError(t *testing.T) {
	err := NewScorerError("jaro")
	if !errors.Is(err, ErrUnknownScorer) {
		t.Errorf("Expected scorer error to wrap ErrUnknownScorer")
	}
	if err.Error() != `scorer lookup failed for "jaro": unknown scorer` {
		t.Errorf("Unexpected message %q", err.Error())
	}

	perr := NewPolicyError("newest")
	if !errors.Is(perr, ErrUnknownPolicy) {
		t.Errorf("Expected policy error to wrap ErrUnknownPolicy")
	}

	var lookup *LookupError
	wrapped := NewConfigError("dedupe.policy", "newest", perr)
	if !errors.As(wrapped, &lookup) {
		t.Fatalf("Expected errors.As to find the LookupError")
	}
	if lookup.Name != "newest" {
		t.Errorf("Expected Name newest, got %s", lookup.Name)
	}
}

func TestMultiError(t *testing.T) {
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	multi := NewMultiError([]error{err1, nil, err2})
	if len(multi.Errors) != 2 {
		t.Fatalf("Expected nil errors to be filtered, got %d", len(multi.Errors))
	}

	if !errors.Is(multi, err1) || !errors.Is(multi, err2) {
		t.Errorf("Expected multi error to match both wrapped errors")
	}

	if multi.ErrorOrNil() == nil {
		t.Errorf("Expected non-nil error")
	}

	single := NewMultiError([]error{err1})
	if single.Error() != "error 1" {
		t.Errorf("Expected single error message, got %q", single.Error())
	}

	empty := NewMultiError(nil)
	if empty.ErrorOrNil() != nil {
		t.Errorf("Expected nil for empty multi error")
	}
	if empty.Error() != "no errors" {
		t.Errorf("Expected 'no errors', got %q", empty.Error())
	}
}
