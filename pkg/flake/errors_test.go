package flake

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := NewError("FLK-TST-0001", "something broke")
	if got := err.Error(); got != "[FLK-TST-0001] something broke" {
		t.Errorf("Error() = %q", got)
	}

	with := err.WithDetails("field x")
	if got := with.Error(); !strings.Contains(got, "field x") {
		t.Errorf("WithDetails().Error() = %q, missing details", got)
	}
}

func TestError_Is(t *testing.T) {
	err := ErrMalformedToken.WithDetails("too short")
	if !errors.Is(err, ErrMalformedToken) {
		t.Error("errors.Is() = false for same code with details")
	}
	if errors.Is(err, ErrOutOfRange) {
		t.Error("errors.Is() = true across differing codes")
	}

	wrapped := fmt.Errorf("mint: %w", err)
	if !errors.Is(wrapped, ErrMalformedToken) {
		t.Error("errors.Is() = false through fmt.Errorf wrapping")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("rng closed")
	err := ErrEntropy.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false for the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() did not return the cause")
	}
}

func TestIsCode(t *testing.T) {
	err := ErrOutOfRange.WithDetails("identifier")

	if !IsCode(err, "FLK-GEN-4001") {
		t.Error("IsCode() = false for matching code")
	}
	if IsCode(err, "FLK-TOK-4000") {
		t.Error("IsCode() = true for differing code")
	}
	if !IsCode(err, "") {
		t.Error(`IsCode(err, "") = false for a flake Error`)
	}
	if IsCode(errors.New("plain"), "") {
		t.Error("IsCode() = true for a non-flake error")
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(ErrMalformedToken); got != "FLK-TOK-4000" {
		t.Errorf("ErrorCode() = %q, want FLK-TOK-4000", got)
	}
	if got := ErrorCode(errors.New("plain")); got != "" {
		t.Errorf("ErrorCode(plain) = %q, want empty", got)
	}
}
