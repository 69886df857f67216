package handler

import (
	"errors"
	"strings"
	"testing"
)

type validatedPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Rating   int    `validate:"omitempty,gte=1,lte=5"`
}

func TestValidator_CollectsAllFieldFailures(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&validatedPayload{Email: "not-an-email", Password: "abc", Rating: 9})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 failures, got %v", ve.Fields)
	}
	joined := strings.Join(ve.Fields, "; ")
	for _, want := range []string{"email must be a valid email", "password must be at least 6", "rating must be at most 5"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %q", want, joined)
		}
	}
}

func TestValidator_PassesValidPayload(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&validatedPayload{Email: "a@example.com", Password: "s3cret1", Rating: 5}); err != nil {
		t.Fatalf("expected valid payload to pass, got %v", err)
	}
}
