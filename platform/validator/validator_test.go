package validator

import (
	"errors"
	"testing"
)

type contact struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Extra struct {
		Phone string `json:"phone" validate:"required"`
	} `json:"extra"`
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	err := v.Struct(contact{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := FieldErrors(err)
	want := map[string]string{"name": "required", "email": "email", "extra.phone": "required"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for field, rule := range want {
		if got[field] != rule {
			t.Fatalf("field %s: expected %q, got %q (all: %v)", field, rule, got[field], got)
		}
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	if got := FieldErrors(errors.New("boom")); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := FieldErrors(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
