package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("missing"), http.StatusNotFound},
		{Validation("bad"), http.StatusBadRequest},
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{Internal("boom"), http.StatusInternalServerError},
		{Unavailable("mail relay down", errors.New("dial tcp")), http.StatusBadGateway},
		{RateLimited("slow down"), http.StatusTooManyRequests},
		{New(KindUnknown, "?"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.err.Message, tc.want, got)
		}
	}
}

func TestGetKindFollowsWrapping(t *testing.T) {
	cause := errors.New("smtp 421")
	err := fmt.Errorf("send alert: %w", Unavailable("owner notification failed", cause))

	if !Is(err, KindUnavailable) {
		t.Fatalf("expected wrapped error to keep its kind, got %v", GetKind(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("expected plain error to have unknown kind")
	}
}

func TestErrorMessageIncludesOp(t *testing.T) {
	err := Validation("name is required").WithOp("leads.Submit")
	if err.Error() != "leads.Submit: name is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
