package manager

import (
	"errors"
	"strings"
	"testing"
)

func TestSessionNotFoundPredicate(t *testing.T) {
	err := ErrSessionNotFound("abc")
	if !IsSessionNotFound(err) {
		t.Fatal("IsSessionNotFound(ErrSessionNotFound) = false")
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Fatalf("message = %q", err.Error())
	}
	if IsSessionNotFound(errors.New("other")) {
		t.Fatal("IsSessionNotFound matched a plain error")
	}
}

func TestEngineUnavailablePredicate(t *testing.T) {
	err := ErrEngineUnavailable("no runtime")
	if !IsEngineUnavailable(err) {
		t.Fatal("IsEngineUnavailable(ErrEngineUnavailable) = false")
	}
	if IsEngineUnavailable(errors.New("other")) {
		t.Fatal("IsEngineUnavailable matched a plain error")
	}
	if IsSessionNotFound(err) || IsEngineUnavailable(ErrSessionNotFound("x")) {
		t.Fatal("predicates crossed error types")
	}
}
