package jsonschema

import (
	"errors"
	"testing"
)

func TestScopeStackPushResolvesRelativeAgainstTop(t *testing.T) {
	s := newScopeStack("http://example.com/root.json")
	child := s.push("sub.json")
	if child != "http://example.com/sub.json" {
		t.Errorf("got %q", child)
	}
	grandchild := s.push("#frag")
	if grandchild != "http://example.com/sub.json#frag" {
		t.Errorf("got %q", grandchild)
	}
	s.pop()
	if s.top() != "http://example.com/sub.json" {
		t.Errorf("pop did not restore parent scope, got %q", s.top())
	}
}

func TestJoinPointerEscapesSegments(t *testing.T) {
	frag := joinPointer([]string{"a/b", "c~d"})
	want := "#/a~1b/c~0d"
	if frag != want {
		t.Errorf("got %q, want %q", frag, want)
	}
}

func TestURIResolverRejectsDuplicateRegistration(t *testing.T) {
	r := newURIResolver()
	if err := r.Register("http://x/#", nullValidator); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	err := r.Register("http://x/#", acceptAll)
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if !errors.Is(err, ErrDuplicateFragment) {
		t.Errorf("expected ErrDuplicateFragment, got %v", err)
	}
}

func TestURIResolverLookup(t *testing.T) {
	r := newURIResolver()
	_ = r.Register("http://x/#/definitions/pos", acceptAll)
	v, ok := r.Lookup("http://x/#/definitions/pos")
	if !ok || v != Validator(acceptAll) {
		t.Error("expected lookup to find the registered validator")
	}
	if _, ok := r.Lookup("http://x/#/definitions/missing"); ok {
		t.Error("expected lookup miss for unregistered URI")
	}
}
