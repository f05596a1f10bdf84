package jsonschema

import "testing"

func TestNumberCmpIgnoresSurfaceSpelling(t *testing.T) {
	a := NewNumber([]byte("4.2e-4"))
	b := NewNumber([]byte("0.00042"))
	if a == nil || b == nil {
		t.Fatal("expected both numbers to parse")
	}
	if a.Cmp(b) != 0 {
		t.Errorf("expected 4.2e-4 == 0.00042, got Cmp = %d", a.Cmp(b))
	}
}

func TestNumberIsInteger(t *testing.T) {
	if !NewNumber([]byte("3")).IsInteger() {
		t.Error("3 should be an integer")
	}
	if NewNumber([]byte("3.5")).IsInteger() {
		t.Error("3.5 should not be an integer")
	}
	if !NewNumber([]byte("6.0")).IsInteger() {
		t.Error("6.0 should be an integer")
	}
}

func TestNumberMultipleOf(t *testing.T) {
	n := NewNumber([]byte("9"))
	step := NewNumber([]byte("3"))
	if !n.MultipleOf(step) {
		t.Error("9 should be a multiple of 3")
	}
	if n.MultipleOf(NewNumber([]byte("4"))) {
		t.Error("9 should not be a multiple of 4")
	}
}

func TestNewNumberRejectsMalformedText(t *testing.T) {
	if NewNumber([]byte("not-a-number")) != nil {
		t.Error("expected nil for malformed number text")
	}
}
