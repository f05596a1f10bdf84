package jsonschema

import (
	"regexp"
	"unicode/utf8"
)

// StringValidator accepts a String event and checks its length (in UTF-8
// code points, matching RFC 8259 character semantics) against min/max and,
// if present, a compiled regular expression.
//
// Grounded on the teacher's evaluateMinLength/evaluateMaxLength/evaluatePattern
// (minlength.go, maxlength.go, pattern.go); the pattern is compiled once at
// build time here rather than lazily cached on first check, since the
// builder already owns the moment a string validator is constructed.
type StringValidator struct {
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
}

func (v *StringValidator) Check(ev Event, st *ValidationState) bool {
	st.Pop()
	if ev.Kind != EventString {
		st.Fail(ErrNotString, "expected string, got "+ev.JSONType())
		return false
	}

	s := string(ev.Text)
	length := utf8.RuneCountInString(s)

	if v.MinLength != nil && length < *v.MinLength {
		st.Fail(ErrStringTooShort, "string is shorter than minLength")
		return false
	}

	if v.MaxLength != nil && length > *v.MaxLength {
		st.Fail(ErrStringTooLong, "string is longer than maxLength")
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(s) {
		st.Fail(ErrStringDoesNotMatchPattern, "string does not match pattern "+v.Pattern.String())
		return false
	}

	return true
}
