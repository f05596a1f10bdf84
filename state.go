package jsonschema

import "strings"

// ValidationState is the pushdown automaton's mutable runtime state: a
// stack of active validators with a parallel per-validator context slot
// (an opaque word individual validators use to track local state, e.g. the
// Generic validator's nesting depth), plus the collaborators a Check call
// may need.
//
// Go's garbage collector traces the validator DAG directly, so unlike the
// spec's §3 description there is no explicit reference count here: a
// Validator reachable from the compiled Schema's root is kept alive by
// ordinary Go pointers. The one place the spec calls out ownership
// explicitly — $ref edges, which can point back into an ancestor — is
// still a plain pointer (see ref.go); it never needs to be "weak" because
// Go pointers don't keep a cycle from being collected once the whole
// Schema becomes unreachable.
type ValidationState struct {
	stack []Validator
	ctx   []any

	resolver     *URIResolver
	notify       func(*ValidationError)
	patchDefault func(path string, value any)

	offset int64
	path   []string
}

func newValidationState(resolver *URIResolver, notify func(*ValidationError), patch func(string, any)) *ValidationState {
	return &ValidationState{resolver: resolver, notify: notify, patchDefault: patch}
}

// Push installs v as the new top of the stack with a fresh, nil context
// slot.
func (s *ValidationState) Push(v Validator) {
	s.stack = append(s.stack, v)
	s.ctx = append(s.ctx, nil)
}

// Pop removes the top validator and its context slot.
func (s *ValidationState) Pop() {
	n := len(s.stack)
	s.stack = s.stack[:n-1]
	s.ctx = s.ctx[:n-1]
}

// Empty reports whether the stack has drained; per spec §3 this is
// equivalent to "no more events are required".
func (s *ValidationState) Empty() bool { return len(s.stack) == 0 }

// Top returns the active validator, or nil if the stack is empty.
func (s *ValidationState) Top() Validator {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// SetTopContext stores v in the top validator's context slot.
func (s *ValidationState) SetTopContext(v any) {
	if len(s.ctx) == 0 {
		return
	}
	s.ctx[len(s.ctx)-1] = v
}

// TopContext returns the top validator's context slot.
func (s *ValidationState) TopContext() any {
	if len(s.ctx) == 0 {
		return nil
	}
	return s.ctx[len(s.ctx)-1]
}

// Fail reports a validation error at the current offset and path through
// the notification callback. A nil notify (e.g. inside a combinator
// substate that swallows child errors) makes this a no-op.
func (s *ValidationState) Fail(code ErrorCode, detail string) {
	if s.notify == nil {
		return
	}
	s.notify(&ValidationError{Code: code, Offset: s.offset, Path: s.currentPath(), Detail: detail})
}

func (s *ValidationState) currentPath() string {
	if len(s.path) == 0 {
		return "#"
	}
	return "#/" + strings.Join(s.path, "/")
}

// PushPath/PopPath track the instance path (property names, array indices)
// for error reporting; purely informational, never consulted by Check.
func (s *ValidationState) PushPath(seg string) { s.path = append(s.path, seg) }
func (s *ValidationState) PopPath() {
	if len(s.path) > 0 {
		s.path = s.path[:len(s.path)-1]
	}
}

// drive runs the validation PDA to completion per §4.8: push root, feed
// events one at a time to the top validator, abort on the first failure or
// syntax error, and require the stack to have drained with no error
// recorded once the source is exhausted.
func drive(ts TokenSource, root Validator, resolver *URIResolver, notify func(*ValidationError), patch func(string, any)) bool {
	st := newValidationState(resolver, notify, patch)
	st.Push(root)
	ok := true

	_, synErr := ts.Run(SinkFunc(func(ev Event) bool {
		st.offset = ev.Offset
		if st.Empty() {
			ok = false
			return false
		}
		top := st.Top()
		if !top.Check(ev, st) {
			ok = false
			return false
		}
		return true
	}))

	if synErr != nil {
		ok = false
		if notify != nil {
			notify(&ValidationError{Code: ErrSyntax, Offset: st.offset, Path: "#", Detail: synErr.Error()})
		}
		return false
	}

	if ok && !st.Empty() {
		ok = false
	}
	return ok
}
