package jsonschema

// Validator is the capability every compiled schema node implements: decide
// whether an incoming Event continues to match, mutating the pushdown
// stack (st) as needed — including popping itself once it has consumed a
// complete JSON value.
//
// Check's contract (§4.8): return true and leave the stack however it
// likes (including popped), or report a failure via st.Fail and return
// false. A false return aborts the entire validation; Check must not
// report more than one failure for a single rejection.
type Validator interface {
	Check(ev Event, st *ValidationState) bool
}

// Defaulter is implemented by validators that can supply a default value
// for an object property that was never seen, per §4.4/§4.8. It is
// implemented by defaultingValidator (default.go), the decorator a schema's
// `default` keyword wraps around that schema's finalized validator; the zero
// value (ok == false) means "no default".
type Defaulter interface {
	Default() (value any, ok bool)
}

// ChildVisitor is implemented by validators with children (arrays,
// objects, combinators, Ref), exposing them without knowing every concrete
// variant. The compile passes do not walk the tree through it: nodes are
// registered as builder.go builds them, and ref resolution (compile.go)
// walks the collected Ref placeholders directly.
type ChildVisitor interface {
	Children() []Validator
}

// boundaryTracker decides when a sequence of events has delivered exactly
// one complete JSON value, the way the Generic validator (§4.2) and every
// combinator (§4.6) need to. Depth increments on *Start and decrements on
// *End; a scalar event at depth 0 is itself a complete value.
type boundaryTracker struct {
	depth int
}

// advance folds ev into the tracker and reports whether the value guarded
// by the owning validator is now complete.
func (t *boundaryTracker) advance(ev Event) (atBoundary bool) {
	switch ev.Kind {
	case EventObjStart, EventArrStart:
		t.depth++
		return false
	case EventObjEnd, EventArrEnd:
		t.depth--
		return t.depth == 0
	case EventObjKey:
		return false
	default: // Null, Bool, Number, String
		return t.depth == 0
	}
}
