package jsonschema

// GenericValidator accepts any single JSON value. For a scalar it pops
// itself after one event; for ObjStart/ArrStart it stays on the stack,
// tracking nesting depth in its own context slot (via boundaryTracker),
// popping once the matching End brings depth back to zero.
//
// Grounded on §4.2's Generic validator; the depth bookkeeping mirrors
// generic_validator.c in original_source (a per-instance counter, not a
// recursive descent), which is why the counter lives in the
// ValidationState context slot rather than on the validator itself — the
// same *GenericValidator instance is shared (it is immortal) and may be
// active at several stack depths at once through $ref cycles or
// combinator substates.
type GenericValidator struct {
	// Inverse, when true, makes Check report the boolean negation of
	// "did this look like a value at all" — used as the immortal
	// "always-reject" singleton that a `false` schema compiles to.
	Inverse bool
}

// acceptAll and rejectAll are the package's immortal generic validators
// (§4.1): reference operations are no-ops and release is forbidden, so a
// single shared instance of each suffices.
var (
	acceptAll = &GenericValidator{}
	rejectAll = &GenericValidator{Inverse: true}
)

func (v *GenericValidator) Check(ev Event, st *ValidationState) bool {
	bt, _ := st.TopContext().(*boundaryTracker)
	if bt == nil {
		bt = &boundaryTracker{}
		st.SetTopContext(bt)
	}

	atBoundary := bt.advance(ev)
	if atBoundary {
		st.Pop()
	}

	if v.Inverse {
		st.Fail(ErrNotNotRejected, "value matched the schema this not negates")
		return false
	}
	return true
}
