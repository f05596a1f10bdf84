package jsonschema

// NotValidator runs a single child against the same event stream and
// inverts its verdict at the value boundary. Grounded on the teacher's
// evaluateNot (not.go).
type NotValidator struct {
	Child Validator
}

func (v *NotValidator) Children() []Validator { return []Validator{v.Child} }

type notState struct {
	branch *combinatorBranch
	bt     boundaryTracker
}

func (v *NotValidator) Check(ev Event, st *ValidationState) bool {
	ns, _ := st.TopContext().(*notState)
	if ns == nil {
		// not's child must be rejected for the schema to pass, so a
		// successful match never surfaces its effects to the caller anyway;
		// defaults are not patched from it.
		ns = &notState{branch: newCombinatorBranch(v.Child, st.resolver, nil, nil)}
		st.SetTopContext(ns)
	}

	atBoundary := ns.bt.advance(ev)
	ns.branch.feed(ev)

	if atBoundary {
		st.Pop()
		if ns.branch.accepted() {
			st.Fail(ErrNotNotRejected, "value must not match the not schema")
			return false
		}
		return true
	}

	return true
}
