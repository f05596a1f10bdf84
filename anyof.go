package jsonschema

// AnyOfValidator requires at least one clause to accept the value.
// Grounded on the teacher's evaluateAnyOf (anyOf.go): every still-alive
// branch receives each event; a branch that fails is retired silently
// (§4.6 — its own error never reaches the caller). Once the value's
// boundary is reached, AnyOf succeeds if any branch accepted it, and
// otherwise reports the single synthetic AnyOfNoMatch error.
type AnyOfValidator struct {
	Clauses []Validator
}

func (v *AnyOfValidator) Children() []Validator { return v.Clauses }

type anyOfState struct {
	branches []*combinatorBranch
	bt       boundaryTracker
}

func (v *AnyOfValidator) Check(ev Event, st *ValidationState) bool {
	as, _ := st.TopContext().(*anyOfState)
	if as == nil {
		as = &anyOfState{branches: make([]*combinatorBranch, len(v.Clauses))}
		for i, clause := range v.Clauses {
			// Only one clause's outcome matters (the first one that accepts),
			// and which clause that turns out to be isn't known until the
			// value's boundary is reached, so defaults are not patched from
			// anyOf branches: patching from a losing branch as it goes would
			// misreport effects that never applied.
			as.branches[i] = newCombinatorBranch(clause, st.resolver, nil, nil)
		}
		st.SetTopContext(as)
	}

	atBoundary := as.bt.advance(ev)

	anyAlive := false
	for _, b := range as.branches {
		b.feed(ev)
		if b.alive() || b.accepted() {
			anyAlive = true
		}
	}

	if !anyAlive {
		st.Pop()
		st.Fail(ErrAnyOfNoMatch, "value does not match any schema in anyOf")
		return false
	}

	if atBoundary {
		st.Pop()
		for _, b := range as.branches {
			if b.accepted() {
				return true
			}
		}
		st.Fail(ErrAnyOfNoMatch, "value does not match any schema in anyOf")
		return false
	}

	return true
}
