package jsonschema

// OneOfValidator requires exactly one clause to accept the value.
// Grounded on the teacher's evaluateOneOf (oneOf.go), fanned out the same
// way as AnyOf, but the boundary check counts acceptances instead of
// stopping at the first.
type OneOfValidator struct {
	Clauses []Validator
}

func (v *OneOfValidator) Children() []Validator { return v.Clauses }

type oneOfState struct {
	branches []*combinatorBranch
	bt       boundaryTracker
}

func (v *OneOfValidator) Check(ev Event, st *ValidationState) bool {
	os, _ := st.TopContext().(*oneOfState)
	if os == nil {
		os = &oneOfState{branches: make([]*combinatorBranch, len(v.Clauses))}
		for i, clause := range v.Clauses {
			// Which single clause is "the" match isn't known until every
			// clause has been tried, so (as with anyOf) defaults are not
			// patched speculatively from oneOf branches.
			os.branches[i] = newCombinatorBranch(clause, st.resolver, nil, nil)
		}
		st.SetTopContext(os)
	}

	atBoundary := os.bt.advance(ev)

	anyAlive := false
	for _, b := range os.branches {
		b.feed(ev)
		if b.alive() || b.accepted() {
			anyAlive = true
		}
	}

	if !anyAlive {
		st.Pop()
		st.Fail(ErrOneOfNotOne, "value does not match any schema in oneOf")
		return false
	}

	if atBoundary {
		st.Pop()
		accepted := 0
		for _, b := range os.branches {
			if b.accepted() {
				accepted++
			}
		}
		if accepted == 1 {
			return true
		}
		st.Fail(ErrOneOfNotOne, "value must match exactly one schema in oneOf")
		return false
	}

	return true
}
