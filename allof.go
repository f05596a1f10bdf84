package jsonschema

// AllOfValidator requires every clause to accept the same value. Grounded
// on the teacher's evaluateAllOf (allOf.go), recast from "evaluate every
// subschema against the same decoded instance" to fanning each event out
// to one substate per clause: the first clause to fail ends validation
// immediately and that clause's own error is the one the caller sees,
// matching §4.6 ("Any child failure -> propagate failure and pop self").
type AllOfValidator struct {
	Clauses []Validator
}

func (v *AllOfValidator) Children() []Validator { return v.Clauses }

type allOfState struct {
	branches []*combinatorBranch
}

func (v *AllOfValidator) Check(ev Event, st *ValidationState) bool {
	as, _ := st.TopContext().(*allOfState)
	if as == nil {
		as = &allOfState{branches: make([]*combinatorBranch, len(v.Clauses))}
		for i, clause := range v.Clauses {
			as.branches[i] = newCombinatorBranch(clause, st.resolver, st.notify, st.patchDefault)
		}
		st.SetTopContext(as)
	}

	allDone := true
	for _, b := range as.branches {
		b.feed(ev)
		if b.dead {
			st.Pop()
			return false
		}
		if !b.st.Empty() {
			allDone = false
		}
	}

	if allDone {
		st.Pop()
	}
	return true
}
