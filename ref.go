package jsonschema

// RefValidator delegates to the schema registered at URI, resolved once
// during compile.go's ref-resolution pass and cached in resolved. A nil
// resolved with a non-nil st.resolver falls back to a live lookup — this
// covers a $ref whose target sits in a document compiled after this one
// (cross-document cycles), since the resolved field can only be filled in
// once every document involved in the cycle has finished compiling.
//
// Grounded on the teacher's Ref (ref.go), reshaped from "hold the resolved
// *Schema" to "hold the resolved Validator and delegate Check to it
// directly" — there is no separate instance to re-walk, since this engine
// validates off the live event stream rather than a decoded document.
type RefValidator struct {
	URI      string
	resolved Validator
}

func (v *RefValidator) Children() []Validator {
	if v.resolved == nil {
		return nil
	}
	return []Validator{v.resolved}
}

func (v *RefValidator) Check(ev Event, st *ValidationState) bool {
	target := v.resolved
	if target == nil && st.resolver != nil {
		target, _ = st.resolver.Lookup(v.URI)
	}
	st.Pop()
	if target == nil {
		st.Fail(ErrUnresolvedRefCode, "unresolved $ref "+v.URI)
		return false
	}
	st.Push(target)
	return st.Top().Check(ev, st)
}
