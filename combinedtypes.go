package jsonschema

// CombinedTypesValidator dispatches to one of several single-type
// validators based on the JSON type of the first event, for schemas whose
// "type" keyword lists more than one primitive (§4.5). It never itself
// "checks" anything past that first dispatch: on the first event it pops
// itself and pushes the chosen validator, then forwards the event to it.
type CombinedTypesValidator struct {
	ByType map[string]Validator // keyed by Event.JSONType(), plus "integer"
}

func (v *CombinedTypesValidator) Children() []Validator {
	children := make([]Validator, 0, len(v.ByType))
	for _, c := range v.ByType {
		children = append(children, c)
	}
	return children
}

func (v *CombinedTypesValidator) Check(ev Event, st *ValidationState) bool {
	st.Pop()

	jsonType := ev.JSONType()
	child, ok := v.ByType[jsonType]
	if !ok && jsonType == "number" {
		child, ok = v.ByType["integer"]
	}
	if !ok {
		st.Fail(ErrTypeNotAllowed, "value's type "+jsonType+" is not among the allowed types")
		return false
	}

	st.Push(child)
	return st.Top().Check(ev, st)
}
