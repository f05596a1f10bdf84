package jsonschema

// additionalPropertiesPolicy selects how an ObjectValidator handles object
// keys not named in Properties (§4.4).
type additionalPropertiesPolicy int

const (
	additionalPropertiesAllow additionalPropertiesPolicy = iota
	additionalPropertiesForbid
	additionalPropertiesValidate
)

// ObjectValidator validates an ObjStart..ObjEnd run. Each ObjKey selects a
// child validator (by name, or by AdditionalProperties' policy) that is
// pushed onto the stack; the value's own events then route directly to
// that child through the normal top-of-stack dispatch, so ObjectValidator
// only has to act again once control returns to it — on the next ObjKey or
// on ObjEnd.
//
// Grounded on the teacher's properties.go/required.go/additionalProperties.go,
// recast from "evaluate every property against a decoded map" to delegating
// one pushed validator per seen key.
type ObjectValidator struct {
	Properties           map[string]Validator
	Required             []string
	AdditionalProperties additionalPropertiesPolicy
	AdditionalValid      Validator

	MinProperties *int
	MaxProperties *int
}

func (v *ObjectValidator) Children() []Validator {
	children := make([]Validator, 0, len(v.Properties)+1)
	for _, c := range v.Properties {
		children = append(children, c)
	}
	if v.AdditionalValid != nil {
		children = append(children, v.AdditionalValid)
	}
	return children
}

type objectState struct {
	seen       map[string]bool
	keyPending bool
}

func (v *ObjectValidator) Check(ev Event, st *ValidationState) bool {
	os, _ := st.TopContext().(*objectState)
	if os == nil {
		if ev.Kind != EventObjStart {
			st.Pop()
			st.Fail(ErrNotObject, "expected object, got "+ev.JSONType())
			return false
		}
		st.SetTopContext(&objectState{seen: make(map[string]bool)})
		return true
	}

	if os.keyPending {
		st.PopPath()
		os.keyPending = false
	}

	switch ev.Kind {
	case EventObjEnd:
		st.Pop()
		return v.finish(os, st)
	case EventObjKey:
		name := string(ev.Text)
		os.seen[name] = true
		st.PushPath(name)
		os.keyPending = true
		st.Push(v.childFor(name))
		return true
	default:
		st.Pop()
		st.Fail(ErrInternal, "expected object key or end")
		return false
	}
}

func (v *ObjectValidator) childFor(name string) Validator {
	if c, ok := v.Properties[name]; ok {
		return c
	}
	switch v.AdditionalProperties {
	case additionalPropertiesForbid:
		return forbidAdditionalProperty
	case additionalPropertiesValidate:
		return v.AdditionalValid
	default:
		return acceptAll
	}
}

// forbidAdditionalProperty rejects the value of any object key not listed
// in Properties when additionalProperties is false.
type forbidAdditionalPropertyValidator struct{}

var forbidAdditionalProperty = &forbidAdditionalPropertyValidator{}

func (*forbidAdditionalPropertyValidator) Check(ev Event, st *ValidationState) bool {
	st.Pop()
	st.Fail(ErrAdditionalPropertyNotAllowed, "additional property is not allowed")
	return false
}

// finish runs the ObjEnd checks: default-value injection for missing
// required properties (§4.4/§4.8), then presence of the required keys that
// have no default, then property-count bounds.
func (v *ObjectValidator) finish(os *objectState, st *ValidationState) bool {
	for _, req := range v.Required {
		if os.seen[req] {
			continue
		}
		if prop, ok := v.Properties[req]; ok {
			if defaulter, isDefaulter := prop.(Defaulter); isDefaulter {
				if val, hasDefault := defaulter.Default(); hasDefault {
					if st.patchDefault != nil {
						st.patchDefault(req, val)
					}
					continue
				}
			}
		}
		st.Fail(ErrMissingRequiredKey, "missing required property "+req)
		return false
	}

	count := len(os.seen)
	if v.MinProperties != nil && count < *v.MinProperties {
		st.Fail(ErrTooFewProperties, "object has fewer than the minimum number of properties")
		return false
	}
	if v.MaxProperties != nil && count > *v.MaxProperties {
		st.Fail(ErrTooManyProperties, "object has more than the maximum number of properties")
		return false
	}
	return true
}
