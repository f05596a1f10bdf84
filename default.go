package jsonschema

// defaultingValidator wraps a finalized validator to carry a `default`
// value without mutating the validator it decorates. ObjectValidator.finish
// looks for this via the Defaulter interface when a required property was
// never seen in the input (§4.4/§4.8); it never materializes the value
// itself, only hands it to the caller-supplied patch-default hook.
type defaultingValidator struct {
	inner Validator
	value any
}

func (d *defaultingValidator) Check(ev Event, st *ValidationState) bool {
	return d.inner.Check(ev, st)
}

func (d *defaultingValidator) Default() (any, bool) { return d.value, true }

func (d *defaultingValidator) Children() []Validator {
	if cv, ok := d.inner.(ChildVisitor); ok {
		return cv.Children()
	}
	return nil
}
