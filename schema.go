package jsonschema

// Schema is a compiled, immutable validator tree plus the URI resolver that
// was built alongside it. A *Schema is safe to share read-only across
// concurrent Validate calls: each call drives its own ValidationState, and
// the validator tree never mutates after compilation.
//
// Grounded on the teacher's Schema (schema.go), narrowed to what this
// engine needs to carry: the compiled root, its resolver for any $ref that
// still needs a live lookup (see ref.go), and the base URI it was compiled
// against.
type Schema struct {
	root     Validator
	resolver *URIResolver
	baseURI  string
}

// BaseURI returns the absolute URI this schema was compiled against.
func (s *Schema) BaseURI() string { return s.baseURI }

// ValidateOption configures a single Validate call.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	patchDefault func(path string, value any)
}

// WithPatchDefault registers a callback invoked once for every required
// object property that was missing from the input and whose schema carries
// a `default` value (§4.4/§4.8), passing the property's name and the default.
// Objects validated inside an anyOf, oneOf or not clause do not report their
// missing properties. The callback never runs against any other path; it is
// the only way a default value becomes observable.
func WithPatchDefault(fn func(path string, value any)) ValidateOption {
	return func(o *validateOptions) { o.patchDefault = fn }
}

// Validate drives ts through this schema's validator tree to completion,
// reporting the first failure (if any) via a ValidationError. A nil error
// with ok == true means the entire input matched.
func (s *Schema) Validate(ts TokenSource, opts ...ValidateOption) (ok bool, verr *ValidationError) {
	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}

	var captured *ValidationError
	notify := func(e *ValidationError) {
		if captured == nil {
			captured = e
		}
	}

	ok = drive(ts, s.root, s.resolver, notify, o.patchDefault)
	return ok, captured
}
