package jsonschema

// feature is a deferred constraint applier (§9 "Features as deferred
// appliers"): a function that takes the validator built so far for one
// JSON type and returns a (possibly new, possibly mutated-in-place)
// validator carrying the extra constraint. Collecting these as values
// rather than applying them immediately lets the builder accumulate
// constraints — minLength, then pattern, then minLength again from a
// merged definitions entry — before the concrete validator type is even
// decided (e.g. before "type" has been seen, if key order put it last).
//
// kind names the JSON type the feature applies to ("", "object", "array",
// "number", "string", "boolean"); a feature whose kind doesn't match the
// validator it is offered is left as a no-op, mirroring real JSON Schema
// validators silently ignoring keywords that don't apply to the instance's
// declared type rather than treating them as a schema error.
type feature struct {
	kind  string
	apply func(Validator) Validator
}

// schemaParsing is the transient build-time AST node (§3): one per schema
// object encountered while walking the schema document. It never itself
// implements Validator — compile.go's finalize pass always collapses it
// into the validator reachable from typeCore, exactly as §3's invariant
// requires ("a SchemaParsing node never survives into a finalized tree").
type schemaParsing struct {
	id string // local "id" keyword, already resolved to an absolute URI

	types    []string // explicit "type" keyword, normalized to a slice; nil if absent
	features []feature

	combinators []Validator // built AllOf/AnyOf/OneOf/Not nodes, appended as seen
	extends     Validator   // draft-3 "extends", fused as an extra AllOf term

	ref string // absolute URI if "$ref" was present; when set, every other field is ignored

	// "definitions" entries are compiled and registered directly as they are
	// encountered (builder.go) rather than staged on this node: each one is
	// its own independent schemaParsing that collapses on its own, and
	// nothing here ever needs to address a sibling definition by name.
	// "enum" is likewise not staged here: parseEnumKeyword builds a
	// ready-to-use *EnumValidator straight into combinators below, since an
	// enum's scalar literals need no further per-type feature application.

	defaultSet bool
	defaultVal any // decoded default value; opaque to the validator that carries it
}
