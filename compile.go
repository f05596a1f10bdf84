package jsonschema

// typeOrder is the canonical priority used to infer an implied single type
// for an untyped schema object from the keyword groups it contains (no
// explicit "type" keyword). Real Draft-4 schemas that mix keyword groups
// from different implied types without stating "type" explicitly are
// outside this engine's scope; see DESIGN.md.
var typeOrder = []string{"object", "array", "number", "string", "boolean"}

// typeCore returns the empty (unconstrained) validator for one JSON Schema
// type name, the seed that collectXFeatures' features then mutate.
func typeCore(kind string) Validator {
	switch kind {
	case "null":
		return nullValidator
	case "boolean":
		return &BooleanValidator{}
	case "number", "integer":
		return &NumberValidator{IntegerOnly: kind == "integer"}
	case "string":
		return &StringValidator{}
	case "array":
		return &ArrayValidator{}
	case "object":
		return &ObjectValidator{}
	default:
		return acceptAll
	}
}

// normalizeFeatureKind maps a "type" keyword name to the feature-kind
// bucket its constraints live in: "integer" shares NumberValidator (and its
// "number"-kind features) with "number", distinguished only by the
// IntegerOnly flag typeCore already set.
func normalizeFeatureKind(kind string) string {
	if kind == "integer" {
		return "number"
	}
	return kind
}

// applyFeaturesTo runs every feature whose kind matches against core, in a
// fixed deterministic order (§8 scenario: sibling-keyword order independence)
// rather than schema source order — Go map iteration over a decoded schema
// object has no stable order to begin with, so this engine never threads
// source order through at all.
func applyFeaturesTo(core Validator, kind string, features []feature) Validator {
	v := core
	for _, f := range features {
		if f.kind != kind {
			continue
		}
		v = f.apply(v)
	}
	return v
}

// impliedKinds infers a one-element type list from the feature kinds
// present when no explicit "type" keyword was given, per typeOrder's
// priority. An untyped, constraint-free schema (e.g. `{}`, or one built
// purely from "enum"/"allOf"/"anyOf"/etc.) returns nil, leaving the core an
// unconstrained Generic validator.
func impliedKinds(features []feature) []string {
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		seen[f.kind] = true
	}
	for _, k := range typeOrder {
		if seen[k] {
			return []string{k}
		}
	}
	return nil
}

// buildTypeValidator constructs the type_validator slot of a SchemaParsing
// node (§3/§4.7): a single concrete validator for one type, or a
// CombinedTypesValidator dispatch table when "type" names more than one
// primitive (§4.5).
func buildTypeValidator(sp *schemaParsing) Validator {
	kinds := sp.types
	if len(kinds) == 0 {
		kinds = impliedKinds(sp.features)
	}
	if len(kinds) == 0 {
		return applyFeaturesTo(acceptAll, "", sp.features)
	}
	if len(kinds) == 1 {
		return applyFeaturesTo(typeCore(kinds[0]), normalizeFeatureKind(kinds[0]), sp.features)
	}
	byType := make(map[string]Validator, len(kinds))
	for _, k := range kinds {
		byType[k] = applyFeaturesTo(typeCore(k), normalizeFeatureKind(k), sp.features)
	}
	return &CombinedTypesValidator{ByType: byType}
}

// finalizeSchemaParsing runs apply_features, combine_validators, and
// finalize_parse (§4.7 steps 1-3) for a single SchemaParsing node, returning
// the validator that replaces it. collect_schemas (registration) happens in
// the caller (builder.go's registerNode) once this returns, and ref
// resolution (§4.7 step 5) happens once for the whole document in
// resolveRefs below.
func finalizeSchemaParsing(sp *schemaParsing, ctx *buildCtx) (Validator, error) {
	if sp.ref != "" {
		// The $ref branch in compileObject already built and registered the
		// RefValidator; this function is not reached for ref nodes. Kept as
		// a defensive guard in case that invariant ever changes.
		return &RefValidator{URI: sp.ref}, nil
	}

	result := buildTypeValidator(sp)

	extra := make([]Validator, 0, len(sp.combinators)+1)
	if sp.extends != nil {
		extra = append(extra, sp.extends)
	}
	extra = append(extra, sp.combinators...)

	if len(extra) > 0 {
		result = &AllOfValidator{Clauses: append([]Validator{result}, extra...)}
	}

	if sp.defaultSet {
		result = &defaultingValidator{inner: result, value: sp.defaultVal}
	}

	return result, nil
}

// resolveRefs runs §4.7 step 5 once the whole document (root document plus
// anything pulled in transitively by cross-document $ref) has been
// compiled and every reachable subschema is registered in ctx.resolver.
//
// A ref whose target document was never compiled (a $ref crossing into a
// document this build never visited) is fetched lazily here via
// ctx.loadDoc — the embedder's Schema-load interface (§6) — and compiled
// into the same resolver before the lookup is retried. ctx.refs is walked
// by index rather than range because compiling a fetched document can
// append more Ref placeholders to resolve in turn.
func resolveRefs(ctx *buildCtx) error {
	loaded := make(map[string]bool)

	for i := 0; i < len(ctx.refs); i++ {
		rv := ctx.refs[i]

		target, ok := ctx.resolver.Lookup(rv.URI)
		if !ok && ctx.loadDoc != nil {
			doc, _ := splitFragment(rv.URI)
			if doc != "" && !loaded[doc] {
				loaded[doc] = true
				if raw, err := ctx.loadDoc(doc); err == nil {
					subCtx := &buildCtx{scopes: newScopeStack(doc), resolver: ctx.resolver, loadDoc: ctx.loadDoc}
					if _, cerr := compileValue(raw, nil, subCtx); cerr == nil {
						ctx.refs = append(ctx.refs, subCtx.refs...)
					}
				}
			}
			target, ok = ctx.resolver.Lookup(rv.URI)
		}

		if !ok {
			return newSchemaError(ErrUnresolvedRef, rv.URI, "no schema is registered at this URI")
		}
		rv.resolved = target
	}
	return nil
}
