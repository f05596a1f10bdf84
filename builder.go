package jsonschema

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// buildCtx is the compile-time companion to ValidationState: the URI scope
// stack, the resolver being populated, and the Ref placeholders that still
// need resolving once the whole document (and anything it pulls in via
// cross-document $ref) has been compiled.
//
// Grounded on the teacher's internal compiler context (compiler.go), cut
// down to what this engine's simpler Draft-4-like keyword set needs.
type buildCtx struct {
	scopes   *scopeStack
	resolver *URIResolver
	refs     []*RefValidator
	loadDoc  func(uri string) (any, error) // nil unless cross-document $ref is in play
}

// decodeSchemaDocument parses raw schema JSON bytes into the generic
// any/map/slice shape compileValue walks, preserving number text via
// json.Number so minimum/maximum/multipleOf/enum comparisons stay exact
// instead of round-tripping through float64.
func decodeSchemaDocument(text []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, newSchemaError(ErrSchemaSyntax, "#", err.Error())
	}
	return v, nil
}

// compileValue builds the validator for one schema node, which per Draft-4
// may be a boolean shortcut (true/false) or a keyword object. path is the
// JSON-pointer path from the current URI scope's root, used to register
// this node's validator for $ref addressing (§4.7 collect_schemas).
func compileValue(raw any, path []string, ctx *buildCtx) (Validator, error) {
	switch t := raw.(type) {
	case bool:
		if t {
			return acceptAll, nil
		}
		return rejectAll, nil
	case nil:
		return acceptAll, nil
	case map[string]any:
		return compileObject(t, path, ctx)
	default:
		return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), "schema node must be an object or a boolean")
	}
}

func compileObject(m map[string]any, path []string, ctx *buildCtx) (Validator, error) {
	sp := &schemaParsing{}

	// "id" introduces a new URI scope for this node and everything nested
	// inside it; popped once this node (and its descendants) is done.
	idPopped := false
	if raw, ok := m["id"]; ok {
		idText, ok := raw.(string)
		if !ok {
			return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"id" must be a string`)
		}
		sp.id = ctx.scopes.push(idText)
		path = nil
		defer func() {
			if !idPopped {
				ctx.scopes.pop()
			}
		}()
	}

	// "definitions" is compiled (and registered) regardless of whether this
	// node is itself a $ref: a schema commonly carries both "$ref" and a
	// sibling "definitions" map the ref (or some other document) points
	// into, and those entries must exist in the resolver before ref
	// resolution runs.
	if raw, ok := m["definitions"]; ok {
		defs, ok := raw.(map[string]any)
		if !ok {
			return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"definitions" must be an object`)
		}
		for name, child := range defs {
			if _, err := compileValue(child, append(append([]string{}, path...), "definitions", name), ctx); err != nil {
				return nil, err
			}
		}
	}

	// "$ref" short-circuits every other keyword in this object, matching
	// Draft-4 (and the teacher's own Ref handling): a schema that is a
	// reference is nothing but a reference.
	if raw, ok := m["$ref"]; ok {
		refText, ok := raw.(string)
		if !ok {
			return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"$ref" must be a string`)
		}
		sp.ref = resolveURI(ctx.scopes.top(), refText)
		rv := &RefValidator{URI: sp.ref}
		ctx.refs = append(ctx.refs, rv)
		if err := registerNode(ctx, path, rv, ""); err != nil {
			return nil, err
		}
		if sp.id != "" {
			if !idPopped {
				ctx.scopes.pop()
				idPopped = true
			}
		}
		return rv, nil
	}

	if raw, ok := m["type"]; ok {
		types, err := parseTypeKeyword(raw, path)
		if err != nil {
			return nil, err
		}
		sp.types = types
	}

	if err := collectObjectFeatures(m, path, ctx, sp); err != nil {
		return nil, err
	}
	if err := collectArrayFeatures(m, path, ctx, sp); err != nil {
		return nil, err
	}
	if err := collectNumberFeatures(m, path, sp); err != nil {
		return nil, err
	}
	if err := collectStringFeatures(m, path, sp); err != nil {
		return nil, err
	}

	if raw, ok := m["enum"]; ok {
		ev, err := parseEnumKeyword(raw, path)
		if err != nil {
			return nil, err
		}
		sp.combinators = append(sp.combinators, &EnumValidator{Values: ev})
	}

	if raw, ok := m["default"]; ok {
		sp.defaultSet = true
		sp.defaultVal = raw
	}

	for _, key := range [...]string{"allOf", "anyOf", "oneOf"} {
		raw, ok := m[key]
		if !ok {
			continue
		}
		list, ok := raw.([]any)
		if !ok {
			return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"`+key+`" must be an array`)
		}
		clauses := make([]Validator, len(list))
		for i, entry := range list {
			cv, err := compileValue(entry, append(append([]string{}, path...), key, strconv.Itoa(i)), ctx)
			if err != nil {
				return nil, err
			}
			clauses[i] = cv
		}
		switch key {
		case "allOf":
			sp.combinators = append(sp.combinators, &AllOfValidator{Clauses: clauses})
		case "anyOf":
			sp.combinators = append(sp.combinators, &AnyOfValidator{Clauses: clauses})
		case "oneOf":
			sp.combinators = append(sp.combinators, &OneOfValidator{Clauses: clauses})
		}
	}

	if raw, ok := m["not"]; ok {
		cv, err := compileValue(raw, append(append([]string{}, path...), "not"), ctx)
		if err != nil {
			return nil, err
		}
		sp.combinators = append(sp.combinators, &NotValidator{Child: cv})
	}

	if raw, ok := m["extends"]; ok {
		ext, err := compileExtends(raw, path, ctx)
		if err != nil {
			return nil, err
		}
		sp.extends = ext
	}

	final, err := finalizeSchemaParsing(sp, ctx)
	if err != nil {
		return nil, err
	}

	if err := registerNode(ctx, path, final, sp.id); err != nil {
		return nil, err
	}

	if sp.id != "" && !idPopped {
		ctx.scopes.pop()
		idPopped = true
	}

	return final, nil
}

// compileExtends supports both the single-schema and array-of-schemas
// forms of draft-3's "extends", fusing the array case into one AllOf so
// combine_validators only ever deals with a single extends validator.
func compileExtends(raw any, path []string, ctx *buildCtx) (Validator, error) {
	if list, ok := raw.([]any); ok {
		clauses := make([]Validator, len(list))
		for i, entry := range list {
			cv, err := compileValue(entry, append(append([]string{}, path...), "extends", strconv.Itoa(i)), ctx)
			if err != nil {
				return nil, err
			}
			clauses[i] = cv
		}
		return &AllOfValidator{Clauses: clauses}, nil
	}
	return compileValue(raw, append(append([]string{}, path...), "extends"), ctx)
}

func parseTypeKeyword(raw any, path []string) ([]string, error) {
	switch t := raw.(type) {
	case string:
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"type" array entries must be strings`)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"type" must be a string or array of strings`)
	}
}

func parseEnumKeyword(raw any, path []string) ([]enumLiteral, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"enum" must be an array`)
	}
	out := make([]enumLiteral, 0, len(list))
	for _, entry := range list {
		lit, ok := scalarToEnumLiteral(entry)
		if !ok {
			return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), "enum entries must be scalar values (null, boolean, number, or string)")
		}
		out = append(out, lit)
	}
	return out, nil
}

func scalarToEnumLiteral(v any) (enumLiteral, bool) {
	switch t := v.(type) {
	case nil:
		return enumLiteral{kind: EventNull}, true
	case bool:
		return enumLiteral{kind: EventBool, b: t}, true
	case json.Number:
		n := NewNumber([]byte(t.String()))
		if n == nil {
			return enumLiteral{}, false
		}
		return enumLiteral{kind: EventNumber, num: n}, true
	case string:
		return enumLiteral{kind: EventString, str: t}, true
	default:
		return enumLiteral{}, false
	}
}

func asInt(raw any, path []string, keyword string) (*int, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"`+keyword+`" must be a number`)
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"`+keyword+`" must be an integer`)
	}
	return &n, nil
}

func asNumber(raw any, path []string, keyword string) (*Number, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"`+keyword+`" must be a number`)
	}
	n := NewNumber([]byte(num.String()))
	if n == nil {
		return nil, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"`+keyword+`" is not a valid number`)
	}
	return n, nil
}

func asBool(raw any, path []string, keyword string) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"`+keyword+`" must be a boolean`)
	}
	return b, nil
}

func collectNumberFeatures(m map[string]any, path []string, sp *schemaParsing) error {
	if raw, ok := m["minimum"]; ok {
		n, err := asNumber(raw, path, "minimum")
		if err != nil {
			return err
		}
		excl := false
		if e, ok := m["exclusiveMinimum"]; ok {
			if excl, err = asBool(e, path, "exclusiveMinimum"); err != nil {
				return err
			}
		}
		sp.features = append(sp.features, feature{kind: "number", apply: func(v Validator) Validator {
			nv, ok := v.(*NumberValidator)
			if !ok {
				return v
			}
			nv.Minimum = n
			nv.ExclusiveMinimum = excl
			return nv
		}})
	}
	if raw, ok := m["maximum"]; ok {
		n, err := asNumber(raw, path, "maximum")
		if err != nil {
			return err
		}
		excl := false
		if e, ok := m["exclusiveMaximum"]; ok {
			if excl, err = asBool(e, path, "exclusiveMaximum"); err != nil {
				return err
			}
		}
		sp.features = append(sp.features, feature{kind: "number", apply: func(v Validator) Validator {
			nv, ok := v.(*NumberValidator)
			if !ok {
				return v
			}
			nv.Maximum = n
			nv.ExclusiveMaximum = excl
			return nv
		}})
	}
	if raw, ok := m["multipleOf"]; ok {
		n, err := asNumber(raw, path, "multipleOf")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "number", apply: func(v Validator) Validator {
			nv, ok := v.(*NumberValidator)
			if !ok {
				return v
			}
			nv.MultipleOf = n
			return nv
		}})
	}
	return nil
}

func collectStringFeatures(m map[string]any, path []string, sp *schemaParsing) error {
	if raw, ok := m["minLength"]; ok {
		n, err := asInt(raw, path, "minLength")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "string", apply: func(v Validator) Validator {
			sv, ok := v.(*StringValidator)
			if !ok {
				return v
			}
			sv.MinLength = n
			return sv
		}})
	}
	if raw, ok := m["maxLength"]; ok {
		n, err := asInt(raw, path, "maxLength")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "string", apply: func(v Validator) Validator {
			sv, ok := v.(*StringValidator)
			if !ok {
				return v
			}
			sv.MaxLength = n
			return sv
		}})
	}
	if raw, ok := m["pattern"]; ok {
		patText, ok := raw.(string)
		if !ok {
			return newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"pattern" must be a string`)
		}
		re, err := regexp.Compile(patText)
		if err != nil {
			return newSchemaError(ErrInvalidPattern, joinPointer(path), err.Error())
		}
		sp.features = append(sp.features, feature{kind: "string", apply: func(v Validator) Validator {
			sv, ok := v.(*StringValidator)
			if !ok {
				return v
			}
			sv.Pattern = re
			return sv
		}})
	}
	return nil
}

func collectArrayFeatures(m map[string]any, path []string, ctx *buildCtx, sp *schemaParsing) error {
	if raw, ok := m["items"]; ok {
		if list, isTuple := raw.([]any); isTuple {
			tuple := make([]Validator, len(list))
			for i, entry := range list {
				cv, err := compileValue(entry, append(append([]string{}, path...), "items", strconv.Itoa(i)), ctx)
				if err != nil {
					return err
				}
				tuple[i] = cv
			}
			sp.features = append(sp.features, feature{kind: "array", apply: func(v Validator) Validator {
				av, ok := v.(*ArrayValidator)
				if !ok {
					return v
				}
				av.Tuple = tuple
				return av
			}})
		} else {
			cv, err := compileValue(raw, append(append([]string{}, path...), "items"), ctx)
			if err != nil {
				return err
			}
			sp.features = append(sp.features, feature{kind: "array", apply: func(v Validator) Validator {
				av, ok := v.(*ArrayValidator)
				if !ok {
					return v
				}
				av.Items = cv
				return av
			}})
		}
	}

	if raw, ok := m["additionalItems"]; ok {
		switch t := raw.(type) {
		case bool:
			policy := additionalItemsAllow
			if !t {
				policy = additionalItemsForbid
			}
			sp.features = append(sp.features, feature{kind: "array", apply: func(v Validator) Validator {
				av, ok := v.(*ArrayValidator)
				if !ok {
					return v
				}
				av.AdditionalItems = policy
				return av
			}})
		case map[string]any:
			cv, err := compileValue(t, append(append([]string{}, path...), "additionalItems"), ctx)
			if err != nil {
				return err
			}
			sp.features = append(sp.features, feature{kind: "array", apply: func(v Validator) Validator {
				av, ok := v.(*ArrayValidator)
				if !ok {
					return v
				}
				av.AdditionalItems = additionalItemsValidate
				av.AdditionalValid = cv
				return av
			}})
		default:
			return newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"additionalItems" must be a boolean or schema object`)
		}
	}

	if raw, ok := m["minItems"]; ok {
		n, err := asInt(raw, path, "minItems")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "array", apply: func(v Validator) Validator {
			av, ok := v.(*ArrayValidator)
			if !ok {
				return v
			}
			av.MinItems = n
			return av
		}})
	}
	if raw, ok := m["maxItems"]; ok {
		n, err := asInt(raw, path, "maxItems")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "array", apply: func(v Validator) Validator {
			av, ok := v.(*ArrayValidator)
			if !ok {
				return v
			}
			av.MaxItems = n
			return av
		}})
	}
	if raw, ok := m["uniqueItems"]; ok {
		b, err := asBool(raw, path, "uniqueItems")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "array", apply: func(v Validator) Validator {
			av, ok := v.(*ArrayValidator)
			if !ok {
				return v
			}
			av.UniqueItems = b
			return av
		}})
	}
	return nil
}

func collectObjectFeatures(m map[string]any, path []string, ctx *buildCtx, sp *schemaParsing) error {
	if raw, ok := m["properties"]; ok {
		props, ok := raw.(map[string]any)
		if !ok {
			return newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"properties" must be an object`)
		}
		built := make(map[string]Validator, len(props))
		for name, child := range props {
			cv, err := compileValue(child, append(append([]string{}, path...), "properties", name), ctx)
			if err != nil {
				return err
			}
			built[name] = cv
		}
		sp.features = append(sp.features, feature{kind: "object", apply: func(v Validator) Validator {
			ov, ok := v.(*ObjectValidator)
			if !ok {
				return v
			}
			ov.Properties = built
			return ov
		}})
	}

	if raw, ok := m["required"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"required" must be an array`)
		}
		names := make([]string, len(list))
		for i, e := range list {
			s, ok := e.(string)
			if !ok {
				return newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"required" entries must be strings`)
			}
			names[i] = s
		}
		sp.features = append(sp.features, feature{kind: "object", apply: func(v Validator) Validator {
			ov, ok := v.(*ObjectValidator)
			if !ok {
				return v
			}
			ov.Required = names
			return ov
		}})
	}

	if raw, ok := m["additionalProperties"]; ok {
		switch t := raw.(type) {
		case bool:
			policy := additionalPropertiesAllow
			if !t {
				policy = additionalPropertiesForbid
			}
			sp.features = append(sp.features, feature{kind: "object", apply: func(v Validator) Validator {
				ov, ok := v.(*ObjectValidator)
				if !ok {
					return v
				}
				ov.AdditionalProperties = policy
				return ov
			}})
		case map[string]any:
			cv, err := compileValue(t, append(append([]string{}, path...), "additionalProperties"), ctx)
			if err != nil {
				return err
			}
			sp.features = append(sp.features, feature{kind: "object", apply: func(v Validator) Validator {
				ov, ok := v.(*ObjectValidator)
				if !ok {
					return v
				}
				ov.AdditionalProperties = additionalPropertiesValidate
				ov.AdditionalValid = cv
				return ov
			}})
		default:
			return newSchemaError(ErrUnknownKeywordValue, joinPointer(path), `"additionalProperties" must be a boolean or schema object`)
		}
	}

	if raw, ok := m["minProperties"]; ok {
		n, err := asInt(raw, path, "minProperties")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "object", apply: func(v Validator) Validator {
			ov, ok := v.(*ObjectValidator)
			if !ok {
				return v
			}
			ov.MinProperties = n
			return ov
		}})
	}
	if raw, ok := m["maxProperties"]; ok {
		n, err := asInt(raw, path, "maxProperties")
		if err != nil {
			return err
		}
		sp.features = append(sp.features, feature{kind: "object", apply: func(v Validator) Validator {
			ov, ok := v.(*ObjectValidator)
			if !ok {
				return v
			}
			ov.MaxProperties = n
			return ov
		}})
	}
	return nil
}

func registerNode(ctx *buildCtx, path []string, v Validator, id string) error {
	doc := ctx.scopes.top()
	if id != "" {
		doc = resolveURI(id, "")
	}
	primary := doc + joinPointer(path)
	if err := ctx.resolver.Register(primary, v); err != nil {
		return err
	}
	if id != "" {
		idKey := id + "#"
		if idKey != primary {
			if err := ctx.resolver.Register(idKey, v); err != nil {
				return err
			}
		}
	}
	return nil
}
