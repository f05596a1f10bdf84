package jsonschema

import "regexp"

// Keyword mutates a validator built so far and returns the (possibly new)
// validator — the same deferred-applier shape as builder.go's feature,
// but exposed as a public constructor for embedders who want to assemble a
// Schema programmatically instead of compiling schema JSON. A Keyword
// whose effect doesn't apply to the validator it's given (e.g. MinLength
// used inside an ObjSchema) is a silent no-op, matching the JSON-text path.
type Keyword func(Validator) Validator

// Property pairs a property name with its schema for use inside ObjSchema.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop builds a Property.
func Prop(name string, schema *Schema) Property {
	return Property{Name: name, Schema: schema}
}

func wrap(root Validator) *Schema {
	return &Schema{root: root, resolver: newURIResolver()}
}

func applyAll(start Validator, kws []Keyword) Validator {
	v := start
	for _, k := range kws {
		v = k(v)
	}
	return v
}

// ObjSchema builds an object Schema from a mix of Property entries and
// Keywords (Required, AdditionalProps, MinProperties, MaxProperties,
// Default).
func ObjSchema(items ...any) *Schema {
	ov := &ObjectValidator{}
	var kws []Keyword
	props := make(map[string]Validator)
	hasProps := false
	for _, item := range items {
		switch v := item.(type) {
		case Property:
			hasProps = true
			props[v.Name] = v.Schema.root
		case Keyword:
			kws = append(kws, v)
		}
	}
	if hasProps {
		ov.Properties = props
	}
	return wrap(applyAll(ov, kws))
}

// ArrSchema builds an array Schema. A *Schema argument (if any) is taken as
// the uniform "items" validator; Keywords configure the rest (MinItems,
// MaxItems, UniqueItems). No Keyword sets tuple items or additionalItems.
func ArrSchema(items ...any) *Schema {
	av := &ArrayValidator{}
	var kws []Keyword
	for _, item := range items {
		switch v := item.(type) {
		case *Schema:
			av.Items = v.root
		case Keyword:
			kws = append(kws, v)
		}
	}
	return wrap(applyAll(av, kws))
}

// StrSchema builds a string Schema from Keywords (MinLength, MaxLength,
// Pattern).
func StrSchema(kws ...Keyword) *Schema {
	return wrap(applyAll(&StringValidator{}, kws))
}

// NumSchema builds a number Schema from Keywords (Minimum, Maximum,
// MultipleOf).
func NumSchema(kws ...Keyword) *Schema {
	return wrap(applyAll(&NumberValidator{}, kws))
}

// IntSchema builds an integer-only number Schema.
func IntSchema(kws ...Keyword) *Schema {
	return wrap(applyAll(&NumberValidator{IntegerOnly: true}, kws))
}

// BoolSchema builds a boolean Schema.
func BoolSchema() *Schema { return wrap(&BooleanValidator{}) }

// NullSchema builds a Schema that accepts only null.
func NullSchema() *Schema { return wrap(nullValidator) }

// AnySchema builds a Schema that accepts any single JSON value.
func AnySchema() *Schema { return wrap(acceptAll) }

// AllOfSchema, AnyOfSchema, OneOfSchema, and NotSchema build the
// corresponding combinator Schemas from already-built Schemas.
func AllOfSchema(clauses ...*Schema) *Schema { return wrap(&AllOfValidator{Clauses: rootsOf(clauses)}) }
func AnyOfSchema(clauses ...*Schema) *Schema { return wrap(&AnyOfValidator{Clauses: rootsOf(clauses)}) }
func OneOfSchema(clauses ...*Schema) *Schema { return wrap(&OneOfValidator{Clauses: rootsOf(clauses)}) }
func NotSchema(child *Schema) *Schema        { return wrap(&NotValidator{Child: child.root}) }

func rootsOf(schemas []*Schema) []Validator {
	out := make([]Validator, len(schemas))
	for i, s := range schemas {
		out[i] = s.root
	}
	return out
}

// Required sets the set of required property names on an ObjSchema.
func Required(names ...string) Keyword {
	return func(v Validator) Validator {
		ov, ok := v.(*ObjectValidator)
		if !ok {
			return v
		}
		ov.Required = names
		return ov
	}
}

// AdditionalProps sets whether an ObjSchema accepts properties not listed
// in its Properties.
func AdditionalProps(allow bool) Keyword {
	return func(v Validator) Validator {
		ov, ok := v.(*ObjectValidator)
		if !ok {
			return v
		}
		if allow {
			ov.AdditionalProperties = additionalPropertiesAllow
		} else {
			ov.AdditionalProperties = additionalPropertiesForbid
		}
		return ov
	}
}

// MinProperties/MaxProperties bound an ObjSchema's property count.
func MinProperties(n int) Keyword {
	return func(v Validator) Validator {
		if ov, ok := v.(*ObjectValidator); ok {
			ov.MinProperties = &n
		}
		return v
	}
}

func MaxProperties(n int) Keyword {
	return func(v Validator) Validator {
		if ov, ok := v.(*ObjectValidator); ok {
			ov.MaxProperties = &n
		}
		return v
	}
}

// MinItems/MaxItems/UniqueItems configure an ArrSchema.
func MinItems(n int) Keyword {
	return func(v Validator) Validator {
		if av, ok := v.(*ArrayValidator); ok {
			av.MinItems = &n
		}
		return v
	}
}

func MaxItems(n int) Keyword {
	return func(v Validator) Validator {
		if av, ok := v.(*ArrayValidator); ok {
			av.MaxItems = &n
		}
		return v
	}
}

func UniqueItems() Keyword {
	return func(v Validator) Validator {
		if av, ok := v.(*ArrayValidator); ok {
			av.UniqueItems = true
		}
		return v
	}
}

// MinLength/MaxLength/Pattern configure a StrSchema.
func MinLength(n int) Keyword {
	return func(v Validator) Validator {
		if sv, ok := v.(*StringValidator); ok {
			sv.MinLength = &n
		}
		return v
	}
}

func MaxLength(n int) Keyword {
	return func(v Validator) Validator {
		if sv, ok := v.(*StringValidator); ok {
			sv.MaxLength = &n
		}
		return v
	}
}

func Pattern(expr string) Keyword {
	re := regexp.MustCompile(expr)
	return func(v Validator) Validator {
		if sv, ok := v.(*StringValidator); ok {
			sv.Pattern = re
		}
		return v
	}
}

// Minimum/Maximum/MultipleOf configure a NumSchema or IntSchema.
func Minimum(n string, exclusive bool) Keyword {
	num := NewNumber([]byte(n))
	return func(v Validator) Validator {
		if nv, ok := v.(*NumberValidator); ok {
			nv.Minimum = num
			nv.ExclusiveMinimum = exclusive
		}
		return v
	}
}

func Maximum(n string, exclusive bool) Keyword {
	num := NewNumber([]byte(n))
	return func(v Validator) Validator {
		if nv, ok := v.(*NumberValidator); ok {
			nv.Maximum = num
			nv.ExclusiveMaximum = exclusive
		}
		return v
	}
}

func MultipleOf(n string) Keyword {
	num := NewNumber([]byte(n))
	return func(v Validator) Validator {
		if nv, ok := v.(*NumberValidator); ok {
			nv.MultipleOf = num
		}
		return v
	}
}

// Default attaches a default value, observable only through
// WithPatchDefault (§4.4/§4.8's no-silent-schema-mutation rule).
func Default(value any) Keyword {
	return func(v Validator) Validator {
		return &defaultingValidator{inner: v, value: value}
	}
}
