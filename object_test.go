package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectAdditionalPropertiesForbidden(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type":"object","properties":{"a":{"type":"string"}},"additionalProperties":false}`))
	require.NoError(t, err)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`{"a":"x","b":1}`)))
	assert.False(t, ok)
	require.NotNil(t, verr)
	assert.Equal(t, ErrAdditionalPropertyNotAllowed, verr.Code)

	ok, verr = schema.Validate(NewJSONTokenSource([]byte(`{"a":"x"}`)))
	assert.True(t, ok)
	assert.Nil(t, verr)
}

func TestObjectPropertyCountBounds(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type":"object","minProperties":1,"maxProperties":2}`))
	require.NoError(t, err)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`{}`)))
	assert.False(t, ok)
	assert.Equal(t, ErrTooFewProperties, verr.Code)

	ok, verr = schema.Validate(NewJSONTokenSource([]byte(`{"a":1,"b":2,"c":3}`)))
	assert.False(t, ok)
	assert.Equal(t, ErrTooManyProperties, verr.Code)

	ok, _ = schema.Validate(NewJSONTokenSource([]byte(`{"a":1}`)))
	assert.True(t, ok)
}

// Default-value injection (§4.4/§4.8) is observable only through the
// caller-supplied patch hook, never by mutating the schema or silently
// satisfying "required" some other way.
func TestObjectDefaultInjectionOnMissingRequiredProperty(t *testing.T) {
	schema, err := ParseSchema([]byte(`{
		"type": "object",
		"required": ["status"],
		"properties": {
			"status": {"type": "string", "default": "pending"}
		}
	}`))
	require.NoError(t, err)

	var patched []string
	var patchedValue any
	ok, verr := schema.Validate(
		NewJSONTokenSource([]byte(`{}`)),
		WithPatchDefault(func(path string, value any) {
			patched = append(patched, path)
			patchedValue = value
		}),
	)
	assert.True(t, ok)
	assert.Nil(t, verr)
	require.Len(t, patched, 1)
	assert.Equal(t, "status", patched[0])
	assert.Equal(t, "pending", patchedValue)
}

// Regression: when a sibling "allOf"/"anyOf"/"oneOf"/"not"/"extends" keyword
// routes an object's own type validator through a combinator (§4.7's
// combine_validators step runs even for an empty allOf clause), default
// injection on that object's properties must still reach the caller's
// WithPatchDefault hook, since allOf's clauses validate the very same value
// rather than independent alternatives.
func TestObjectDefaultInjectionThroughAllOfWrapper(t *testing.T) {
	schema, err := ParseSchema([]byte(`{
		"type": "object",
		"required": ["status"],
		"properties": {
			"status": {"type": "string", "default": "pending"}
		},
		"allOf": [{}]
	}`))
	require.NoError(t, err)

	var patched []string
	var patchedValue any
	ok, verr := schema.Validate(
		NewJSONTokenSource([]byte(`{}`)),
		WithPatchDefault(func(path string, value any) {
			patched = append(patched, path)
			patchedValue = value
		}),
	)
	assert.True(t, ok)
	assert.Nil(t, verr)
	require.Len(t, patched, 1)
	assert.Equal(t, "status", patched[0])
	assert.Equal(t, "pending", patchedValue)
}

func TestObjectMissingRequiredWithNoDefaultFails(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type":"object","required":["id"],"properties":{"id":{"type":"integer"}}}`))
	require.NoError(t, err)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`{}`)))
	assert.False(t, ok)
	require.NotNil(t, verr)
	assert.Equal(t, ErrMissingRequiredKey, verr.Code)
}
