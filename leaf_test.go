package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanValidatorRejectsNonBoolean(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type": "boolean"}`))
	require.NoError(t, err)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`true`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`"true"`)))
	assert.False(t, ok)
	assert.Equal(t, ErrNotBoolean, verr.Code)
}

func TestStringValidatorChecksLengthInCodePoints(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type": "string", "minLength": 2, "maxLength": 3}`))
	require.NoError(t, err)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`"日本語"`)))
	assert.True(t, ok, "3 code points should satisfy minLength/maxLength even though it's more than 3 bytes")

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`"a"`)))
	assert.False(t, ok)
	assert.Equal(t, ErrStringTooShort, verr.Code)
}

func TestStringValidatorPattern(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type": "string", "pattern": "^[a-z]+$"}`))
	require.NoError(t, err)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`"abc"`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`"ABC"`)))
	assert.False(t, ok)
	assert.Equal(t, ErrStringDoesNotMatchPattern, verr.Code)
}

func TestCombinedTypesValidatorDispatchesOnFirstEvent(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type": ["integer", "string"]}`))
	require.NoError(t, err)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`5`)))
	assert.True(t, ok)

	ok, _ = schema.Validate(NewJSONTokenSource([]byte(`"hi"`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`true`)))
	assert.False(t, ok)
	assert.Equal(t, ErrTypeNotAllowed, verr.Code)

	ok, verr = schema.Validate(NewJSONTokenSource([]byte(`5.5`)))
	assert.False(t, ok, "5.5 is a number but not an integer, and integer|string excludes plain number")
	assert.Equal(t, ErrNotIntegerNumber, verr.Code)
}
