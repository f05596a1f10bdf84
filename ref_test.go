package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefResolvesThroughDefinitions(t *testing.T) {
	schema, err := ParseSchema([]byte(`{
		"$ref": "#/definitions/pos",
		"definitions": {"pos": {"type": "integer", "minimum": 1}}
	}`))
	require.NoError(t, err)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`5`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`0`)))
	assert.False(t, ok)
	assert.Equal(t, ErrNumberTooSmall, verr.Code)
}

func TestUnresolvedRefFailsCompilation(t *testing.T) {
	_, err := ParseSchema([]byte(`{"$ref": "#/definitions/missing"}`))
	require.Error(t, err)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, serr, ErrUnresolvedRef)
}

func TestDuplicateFragmentFailsCompilation(t *testing.T) {
	_, err := ParseSchema([]byte(`{
		"id": "http://example.com/a.json",
		"definitions": {
			"x": {"id": "http://example.com/a.json"}
		}
	}`))
	require.Error(t, err)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, serr, ErrDuplicateFragment)
}
