package jsonschema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaFileWithResolverFetchesCrossDocumentRef(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"$ref": "other.json#/definitions/pos"}`), 0o644))

	otherDoc := []byte(`{"definitions": {"pos": {"type": "integer", "minimum": 1}}}`)

	var requested []string
	schema, err := ParseSchemaFile(path, WithResolver(func(relativeURI, baseURI string) ([]byte, error) {
		requested = append(requested, relativeURI)
		return otherDoc, nil
	}))
	require.NoError(t, err)
	require.Len(t, requested, 1)
	assert.Equal(t, "other.json", filepath.Base(requested[0]))

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`5`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`0`)))
	assert.False(t, ok)
	assert.Equal(t, ErrNumberTooSmall, verr.Code)
}

func TestParseSchemaFileWithBaseURIOverridesFileLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "string"}`), 0o644))

	schema, err := ParseSchemaFile(path, WithBaseURI("http://example.com/root.json"))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/root.json", schema.BaseURI())
}
