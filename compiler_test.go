package jsonschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilerCompileYAML(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileYAML([]byte("type: string\nminLength: 2\n"))
	require.NoError(t, err)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`"hi"`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`"a"`)))
	assert.False(t, ok)
	assert.Equal(t, ErrStringTooShort, verr.Code)
}

func TestCompilerRegisterDecoderOverridesEncoding(t *testing.T) {
	c := NewCompiler()
	called := false
	c.RegisterDecoder("yaml", func(b []byte) ([]byte, error) {
		called = true
		return []byte(`{"type":"number"}`), nil
	})

	schema, err := c.CompileYAML([]byte("irrelevant: true\n"))
	require.NoError(t, err)
	assert.True(t, called)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`5`)))
	assert.True(t, ok)
}

func TestCompilerLoadDocumentUnknownSchemeFails(t *testing.T) {
	c := NewCompiler()
	_, err := c.loadDocument("ftp://example.com/schema.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoLoaderRegistered))
}
