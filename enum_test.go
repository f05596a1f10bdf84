package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumAcceptsMixedScalarKinds(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"enum": [1, "two", null, true]}`))
	require.NoError(t, err)

	for _, ok := range []string{`1`, `"two"`, `null`, `true`} {
		passed, _ := schema.Validate(NewJSONTokenSource([]byte(ok)))
		assert.Truef(t, passed, "expected %s to pass", ok)
	}

	failed, verr := schema.Validate(NewJSONTokenSource([]byte(`"three"`)))
	assert.False(t, failed)
	assert.Equal(t, ErrEnumMismatch, verr.Code)
}

func TestEnumRejectsCompositeEntryAtBuildTime(t *testing.T) {
	_, err := ParseSchema([]byte(`{"enum": [[1,2]]}`))
	require.Error(t, err)
}

func TestEnumNumericComparisonIsExact(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"enum": [1.0]}`))
	require.NoError(t, err)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`1`)))
	assert.True(t, ok, "1.0 and 1 must compare equal as Numbers")
}
