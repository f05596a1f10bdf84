package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each case below is one of the engine's literal end-to-end scenarios:
// compile a schema, validate an input against it, and check the outcome
// (and, for rejections, the specific error code).
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name       string
		schema     string
		input      string
		wantOK     bool
		wantCode   ErrorCode
	}{
		{
			name:   "boolean schema accepts a boolean",
			schema: `{"type":"boolean"}`,
			input:  `true`,
			wantOK: true,
		},
		{
			name:     "boolean schema rejects a number",
			schema:   `{"type":"boolean"}`,
			input:    `1`,
			wantOK:   false,
			wantCode: ErrNotBoolean,
		},
		{
			name:   "object with satisfied required integer property",
			schema: `{"type":"object","required":["id"],"properties":{"id":{"type":"integer"}}}`,
			input:  `{"id":42}`,
			wantOK: true,
		},
		{
			name:     "object missing a required property",
			schema:   `{"type":"object","required":["id"],"properties":{"id":{"type":"integer"}}}`,
			input:    `{"name":"x"}`,
			wantOK:   false,
			wantCode: ErrMissingRequiredKey,
		},
		{
			name:     "allOf propagates the failing clause's own error",
			schema:   `{"allOf":[{"type":"string"},{"minLength":3}]}`,
			input:    `"hi"`,
			wantOK:   false,
			wantCode: ErrStringTooShort,
		},
		{
			name:     "anyOf rejects with its own synthetic code",
			schema:   `{"anyOf":[{"type":"string"},{"type":"number"}]}`,
			input:    `true`,
			wantOK:   false,
			wantCode: ErrAnyOfNoMatch,
		},
		{
			name:     "oneOf rejects when more than one branch matches",
			schema:   `{"oneOf":[{"type":"integer"},{"minimum":0}]}`,
			input:    `5`,
			wantOK:   false,
			wantCode: ErrOneOfNotOne,
		},
		{
			name:     "$ref resolves into definitions and the target's own error surfaces",
			schema:   `{"$ref":"#/definitions/pos","definitions":{"pos":{"type":"integer","minimum":1}}}`,
			input:    `0`,
			wantOK:   false,
			wantCode: ErrNumberTooSmall,
		},
		{
			name:     "uniqueItems rejects a duplicate element",
			schema:   `{"type":"array","items":{"type":"integer"},"uniqueItems":true}`,
			input:    `[1,2,1]`,
			wantOK:   false,
			wantCode: ErrArrayNotUnique,
		},
		{
			name:   "enum matches across differently-spelled but equal numbers",
			schema: `{"enum":[1.0, "x"]}`,
			input:  `1`,
			wantOK: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schema, err := ParseSchema([]byte(tc.schema))
			require.NoError(t, err)

			ok, verr := schema.Validate(NewJSONTokenSource([]byte(tc.input)))
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Nil(t, verr)
			} else {
				require.NotNil(t, verr)
				assert.Equal(t, tc.wantCode, verr.Code)
			}
		})
	}
}

// Combinator duality (§8 property 2): not negates whatever its child
// would have decided, for any well-formed input.
func TestNotNegatesChild(t *testing.T) {
	inner := `{"type":"string"}`
	negated := `{"not":{"type":"string"}}`

	for _, input := range []string{`"hello"`, `42`, `true`, `null`} {
		innerSchema, err := ParseSchema([]byte(inner))
		require.NoError(t, err)
		negSchema, err := ParseSchema([]byte(negated))
		require.NoError(t, err)

		innerOK, _ := innerSchema.Validate(NewJSONTokenSource([]byte(input)))
		negOK, _ := negSchema.Validate(NewJSONTokenSource([]byte(input)))

		assert.Equal(t, !innerOK, negOK, "input %s", input)
	}
}

// Order independence of sibling keywords (§8 property 5): permuting a
// schema object's keys must not change its accept/reject verdict.
func TestSiblingKeywordOrderIndependence(t *testing.T) {
	a := `{"type":"object","required":["id"],"properties":{"id":{"type":"integer","minimum":0}}}`
	b := `{"properties":{"id":{"minimum":0,"type":"integer"}},"type":"object","required":["id"]}`

	for _, input := range []string{`{"id":5}`, `{"id":-1}`, `{}`} {
		sa, err := ParseSchema([]byte(a))
		require.NoError(t, err)
		sb, err := ParseSchema([]byte(b))
		require.NoError(t, err)

		okA, _ := sa.Validate(NewJSONTokenSource([]byte(input)))
		okB, _ := sb.Validate(NewJSONTokenSource([]byte(input)))
		assert.Equal(t, okA, okB, "input %s", input)
	}
}
