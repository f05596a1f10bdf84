package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgrammaticObjectSchema(t *testing.T) {
	schema := ObjSchema(
		Prop("name", StrSchema(MinLength(1))),
		Prop("age", IntSchema(Minimum("0", false))),
		Required("name"),
		AdditionalProps(false),
	)

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`{"name":"a","age":5}`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`{"age":5}`)))
	assert.False(t, ok)
	assert.Equal(t, ErrMissingRequiredKey, verr.Code)

	ok, verr = schema.Validate(NewJSONTokenSource([]byte(`{"name":"a","extra":1}`)))
	assert.False(t, ok)
	assert.Equal(t, ErrAdditionalPropertyNotAllowed, verr.Code)
}

func TestProgrammaticArraySchema(t *testing.T) {
	schema := ArrSchema(IntSchema(), MinItems(1), MaxItems(3), UniqueItems())

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`[1,2,3]`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`[1,1]`)))
	assert.False(t, ok)
	assert.Equal(t, ErrArrayNotUnique, verr.Code)
}

func TestProgrammaticCombinators(t *testing.T) {
	schema := AnyOfSchema(StrSchema(), NumSchema())

	ok, _ := schema.Validate(NewJSONTokenSource([]byte(`"hi"`)))
	assert.True(t, ok)

	ok, verr := schema.Validate(NewJSONTokenSource([]byte(`true`)))
	assert.False(t, ok)
	assert.Equal(t, ErrAnyOfNoMatch, verr.Code)
}
