package jsonschema

import (
	"errors"
	"fmt"
)

// === Schema compilation errors ===
// Grouped the way the teacher's errors.go groups sentinel errors by concern.
var (
	// ErrSchemaSyntax is returned when the schema document itself is not
	// well-formed JSON.
	ErrSchemaSyntax = errors.New("schema: malformed JSON")

	// ErrUnknownKeywordValue is returned when a recognized keyword carries
	// a value of the wrong JSON type (e.g. "properties": "x").
	ErrUnknownKeywordValue = errors.New("schema: keyword has unexpected value type")

	// ErrUnresolvedRef is returned when a $ref cannot be resolved against
	// the URI resolver after the build completes.
	ErrUnresolvedRef = errors.New("schema: unresolved $ref")

	// ErrDuplicateFragment is returned when two subschemas would register
	// under the same absolute URI. See SPEC_FULL.md's open-question
	// decision: this implementation fails compilation rather than
	// warn-and-overwrite.
	ErrDuplicateFragment = errors.New("schema: duplicate fragment registration")

	// ErrInvalidPattern is returned when a "pattern" value does not
	// compile as a regular expression.
	ErrInvalidPattern = errors.New("schema: invalid pattern")

	// ErrResolverRequired names the case of a cross-document $ref with no
	// Resolver. No function in this package returns it: a cross-document
	// $ref is fetched through the Compiler's Loaders, and one that cannot be
	// fetched fails compilation with ErrUnresolvedRef.
	ErrResolverRequired = errors.New("schema: cross-document $ref requires a resolver")
)

// === I/O errors (embedder-facing schema loaders) ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for a
	// $ref's URI scheme.
	ErrNoLoaderRegistered = errors.New("schema: no loader registered for scheme")

	// ErrSchemaNotFound is returned by ParseSchemaFile when the path does
	// not exist or cannot be read.
	ErrSchemaNotFound = errors.New("schema: file not found")
)

// ErrorCode classifies a validation failure as specified in §6 of the
// engine's error-notification interface.
type ErrorCode string

const (
	ErrOK                           ErrorCode = "OK"
	ErrNotNull                      ErrorCode = "NotNull"
	ErrNotBoolean                   ErrorCode = "NotBoolean"
	ErrNotString                    ErrorCode = "NotString"
	ErrNotNumber                    ErrorCode = "NotNumber"
	ErrNotIntegerNumber             ErrorCode = "NotIntegerNumber"
	ErrNotArray                     ErrorCode = "NotArray"
	ErrNotObject                    ErrorCode = "NotObject"
	ErrTypeNotAllowed               ErrorCode = "TypeNotAllowed"
	ErrUnexpectedValue              ErrorCode = "UnexpectedValue"
	ErrArrayTooShort                ErrorCode = "ArrayTooShort"
	ErrArrayTooLong                 ErrorCode = "ArrayTooLong"
	ErrArrayNotUnique               ErrorCode = "ArrayNotUnique"
	ErrStringTooShort               ErrorCode = "StringTooShort"
	ErrStringTooLong                ErrorCode = "StringTooLong"
	ErrStringDoesNotMatchPattern    ErrorCode = "StringDoesNotMatchPattern"
	ErrNumberTooSmall               ErrorCode = "NumberTooSmall"
	ErrNumberTooLarge               ErrorCode = "NumberTooLarge"
	ErrNumberNotMultiple            ErrorCode = "NumberNotMultiple"
	ErrMissingRequiredKey           ErrorCode = "MissingRequiredKey"
	ErrAdditionalPropertyNotAllowed ErrorCode = "AdditionalPropertyNotAllowed"
	ErrTooManyProperties            ErrorCode = "TooManyProperties"
	ErrTooFewProperties             ErrorCode = "TooFewProperties"
	ErrAnyOfNoMatch                 ErrorCode = "AnyOfNoMatch"
	ErrOneOfNotOne                  ErrorCode = "OneOfNotOne"
	ErrNotNotRejected               ErrorCode = "NotNotRejected"
	ErrSyntax                       ErrorCode = "Syntax"
	ErrUnresolvedRefCode            ErrorCode = "UnresolvedRef"
	ErrInternal                     ErrorCode = "Internal"
	ErrEnumMismatch                 ErrorCode = "EnumMismatch"
)

// ValidationError reports a single validation failure: the code, the byte
// offset of the offending event, and the JSON-pointer-ish path of the
// validator that raised it.
type ValidationError struct {
	Code   ErrorCode
	Offset int64
	Path   string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at %s (offset %d): %s", e.Code, e.Path, e.Offset, e.Detail)
	}
	return fmt.Sprintf("%s at %s (offset %d)", e.Code, e.Path, e.Offset)
}

// Localize renders the error using the package's localization bundle (see
// i18n.go), falling back to Error() if no message is registered for locale.
func (e *ValidationError) Localize(locale string) string {
	return localizeValidationError(locale, e)
}

// SchemaError reports a schema-compilation failure: a sentinel cause plus a
// human-readable reason and the JSON pointer path within the schema
// document where the failure occurred.
type SchemaError struct {
	Cause  error
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Cause, e.Reason, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Cause, e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

func newSchemaError(cause error, path, reason string) *SchemaError {
	return &SchemaError{Cause: cause, Path: path, Reason: reason}
}
