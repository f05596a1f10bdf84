package jsonschema

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
)

// defaultCompiler is the Compiler used by the package-level convenience
// functions below, lazily built the way the teacher's package-level
// helpers share one implicit Compiler. Embedders that need loader
// registration, a default base URI, or schema caching across many calls
// should build their own Compiler instead.
var (
	defaultCompiler     *Compiler
	defaultCompilerOnce sync.Once
)

func sharedCompiler() *Compiler {
	defaultCompilerOnce.Do(func() { defaultCompiler = NewCompiler() })
	return defaultCompiler
}

// ParseSchema compiles a schema document's JSON bytes into a *Schema,
// equivalent to the original library's JSchemaFragment: the schema text is
// already in memory and carries no file identity of its own.
func ParseSchema(text []byte, baseURI ...string) (*Schema, error) {
	return sharedCompiler().Compile(text, baseURI...)
}

// ParseSchemaString is ParseSchema for a string-typed caller.
func ParseSchemaString(text string, baseURI ...string) (*Schema, error) {
	return ParseSchema([]byte(text), baseURI...)
}

// Resolver is the per-call embedder Schema-load interface (spec §6's
// "resolve(relative_uri, base_uri) -> schema-text or error"), used when a
// $ref inside the file crosses into another document. relativeURI has
// already been joined against the document's own scope by the time this is
// called (the "file" loader it replaces has always taken a fully resolved
// location, never a bare $ref string — see Compiler.setupLoaders);
// baseURI is the ParseSchemaFile call's own base. Unlike Compiler.Loaders
// — registered once on a Compiler and shared by every compile through it —
// a Resolver is supplied to a single ParseSchemaFile call and overrides
// only that call's cross-document fetches.
type Resolver func(relativeURI, baseURI string) ([]byte, error)

// ParseFileOption configures a single ParseSchemaFile call.
type ParseFileOption func(*parseFileOptions)

type parseFileOptions struct {
	baseURI  string
	resolver Resolver
}

// WithBaseURI overrides the base URI "id"/"$ref" resolve against; without
// it, the file's own "file://path" is used.
func WithBaseURI(uri string) ParseFileOption {
	return func(o *parseFileOptions) { o.baseURI = uri }
}

// WithResolver installs a per-call Resolver for cross-document $ref,
// in place of the shared default Compiler's own file:// loader.
func WithResolver(r Resolver) ParseFileOption {
	return func(o *parseFileOptions) { o.resolver = r }
}

// ParseSchemaFile reads and compiles the schema document at path,
// equivalent to the original library's JSchemaFile: relative $ref targets
// resolve against the file's own location unless WithBaseURI overrides it,
// and cross-document $ref is fetched through WithResolver if given.
func ParseSchemaFile(path string, opts ...ParseFileOption) (*Schema, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, &SchemaError{Cause: ErrSchemaNotFound, Path: path, Reason: err.Error()}
	}

	var o parseFileOptions
	for _, opt := range opts {
		opt(&o)
	}

	base := "file://" + path
	if o.baseURI != "" {
		base = o.baseURI
	}

	if o.resolver == nil {
		return sharedCompiler().Compile(text, base)
	}

	c := NewCompiler()
	c.RegisterLoader("file", func(uri string) (io.ReadCloser, error) {
		relative := strings.TrimPrefix(uri, "file://")
		b, err := o.resolver(relative, base)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(b)), nil
	})
	return c.Compile(text, base)
}

// Validate compiles schemaText and validates instanceText against it in
// one call — the shape most embedders reach for first. Callers validating
// the same schema repeatedly should compile it once with ParseSchema and
// call Schema.Validate directly instead.
func Validate(schemaText, instanceText []byte) (bool, *ValidationError) {
	schema, err := ParseSchema(schemaText)
	if err != nil {
		return false, &ValidationError{Code: ErrInternal, Detail: err.Error()}
	}
	return schema.Validate(NewJSONTokenSource(instanceText))
}
