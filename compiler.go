package jsonschema

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-yaml"
)

// Compiler compiles schema documents into Schema values and caches them by
// absolute URI, resolving cross-document $ref by loading and compiling
// whatever a registered Loader fetches for the ref's scheme.
//
// Grounded on the teacher's Compiler (compiler.go): same cache-by-URI
// shape, same Loaders-by-scheme registry, reduced to the keyword set and
// single JSON/YAML decoding path this engine supports (no media-type
// registry, no custom-format registry — format validation is a Non-goal).
type Compiler struct {
	mu             sync.RWMutex
	schemas        map[string]*Schema
	Loaders        map[string]func(uri string) (io.ReadCloser, error)
	Decoders       map[string]func([]byte) ([]byte, error)
	DefaultBaseURI string
}

// NewCompiler returns a Compiler with file://, http:// and https:// loaders,
// and json/yaml/yml decoders, already registered.
func NewCompiler() *Compiler {
	c := &Compiler{
		schemas: make(map[string]*Schema),
		Loaders: make(map[string]func(string) (io.ReadCloser, error)),
	}
	c.setupLoaders()
	c.setupDecoders()
	return c
}

func (c *Compiler) setupLoaders() {
	c.Loaders["file"] = func(uri string) (io.ReadCloser, error) {
		path := strings.TrimPrefix(uri, "file://")
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, err)
		}
		return f, nil
	}

	client := &http.Client{Timeout: 10 * time.Second}
	httpLoader := func(uri string) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("schema: fetching %s: unexpected status %d", uri, resp.StatusCode)
		}
		return resp.Body, nil
	}
	c.Loaders["http"] = httpLoader
	c.Loaders["https"] = httpLoader
}

// RegisterLoader installs a loader for the given URI scheme, overriding any
// built-in one.
func (c *Compiler) RegisterLoader(scheme string, loader func(uri string) (io.ReadCloser, error)) *Compiler {
	c.Loaders[scheme] = loader
	return c
}

// setupDecoders registers the encodings a schema document can arrive in:
// "json" (the identity transcode) and "yaml"/"yml" (transcoded to JSON via
// goccy/go-yaml before the builder ever sees them).
func (c *Compiler) setupDecoders() {
	c.Decoders = map[string]func([]byte) ([]byte, error){
		"json": func(b []byte) ([]byte, error) { return b, nil },
		"yaml": yaml.YAMLToJSON,
		"yml":  yaml.YAMLToJSON,
	}
}

// RegisterDecoder installs a decoder for the given source encoding name,
// overriding any built-in one. A decoder transcodes encoding's bytes into
// JSON bytes ready for decodeSchemaDocument.
func (c *Compiler) RegisterDecoder(encoding string, decode func([]byte) ([]byte, error)) *Compiler {
	c.Decoders[encoding] = decode
	return c
}

// decode runs text through the decoder registered for encoding, or returns
// text unchanged if encoding is unregistered (treated as already-JSON).
func (c *Compiler) decode(encoding string, text []byte) ([]byte, error) {
	dec, ok := c.Decoders[encoding]
	if !ok {
		return text, nil
	}
	return dec(text)
}

// encodingFromURI infers a source encoding from a document URI's file
// extension, defaulting to "json" for anything else.
func encodingFromURI(uri string) string {
	switch {
	case strings.HasSuffix(uri, ".yaml"), strings.HasSuffix(uri, ".yml"):
		return "yaml"
	default:
		return "json"
	}
}

// SetDefaultBaseURI sets the base URI against which a schema document's own
// (possibly absent) "id" is resolved when Compile is called without an
// explicit baseURI.
func (c *Compiler) SetDefaultBaseURI(uri string) *Compiler {
	c.DefaultBaseURI = uri
	return c
}

// Compile parses and builds text (JSON schema document bytes) into a
// cached Schema. An explicit baseURI, if given, seeds the URI scope stack;
// otherwise DefaultBaseURI is used.
func (c *Compiler) Compile(text []byte, baseURI ...string) (*Schema, error) {
	base := c.DefaultBaseURI
	if len(baseURI) > 0 && baseURI[0] != "" {
		base = baseURI[0]
	}

	if base != "" {
		c.mu.RLock()
		cached, ok := c.schemas[base]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	raw, err := decodeSchemaDocument(text)
	if err != nil {
		return nil, err
	}

	ctx := &buildCtx{
		scopes:   newScopeStack(base),
		resolver: newURIResolver(),
		loadDoc:  c.loadDocument,
	}

	root, err := compileValue(raw, nil, ctx)
	if err != nil {
		return nil, err
	}
	if err := resolveRefs(ctx); err != nil {
		return nil, err
	}

	schema := &Schema{root: root, resolver: ctx.resolver, baseURI: ctx.scopes.top()}

	if schema.baseURI != "" {
		c.mu.Lock()
		c.schemas[schema.baseURI] = schema
		c.mu.Unlock()
	}

	return schema, nil
}

// CompileYAML transcodes a YAML schema document to JSON (via goccy/go-yaml)
// before compiling it, so schema authors can write schemas in either
// format.
func (c *Compiler) CompileYAML(text []byte, baseURI ...string) (*Schema, error) {
	jsonText, err := c.decode("yaml", text)
	if err != nil {
		return nil, newSchemaError(ErrSchemaSyntax, "#", "invalid YAML: "+err.Error())
	}
	return c.Compile(jsonText, baseURI...)
}

// loadDocument fetches and decodes the schema document at uri using the
// loader registered for its scheme and the decoder inferred from its file
// extension, for resolving a $ref that crosses documents (including a
// cross-document ref into a YAML sibling document).
func (c *Compiler) loadDocument(uri string) (any, error) {
	scheme, _, found := strings.Cut(uri, "://")
	if !found {
		return nil, ErrNoLoaderRegistered
	}
	loader, ok := c.Loaders[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoLoaderRegistered, scheme)
	}
	rc, err := loader(uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	text, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	jsonText, err := c.decode(encodingFromURI(uri), text)
	if err != nil {
		return nil, err
	}
	return decodeSchemaDocument(jsonText)
}
