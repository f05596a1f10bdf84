package jsonschema

import (
	"net/url"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// scopeStack tracks the nested absolute URIs introduced by "id" keywords
// (§3 "URI scope stack"). push resolves a (possibly relative) URI against
// the current top and returns the new absolute URI; pop restores the
// previous top. newScopeStack("") starts with an empty base, which push
// treats as "use id verbatim"; the zero value has no base and is not usable.
type scopeStack struct {
	uris []string
}

func newScopeStack(base string) *scopeStack {
	return &scopeStack{uris: []string{base}}
}

func (s *scopeStack) top() string { return s.uris[len(s.uris)-1] }

func (s *scopeStack) push(id string) string {
	abs := resolveURI(s.top(), id)
	s.uris = append(s.uris, abs)
	return abs
}

func (s *scopeStack) pop() {
	if len(s.uris) > 1 {
		s.uris = s.uris[:len(s.uris)-1]
	}
}

// resolveURI resolves ref against base the way net/url does for HTML hrefs;
// an empty ref returns base unchanged, and an empty base returns ref
// unchanged.
func resolveURI(base, ref string) string {
	if ref == "" {
		return base
	}
	if base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return base
	}
	return baseURL.ResolveReference(refURL).String()
}

// splitFragment separates an absolute (or relative, pre-resolution) URI
// into its document part and its "#/a/b" fragment part (fragment includes
// the leading "#").
func splitFragment(uri string) (doc, fragment string) {
	if idx := strings.IndexByte(uri, '#'); idx >= 0 {
		return uri[:idx], uri[idx:]
	}
	return uri, "#"
}

// pointerSegments parses a "#/a/b~1c" style fragment into its unescaped
// path segments, delegating RFC 6901 unescaping to jsonpointer.
func pointerSegments(fragment string) []string {
	trimmed := strings.TrimPrefix(fragment, "#")
	if trimmed == "" || trimmed == "/" {
		return nil
	}
	return jsonpointer.Parse(trimmed)
}

// joinPointer rebuilds a "#/a/b" fragment from path segments, delegating
// RFC 6901 escaping to jsonpointer.Format — the same package's symmetric
// counterpart to pointerSegments' Parse above, the way the teacher builds
// a Location string from path tokens (schema.go's compilePattern errors).
func joinPointer(segments []string) string {
	if len(segments) == 0 {
		return "#"
	}
	return "#" + jsonpointer.Format(segments...)
}

// URIResolver maps an absolute URI (document + fragment) to the finalized
// validator registered at it (§3 "URI resolver"). Populated during the
// recursive compile pass (builder.go) and consulted when Ref validators are
// resolved (compile.go).
type URIResolver struct {
	byURI map[string]Validator
}

func newURIResolver() *URIResolver {
	return &URIResolver{byURI: make(map[string]Validator)}
}

// Register associates uri with v. It is an error to register the same URI
// twice — per SPEC_FULL.md's resolution of the spec's duplicate-fragment
// open question, this implementation fails compilation rather than warn
// and overwrite.
func (r *URIResolver) Register(uri string, v Validator) error {
	if _, exists := r.byURI[uri]; exists {
		return newSchemaError(ErrDuplicateFragment, uri, "a schema is already registered at this URI")
	}
	r.byURI[uri] = v
	return nil
}

// Lookup returns the validator registered at uri, if any.
func (r *URIResolver) Lookup(uri string) (Validator, bool) {
	v, ok := r.byURI[uri]
	return v, ok
}
