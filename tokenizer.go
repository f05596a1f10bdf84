package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"
)

// errUnexpectedToken is returned when the underlying decoder hands back a
// token type the tokenizer doesn't recognize; in practice this can only
// happen if a future goccy/go-json release adds a new token kind.
var errUnexpectedToken = errors.New("jsonschema: unexpected token from decoder")

// jsonTokenSource is the package's default TokenSource, built on
// goccy/go-json's streaming Token() decoder rather than a full Unmarshal —
// matching §1's "the core consumes an event interface" design, where the
// token-level parser is an external collaborator the core never buffers a
// whole document through.
type jsonTokenSource struct {
	data []byte
}

// NewJSONTokenSource wraps a JSON byte slice as a TokenSource using the
// package's default streaming tokenizer.
func NewJSONTokenSource(data []byte) TokenSource {
	return &jsonTokenSource{data: data}
}

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

type frame struct {
	kind      frameKind
	expectKey bool
}

// Run implements TokenSource by walking goccy/go-json's token stream and
// translating it into Events, tracking enough frame state (are we inside
// an object awaiting a key, or an array) to turn encoding/json's
// undifferentiated Token() stream into ObjKey-tagged events.
func (ts *jsonTokenSource) Run(sink Sink) (offset int64, err error) {
	dec := gojson.NewDecoder(bytes.NewReader(ts.data))
	dec.UseNumber()

	var stack []frame
	var end int64

	for {
		start := end
		tok, terr := dec.Token()
		end = dec.InputOffset()
		offset = end
		if terr == io.EOF {
			return offset, nil
		}
		if terr != nil {
			return offset, terr
		}
		// InputOffset points just past the token; events carry the offset of
		// the token's first byte, so skip the whitespace and separators that
		// lie between the previous token and this one.
		for start < end && bytes.IndexByte([]byte(" \t\r\n,:"), ts.data[start]) >= 0 {
			start++
		}
		offset = start

		if n := len(stack); n > 0 && stack[n-1].kind == frameObject && stack[n-1].expectKey {
			if d, isDelim := tok.(gojson.Delim); !isDelim || d != '}' {
				name, ok := tok.(string)
				if !ok {
					return offset, errUnexpectedToken
				}
				if !sink.Handle(Event{Kind: EventObjKey, Text: []byte(name), Offset: offset}) {
					return offset, nil
				}
				stack[n-1].expectKey = false
				continue
			}
		}

		switch v := tok.(type) {
		case gojson.Delim:
			switch v {
			case '{':
				if !sink.Handle(Event{Kind: EventObjStart, Offset: offset}) {
					return offset, nil
				}
				stack = append(stack, frame{kind: frameObject, expectKey: true})
				continue
			case '[':
				if !sink.Handle(Event{Kind: EventArrStart, Offset: offset}) {
					return offset, nil
				}
				stack = append(stack, frame{kind: frameArray})
				continue
			case '}':
				stack = stack[:len(stack)-1]
				if !sink.Handle(Event{Kind: EventObjEnd, Offset: offset}) {
					return offset, nil
				}
			case ']':
				stack = stack[:len(stack)-1]
				if !sink.Handle(Event{Kind: EventArrEnd, Offset: offset}) {
					return offset, nil
				}
			}
		case nil:
			if !sink.Handle(Event{Kind: EventNull, Offset: offset}) {
				return offset, nil
			}
		case bool:
			if !sink.Handle(Event{Kind: EventBool, Bool: v, Offset: offset}) {
				return offset, nil
			}
		case json.Number:
			if !sink.Handle(Event{Kind: EventNumber, Text: []byte(v.String()), Offset: offset}) {
				return offset, nil
			}
		case string:
			if !sink.Handle(Event{Kind: EventString, Text: []byte(v), Offset: offset}) {
				return offset, nil
			}
		default:
			return offset, errUnexpectedToken
		}

		if n := len(stack); n > 0 && stack[n-1].kind == frameObject {
			stack[n-1].expectKey = true
		}
	}
}
