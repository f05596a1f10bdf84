package jsonschema

import (
	"bytes"
	"strconv"
)

// canonBuilder assembles a canonical text form of one JSON value from the
// event stream, used by ArrayValidator's uniqueItems check (§4.3) to
// compare elements "at JSON-value level ... not byte level": number
// spelling is normalized through Number, and separators are rebuilt rather
// than copied from source whitespace.
//
// Limitation (documented in DESIGN.md): object member order is preserved
// as seen rather than sorted by key, so two objects that are equal as JSON
// values but spell their members in a different order are not recognized
// as duplicates. Scalars and arrays are unaffected.
type canonBuilder struct {
	buf       bytes.Buffer
	needComma []bool
}

func newCanonBuilder() *canonBuilder { return &canonBuilder{} }

func (c *canonBuilder) sep() {
	if len(c.needComma) == 0 {
		return
	}
	top := len(c.needComma) - 1
	if c.needComma[top] {
		c.buf.WriteByte(',')
	} else {
		c.needComma[top] = true
	}
}

// Feed folds one event into the builder and reports whether this event
// closed out the value the builder was asked to capture.
func (c *canonBuilder) Feed(ev Event) (done bool) {
	switch ev.Kind {
	case EventObjStart:
		c.sep()
		c.buf.WriteByte('{')
		c.needComma = append(c.needComma, false)
		return false
	case EventArrStart:
		c.sep()
		c.buf.WriteByte('[')
		c.needComma = append(c.needComma, false)
		return false
	case EventObjKey:
		c.sep()
		c.buf.WriteString(strconv.Quote(string(ev.Text)))
		c.buf.WriteByte(':')
		c.needComma[len(c.needComma)-1] = false
		return false
	case EventObjEnd:
		c.buf.WriteByte('}')
		c.needComma = c.needComma[:len(c.needComma)-1]
		return len(c.needComma) == 0
	case EventArrEnd:
		c.buf.WriteByte(']')
		c.needComma = c.needComma[:len(c.needComma)-1]
		return len(c.needComma) == 0
	case EventNull:
		c.sep()
		c.buf.WriteString("null")
		return len(c.needComma) == 0
	case EventBool:
		c.sep()
		if ev.Bool {
			c.buf.WriteString("true")
		} else {
			c.buf.WriteString("false")
		}
		return len(c.needComma) == 0
	case EventNumber:
		c.sep()
		if n := NewNumber(ev.Text); n != nil {
			c.buf.WriteString(n.String())
		} else {
			c.buf.Write(ev.Text)
		}
		return len(c.needComma) == 0
	case EventString:
		c.sep()
		c.buf.WriteString(strconv.Quote(string(ev.Text)))
		return len(c.needComma) == 0
	}
	return false
}

func (c *canonBuilder) String() string { return c.buf.String() }
