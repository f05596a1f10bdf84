package jsonschema

import "testing"

func feedAll(c *canonBuilder, evs []Event) {
	for _, ev := range evs {
		c.Feed(ev)
	}
}

func TestCanonBuilderObjectKeyOrdering(t *testing.T) {
	c := newCanonBuilder()
	feedAll(c, []Event{
		{Kind: EventObjStart},
		{Kind: EventObjKey, Text: []byte("a")},
		{Kind: EventNumber, Text: []byte("1")},
		{Kind: EventObjKey, Text: []byte("b")},
		{Kind: EventNumber, Text: []byte("2")},
		{Kind: EventObjEnd},
	})
	got := c.String()
	want := `{"a":1,"b":2}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCanonBuilderNormalizesNumberSpelling(t *testing.T) {
	c1 := newCanonBuilder()
	feedAll(c1, []Event{{Kind: EventNumber, Text: []byte("1.0")}})

	c2 := newCanonBuilder()
	feedAll(c2, []Event{{Kind: EventNumber, Text: []byte("1")}})

	if c1.String() != c2.String() {
		t.Errorf("expected 1.0 and 1 to canonicalize the same, got %q vs %q", c1.String(), c2.String())
	}
}

func TestCanonBuilderNestedArray(t *testing.T) {
	c := newCanonBuilder()
	feedAll(c, []Event{
		{Kind: EventArrStart},
		{Kind: EventNumber, Text: []byte("1")},
		{Kind: EventArrStart},
		{Kind: EventString, Text: []byte("x")},
		{Kind: EventArrEnd},
		{Kind: EventArrEnd},
	})
	want := `[1,["x"]]`
	if c.String() != want {
		t.Errorf("got %q, want %q", c.String(), want)
	}
}
