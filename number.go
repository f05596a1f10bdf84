package jsonschema

import (
	"math/big"
)

// Number is an arbitrary-precision decimal value parsed from a JSON number's
// textual form. Comparison and equality are independent of surface spelling:
// NewNumber("4.2e-4").Cmp(NewNumber("0.00042")) == 0.
//
// Grounded on the teacher's Rat wrapper around math/big.Rat (rat.go); unlike
// the teacher, Number parses directly from the lexer's borrowed byte slice
// since the event model here never holds a decoded interface{}.
type Number struct {
	r *big.Rat
}

// NewNumber parses text (the Number event's borrowed bytes, copied) into a
// Number. It returns nil if text does not parse under math/big.Rat's
// SetString syntax, which also accepts some forms JSON does not (e.g. "1/2").
func NewNumber(text []byte) *Number {
	r := new(big.Rat)
	if _, ok := r.SetString(string(text)); !ok {
		return nil
	}
	return &Number{r: r}
}

// Cmp returns -1, 0, or +1 as n is less than, equal to, or greater than o.
func (n *Number) Cmp(o *Number) int {
	return n.r.Cmp(o.r)
}

// IsInteger reports whether n has a zero fractional part.
func (n *Number) IsInteger() bool {
	return n.r.IsInt()
}

// MultipleOf reports whether n is an exact integer multiple of step.
func (n *Number) MultipleOf(step *Number) bool {
	if step.r.Sign() == 0 {
		return false
	}
	quot := new(big.Rat).Quo(n.r, step.r)
	return quot.IsInt()
}

// String renders the canonical decimal form: an integer literal when
// possible, otherwise a reduced fraction "num/den".
func (n *Number) String() string {
	if n.r.IsInt() {
		return n.r.Num().String()
	}
	return n.r.RatString()
}

// Float64 returns the nearest float64 approximation, for diagnostics only.
func (n *Number) Float64() float64 {
	f, _ := n.r.Float64()
	return f
}
