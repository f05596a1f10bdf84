package jsonschema

// combinatorBranch is one child's private substate within AllOf/AnyOf/
// OneOf/Not (§4.6), and the per-element substate of ArrayValidator: its own
// stack + context, so that one branch can be
// three levels deep into a nested object while a sibling has already
// failed or is still waiting on its first event. Branches are not visible
// outside the combinator that owns them.
type combinatorBranch struct {
	st   *ValidationState
	dead bool
}

// newCombinatorBranch starts a substate with root pushed. notify is where
// the branch's own Fail calls go: AllOf passes the real notification sink,
// since its clauses' own failures ARE the reported error, while AnyOf/OneOf/
// Not pass nil, since they synthesize their own error code and must not leak
// a losing branch's complaint. patch is
// forwarded as-is: AllOf's clauses validate the very same value as the
// schema's own type validator, so a "default" nested under an AllOf clause
// must still reach the caller's WithPatchDefault callback exactly like one
// nested directly under "properties".
func newCombinatorBranch(root Validator, resolver *URIResolver, notify func(*ValidationError), patch func(string, any)) *combinatorBranch {
	st := newValidationState(resolver, notify, patch)
	st.Push(root)
	return &combinatorBranch{st: st}
}

// feed delivers ev to the branch if it is still alive. It keeps the
// branch's offset in sync with the real stream position so any error it
// reports (directly, for AllOf) carries the right offset.
func (b *combinatorBranch) feed(ev Event) {
	if b.dead || b.st.Empty() {
		return
	}
	b.st.offset = ev.Offset
	top := b.st.Top()
	if !top.Check(ev, b.st) {
		b.dead = true
	}
}

// accepted reports whether the branch consumed a complete value without
// ever failing.
func (b *combinatorBranch) accepted() bool { return !b.dead && b.st.Empty() }

// alive reports whether the branch can still receive more events.
func (b *combinatorBranch) alive() bool { return !b.dead && !b.st.Empty() }
