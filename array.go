package jsonschema

// additionalItemsPolicy selects how an ArrayValidator handles elements past
// the end of a tuple's positional validators (§4.3).
type additionalItemsPolicy int

const (
	additionalItemsAllow additionalItemsPolicy = iota
	additionalItemsForbid
	additionalItemsValidate
)

// ArrayValidator validates an ArrStart..ArrEnd run. In uniform mode every
// element is checked against Items; in tuple mode the first len(Tuple)
// elements are checked positionally and the rest follow AdditionalItems'
// policy.
//
// Grounded on the teacher's items.go (tuple vs. single-schema "items") and
// uniqueItems.go, recast as a pushdown state machine: each element is
// delegated to a child validator run in a private substate (a
// combinatorBranch) rather than recursively evaluated against a decoded
// slice, so the array stays on top of the stack and sees every event of the
// element, which uniqueItems needs to build the element's canonical form.
type ArrayValidator struct {
	Items           Validator // uniform mode; nil in tuple mode
	Tuple           []Validator
	AdditionalItems additionalItemsPolicy
	AdditionalValid Validator // used when AdditionalItems == additionalItemsValidate

	MinItems    *int
	MaxItems    *int
	UniqueItems bool
}

func (v *ArrayValidator) Children() []Validator {
	children := make([]Validator, 0, len(v.Tuple)+2)
	if v.Items != nil {
		children = append(children, v.Items)
	}
	children = append(children, v.Tuple...)
	if v.AdditionalValid != nil {
		children = append(children, v.AdditionalValid)
	}
	return children
}

// arrayState is the per-invocation context kept in the ValidationState's
// context slot for the duration of one ArrStart..ArrEnd run.
type arrayState struct {
	index       int
	elemStarted bool
	elem        *combinatorBranch // substate validating the current element
	bt          boundaryTracker
	canon       *canonBuilder // non-nil only when UniqueItems is set
	seen        map[string]struct{}
	duplicate   bool
}

func (v *ArrayValidator) Check(ev Event, st *ValidationState) bool {
	as, _ := st.TopContext().(*arrayState)
	if as == nil {
		if ev.Kind != EventArrStart {
			st.Pop()
			st.Fail(ErrNotArray, "expected array, got "+ev.JSONType())
			return false
		}
		as = &arrayState{}
		if v.UniqueItems {
			as.seen = make(map[string]struct{})
		}
		st.SetTopContext(as)
		return true
	}

	if !as.elemStarted {
		if ev.Kind == EventArrEnd {
			st.Pop()
			return v.finish(as, st)
		}
		as.elemStarted = true
		as.bt = boundaryTracker{}
		if v.UniqueItems {
			as.canon = newCanonBuilder()
		}
		as.elem = newCombinatorBranch(v.childFor(as.index), st.resolver, st.notify, st.patchDefault)
		as.elem.st.path = append([]string(nil), st.path...)
		as.index++
	}

	atBoundary := as.bt.advance(ev)
	if v.UniqueItems && as.canon.Feed(ev) {
		digest := as.canon.String()
		if _, dup := as.seen[digest]; dup {
			as.duplicate = true
		} else {
			as.seen[digest] = struct{}{}
		}
	}

	as.elem.feed(ev)
	if as.elem.dead {
		st.Pop()
		return false
	}
	if atBoundary {
		as.elemStarted = false
	}
	return true
}

func (v *ArrayValidator) childFor(index int) Validator {
	if v.Items != nil {
		return v.Items
	}
	if index < len(v.Tuple) {
		return v.Tuple[index]
	}
	switch v.AdditionalItems {
	case additionalItemsForbid:
		return forbidAdditionalItem
	case additionalItemsValidate:
		return v.AdditionalValid
	default:
		return acceptAll
	}
}

// additionalItemForbidden is pushed for tuple-mode elements past the
// declared positions when additionalItems is false; it rejects the
// element's first event outright.
type additionalItemForbidden struct{}

var forbidAdditionalItem = &additionalItemForbidden{}

func (*additionalItemForbidden) Check(ev Event, st *ValidationState) bool {
	st.Pop()
	st.Fail(ErrArrayTooLong, "additional items are not allowed")
	return false
}

func (v *ArrayValidator) finish(as *arrayState, st *ValidationState) bool {
	if v.MinItems != nil && as.index < *v.MinItems {
		st.Fail(ErrArrayTooShort, "array has fewer than the minimum number of items")
		return false
	}
	if v.MaxItems != nil && as.index > *v.MaxItems {
		st.Fail(ErrArrayTooLong, "array has more than the maximum number of items")
		return false
	}
	if v.UniqueItems && as.duplicate {
		st.Fail(ErrArrayNotUnique, "array items must be unique")
		return false
	}
	return true
}
