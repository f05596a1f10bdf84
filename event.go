package jsonschema

// EventKind tags the lexical token carried by an Event.
type EventKind uint8

const (
	EventNull EventKind = iota
	EventBool
	EventNumber
	EventString
	EventObjStart
	EventObjKey
	EventObjEnd
	EventArrStart
	EventArrEnd
)

func (k EventKind) String() string {
	switch k {
	case EventNull:
		return "null"
	case EventBool:
		return "bool"
	case EventNumber:
		return "number"
	case EventString:
		return "string"
	case EventObjStart:
		return "obj_start"
	case EventObjKey:
		return "obj_key"
	case EventObjEnd:
		return "obj_end"
	case EventArrStart:
		return "arr_start"
	case EventArrEnd:
		return "arr_end"
	default:
		return "unknown"
	}
}

// Event is one lexical token delivered by a TokenSource. Text and Bool are
// only meaningful for the EventKind that carries them; Text is a borrowed
// slice and must not be retained past the call that produced it.
type Event struct {
	Kind   EventKind
	Bool   bool
	Text   []byte
	Offset int64 // byte offset of the token in the source, for error reporting
}

// JSONType returns the JSON Schema primitive type name this event's value
// would have ("integer" is never returned here; it is a refinement of
// "number" that the Number validator checks separately).
func (e Event) JSONType() string {
	switch e.Kind {
	case EventNull:
		return "null"
	case EventBool:
		return "boolean"
	case EventNumber:
		return "number"
	case EventString:
		return "string"
	case EventObjStart:
		return "object"
	case EventArrStart:
		return "array"
	default:
		return "unknown"
	}
}

// TokenSource drives a validation or a schema build by emitting Events one
// at a time into Sink. It is the embedder-supplied (or default) streaming
// JSON tokenizer the spec treats as an external collaborator.
type TokenSource interface {
	// Run feeds events to sink until the source is exhausted or sink
	// returns false (abort). It returns the byte offset at which parsing
	// stopped and any syntax error encountered.
	Run(sink Sink) (offset int64, err error)
}

// Sink receives Events from a TokenSource. Handle returns false to abort
// further feeding (e.g. because the validator tree rejected the event).
type Sink interface {
	Handle(ev Event) bool
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ev Event) bool

func (f SinkFunc) Handle(ev Event) bool { return f(ev) }
