// Package jsonschema implements an event-driven Draft-4-style JSON Schema
// validator. A schema document is compiled once into a tree of validator
// nodes; a JSON input is then validated by feeding it, as a stream of
// lexical events, through a pushdown automaton built from that tree.
//
// The package treats both the schema document's own JSON and the JSON being
// validated the same way: as a sequence of Events pushed in by a
// TokenSource. Validate ships a default TokenSource built on goccy/go-json's
// streaming decoder, but any embedder-supplied tokenizer implementing
// TokenSource works.
package jsonschema
