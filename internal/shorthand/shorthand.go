// Package shorthand decomposes shorthand values into longhands and
// rebuilds the shortest equivalent shorthand text from longhands.
//
// Decomposition runs one setter per assignment. A setter walks the token
// run with a cursor, buffers every longhand it recognizes and writes them
// to the Store only when the whole run matched. Reconstruction runs one
// builder per shorthand group; a builder either appends text that parses
// back to the same longhands or declines, in which case the longhands are
// serialized one by one.
package shorthand

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssom/internal/value"
)

// Result is the outcome of a setter or builder run.
type Result int

// Setter and builder outcomes
const (
	OK Result = iota
	// VendorEscape means the value uses syntax kept verbatim: a vendor
	// prefixed function or a variable reference.
	VendorEscape
	// SyntaxError means nothing was written.
	SyntaxError
	// Decline means the builder could not produce lossless text.
	Decline
)

func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case VendorEscape:
		return "vendor-escape"
	case SyntaxError:
		return "syntax-error"
	case Decline:
		return "decline"
	}
	return fmt.Sprintf("result(%d)", int(r))
}

// Options tunes decomposition.
type Options struct {
	// SequenceShorthands enables cue, pause and rest, which no browser
	// implements.
	SequenceShorthands bool
}

// Store is the longhand property store a setter writes to and a builder
// reads from.
type Store interface {
	Set(name string, v value.Value, important bool)
	Value(name string) (value.Value, bool)
	IsImportant(name string) bool
	IsDeclared(name string) bool
}

// ProblemKind classifies a reported problem.
type ProblemKind int

// Problem kinds
const (
	UnknownIdentifier ProblemKind = iota
	WrongValueCount
	MalformedValue
	UnassignedValue
)

func (k ProblemKind) String() string {
	switch k {
	case UnknownIdentifier:
		return "unknown identifier"
	case WrongValueCount:
		return "wrong value count"
	case MalformedValue:
		return "malformed value"
	case UnassignedValue:
		return "unassigned value"
	}
	return "problem"
}

// Problem is one decomposition failure.
type Problem struct {
	Kind     ProblemKind
	Property string
	// Value is the full shorthand text as written.
	Value   string
	Message string
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %s: %s", p.Property, p.Kind, p.Message)
}

// Sink receives problems found while decomposing.
type Sink interface {
	Report(p Problem)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(p Problem)

// Report calls f(p).
func (f SinkFunc) Report(p Problem) {
	f(p)
}

type discard struct{}

func (discard) Report(Problem) {}

// MapStore is a Store backed by a map. Builders decompose candidate text
// into one to check it.
type MapStore struct {
	values    map[string]value.Value
	important map[string]bool
	order     []string
}

// NewMapStore returns an empty store.
func NewMapStore() *MapStore {
	return &MapStore{values: map[string]value.Value{}, important: map[string]bool{}}
}

// Set stores v under name.
func (m *MapStore) Set(name string, v value.Value, important bool) {
	name = strings.ToLower(name)
	if _, ok := m.values[name]; !ok {
		m.order = append(m.order, name)
	}
	m.values[name] = v
	m.important[name] = important
}

// Value returns the value of name.
func (m *MapStore) Value(name string) (value.Value, bool) {
	v, ok := m.values[strings.ToLower(name)]
	return v, ok
}

// IsImportant reports the priority of name.
func (m *MapStore) IsImportant(name string) bool {
	return m.important[strings.ToLower(name)]
}

// IsDeclared reports whether name was set.
func (m *MapStore) IsDeclared(name string) bool {
	_, ok := m.values[strings.ToLower(name)]
	return ok
}

// Order returns the names in first-set order.
func (m *MapStore) Order() []string {
	return m.order
}
