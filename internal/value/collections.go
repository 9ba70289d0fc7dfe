package value

import (
	"fmt"
	"strings"
)

// List is an ordinary sequence of values.
type List struct {
	Elements []Value
}

func (l *List) Type() ValueType { return LIST_VAL }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Hash() uint32 {
	var h uint32 = 2166136261
	for _, e := range l.Elements {
		h = h*16777619 ^ e.Hash()
	}
	return h
}

// Tuple is a fixed-arity positional product.
type Tuple struct {
	Elements []Value
}

func (t *Tuple) Type() ValueType { return TUPLE_VAL }
func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (t *Tuple) Hash() uint32 {
	var h uint32 = 131
	for _, e := range t.Elements {
		h = h*31 ^ e.Hash()
	}
	return h
}

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an association of keys to values. Entries are kept as a slice:
// maps the engine handles are small, and the required-field validator
// scans all entries anyway (predicate satisfaction, not key lookup).
type Map struct {
	Entries []MapEntry
}

func (m *Map) Type() ValueType { return MAP_VAL }
func (m *Map) Inspect() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = fmt.Sprintf("%s => %s", e.Key.Inspect(), e.Value.Inspect())
	}
	return "%{" + strings.Join(parts, ", ") + "}"
}
func (m *Map) Hash() uint32 {
	// Order-independent: xor of entry hashes.
	var h uint32
	for _, e := range m.Entries {
		h ^= e.Key.Hash()*16777619 ^ e.Value.Hash()
	}
	return h
}

// Get returns the value stored under a key equal to k, scanning entries.
func (m *Map) Get(k Value) (Value, bool) {
	for _, e := range m.Entries {
		if Equal(e.Key, k) {
			return e.Value, true
		}
	}
	return nil, false
}

// RecordTag returns the discriminator of a record-shaped map, if any.
func (m *Map) RecordTag() (string, bool) {
	v, ok := m.Get(&Atom{Name: RecordTagKey})
	if !ok {
		return "", false
	}
	tag, ok := v.(*Atom)
	if !ok {
		return "", false
	}
	return tag.Name, true
}
