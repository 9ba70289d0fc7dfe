package value

import (
	"fmt"
	"hash/fnv"
	"math"
)

type ValueType string

const (
	INTEGER_VAL   = "INTEGER"
	FLOAT_VAL     = "FLOAT"
	BOOLEAN_VAL   = "BOOLEAN"
	ATOM_VAL      = "ATOM"
	STRING_VAL    = "STRING"
	BITSTRING_VAL = "BITSTRING"
	LIST_VAL      = "LIST"
	TUPLE_VAL     = "TUPLE"
	MAP_VAL       = "MAP"
	NIL_VAL       = "NIL"
)

// RecordTagKey is the reserved discriminator key of record-shaped maps.
const RecordTagKey = "__record__"

// Value is the interface for all runtime values the engine draws,
// validates and compares.
type Value interface {
	Type() ValueType
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return INTEGER_VAL }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) Hash() uint32    { return uint32(i.Value ^ (i.Value >> 32)) }

// Float
type Float struct {
	Value float64
}

func (f *Float) Type() ValueType { return FLOAT_VAL }
func (f *Float) Inspect() string { return fmt.Sprintf("%g", f.Value) }
func (f *Float) Hash() uint32 {
	bits := math.Float64bits(f.Value)
	return uint32(bits ^ (bits >> 32))
}

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VAL }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

// Atom is an interned symbolic constant.
type Atom struct {
	Name string
}

func (a *Atom) Type() ValueType { return ATOM_VAL }
func (a *Atom) Inspect() string { return ":" + a.Name }
func (a *Atom) Hash() uint32    { return hashString(a.Name) }

// String is a byte string. Both the binary and the string descriptor
// kinds draw and validate this shape.
type String struct {
	Value string
}

func (s *String) Type() ValueType { return STRING_VAL }
func (s *String) Inspect() string { return fmt.Sprintf("%q", s.Value) }
func (s *String) Hash() uint32    { return hashString(s.Value) }

// Bitstring is a byte sequence with a bit length that need not be a
// multiple of 8. Trailing bits of the last byte beyond Bits are zero.
type Bitstring struct {
	Data []byte
	Bits int
}

func (b *Bitstring) Type() ValueType { return BITSTRING_VAL }
func (b *Bitstring) Inspect() string { return fmt.Sprintf("<<%d bits>>", b.Bits) }
func (b *Bitstring) Hash() uint32 {
	return hashString(string(b.Data)) ^ uint32(b.Bits)
}

// Nil
type Nil struct{}

func (n *Nil) Type() ValueType { return NIL_VAL }
func (n *Nil) Inspect() string { return "nil" }
func (n *Nil) Hash() uint32    { return 0 }
