package descriptor

import (
	"fmt"
	"sort"
	"strings"
)

// Descriptor is the interface for all type descriptors.
//
// A descriptor is immutable pure data: it is built once by a descriptor
// source and only traversed afterwards. Positional/source metadata never
// lives on descriptor nodes, so structural comparison is plain recursion.
type Descriptor interface {
	String() string
}

// PrimitiveKind names a scalar descriptor shape.
type PrimitiveKind string

const (
	KindInteger   PrimitiveKind = "integer"
	KindFloat     PrimitiveKind = "float"
	KindBoolean   PrimitiveKind = "boolean"
	KindAtom      PrimitiveKind = "atom"
	KindBinary    PrimitiveKind = "binary"
	KindBitstring PrimitiveKind = "bitstring"
	KindString    PrimitiveKind = "string"
	KindCharlist  PrimitiveKind = "charlist"
	KindAny       PrimitiveKind = "any"
	KindTerm      PrimitiveKind = "term"
	KindNull      PrimitiveKind = "null"
)

// Primitive is an unconstrained scalar of the given kind.
type Primitive struct {
	Kind PrimitiveKind
}

func (p Primitive) String() string { return string(p.Kind) }

// BoundedInteger is an integer with optional bounds. A nil bound is open;
// generation substitutes engine defaults for open ends (see GenBounds).
// Bounds may also arrive as unevaluated literal expressions from a
// descriptor source; CoerceBound extracts a number best-effort.
type BoundedInteger struct {
	Lower any // nil, int, int64, or Literal
	Upper any
}

func (b BoundedInteger) String() string {
	lo, hi := "", ""
	if b.Lower != nil {
		lo = fmt.Sprintf("%v", b.Lower)
	}
	if b.Upper != nil {
		hi = fmt.Sprintf("%v", b.Upper)
	}
	return fmt.Sprintf("integer(%s..%s)", lo, hi)
}

// CoerceBound extracts an integer out of a bound expression.
// Unresolvable expressions fall back to the given default.
func CoerceBound(bound any, fallback int64) int64 {
	switch v := bound.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case Literal:
		return CoerceBound(v.Value, fallback)
	default:
		return fallback
	}
}

// GenBounds resolves the bounds used for value generation. Open ends get
// the engine defaults: missing lower -1000, missing upper 1000, so the
// stock shapes come out as non-negative [0,1000], positive [1,1000] and
// negative [-1000,-1]. Unresolvable bound expressions degrade to [0,100].
func (b BoundedInteger) GenBounds() (int64, int64) {
	lo, hi := int64(-1000), int64(1000)
	if b.Lower != nil {
		lo = CoerceBound(b.Lower, 0)
	}
	if b.Upper != nil {
		hi = CoerceBound(b.Upper, 100)
	}
	if lo > hi {
		return lo, lo
	}
	return lo, hi
}

// NonNegInteger, PosInteger and NegInteger build the three stock bounded
// shapes the descriptor sources emit.
func NonNegInteger() BoundedInteger { return BoundedInteger{Lower: int64(0)} }
func PosInteger() BoundedInteger    { return BoundedInteger{Lower: int64(1)} }
func NegInteger() BoundedInteger    { return BoundedInteger{Upper: int64(-1)} }

// Range builds an explicit inclusive integer range.
func Range(lower, upper int64) BoundedInteger {
	return BoundedInteger{Lower: lower, Upper: upper}
}

// Literal is a specific atom or integer constant. The payload is int64
// for integers and string for atoms.
type Literal struct {
	Value any
}

func (l Literal) String() string {
	if s, ok := l.Value.(string); ok {
		return ":" + s
	}
	return fmt.Sprintf("%v", l.Value)
}

// Sequence is an ordinary list. A nil Elem means element-type-agnostic.
type Sequence struct {
	Elem Descriptor
}

func (s Sequence) String() string {
	if s.Elem == nil {
		return "list()"
	}
	return fmt.Sprintf("list(%s)", s.Elem.String())
}

// KeyedSequence is a keyword-style list: pairs tagged by a fixed atom key.
type KeyedSequence struct {
	Key   string
	Value Descriptor
}

func (k KeyedSequence) String() string {
	return fmt.Sprintf("keyword(%s: %s)", k.Key, k.Value.String())
}

// Tuple is a fixed-arity positional product.
type Tuple struct {
	Elements []Descriptor
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// Field is one key/value association of a Mapping or StructuredRecord.
type Field struct {
	Key      Descriptor
	Value    Descriptor
	Required bool
}

func (f Field) String() string {
	req := ""
	if f.Required {
		req = "!"
	}
	return fmt.Sprintf("%s%s => %s", f.Key.String(), req, f.Value.String())
}

// Mapping is an open key→value association. Field order is irrelevant;
// field keys are unique.
type Mapping struct {
	Fields []Field
}

func (m Mapping) String() string {
	parts := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		parts[i] = f.String()
	}
	sort.Strings(parts)
	return fmt.Sprintf("%%{%s}", strings.Join(parts, ", "))
}

// StructuredRecord is a named record: a discriminator tag plus a field
// map. The tag is fixed data, never drawn.
type StructuredRecord struct {
	TypeName string
	Fields   []Field
}

func (r StructuredRecord) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.String()
	}
	sort.Strings(parts)
	return fmt.Sprintf("%%%s{%s}", r.TypeName, strings.Join(parts, ", "))
}

// Union means the value must satisfy any one of the alternatives.
type Union struct {
	Alternatives []Descriptor
}

func (u Union) String() string {
	parts := make([]string, len(u.Alternatives))
	for i, a := range u.Alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

// RemoteReference is a forward reference to a descriptor defined
// elsewhere, resolved at interpretation time against a Resolver.
type RemoteReference struct {
	Owner string
}

func (r RemoteReference) String() string { return r.Owner + ".t()" }
