// Package gen synthesizes value generators from type descriptors.
//
// A generator is an infinite, restartable lazy stream: every call to
// Synthesizer.Generator builds a fresh independent stream for the same
// descriptor. Unsupported descriptor shapes and unresolvable remote
// references never fail hard; they degrade to the unconstrained "any"
// generator and emit a diagnostic.
package gen

import (
	"math/rand"

	"github.com/funvibe/typetrial/internal/descriptor"
	"github.com/funvibe/typetrial/internal/value"
)

const (
	// MaxDepth bounds nesting of collection draws for the unconstrained
	// generators, so "any" never recurses unboundedly.
	MaxDepth = 3

	// MaxLen bounds the length of drawn lists.
	MaxLen = 7
)

// DiagFunc receives non-fatal diagnostics (unsupported descriptors,
// unresolved or cyclic remote references).
type DiagFunc func(format string, args ...any)

// Options configure a Synthesizer.
type Options struct {
	// Resolver resolves remote references. Nil means nothing resolves.
	Resolver descriptor.Resolver

	// Seed fixes the stream seed for reproducible draws. Zero means a
	// fresh random seed per stream.
	Seed int64

	// Diag receives diagnostic warnings. Nil discards them.
	Diag DiagFunc
}

// Synthesizer builds valid and invalid generators from descriptors.
type Synthesizer struct {
	resolver descriptor.Resolver
	seed     int64
	diag     DiagFunc
}

func New(opts Options) *Synthesizer {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = descriptor.NopResolver
	}
	diag := opts.Diag
	if diag == nil {
		diag = func(string, ...any) {}
	}
	return &Synthesizer{resolver: resolver, seed: opts.Seed, diag: diag}
}

// Stream is an infinite lazy sequence of values.
type Stream struct {
	draw func() value.Value
}

// Draw produces the next sample.
func (s *Stream) Draw() value.Value { return s.draw() }

// Take drains n samples, mainly for tests.
func (s *Stream) Take(n int) []value.Value {
	out := make([]value.Value, n)
	for i := range out {
		out[i] = s.draw()
	}
	return out
}

func (s *Synthesizer) newSource() RandomSource {
	seed := s.seed
	if seed == 0 {
		seed = rand.Int63()
	}
	return NewRandSource(seed)
}

// Generator returns a fresh stream of values conforming to d.
func (s *Synthesizer) Generator(d descriptor.Descriptor) *Stream {
	src := s.newSource()
	return &Stream{draw: func() value.Value {
		return s.drawValue(d, src, map[string]bool{})
	}}
}

// TupleGenerator returns a fresh stream of argument tuples drawn from a
// parameter descriptor list. Each draw is one complete argument vector.
func (s *Synthesizer) TupleGenerator(params []descriptor.Descriptor) *Stream {
	src := s.newSource()
	return &Stream{draw: func() value.Value {
		elements := make([]value.Value, len(params))
		for i, p := range params {
			elements[i] = s.drawValue(p, src, map[string]bool{})
		}
		return &value.Tuple{Elements: elements}
	}}
}

// drawValue produces one sample for d. visited tracks remote-reference
// owners already being resolved on this call chain, breaking cycles.
func (s *Synthesizer) drawValue(d descriptor.Descriptor, src RandomSource, visited map[string]bool) value.Value {
	switch dv := d.(type) {
	case nil:
		return s.anyValue(src, 0)

	case descriptor.Primitive:
		return s.drawPrimitive(dv.Kind, src)

	case descriptor.BoundedInteger:
		lo, hi := dv.GenBounds()
		return &value.Integer{Value: intBetween(src, lo, hi)}

	case descriptor.Literal:
		return literalValue(dv)

	case descriptor.Sequence:
		n := src.Intn(MaxLen + 1)
		elements := make([]value.Value, n)
		for i := range elements {
			if dv.Elem == nil {
				elements[i] = s.anyValue(src, 1)
			} else {
				elements[i] = s.drawValue(dv.Elem, src, visited)
			}
		}
		return &value.List{Elements: elements}

	case descriptor.KeyedSequence:
		// Deliberately a one-element keyword list, not variable-length.
		pair := &value.Tuple{Elements: []value.Value{
			&value.Atom{Name: dv.Key},
			s.drawValue(dv.Value, src, visited),
		}}
		return &value.List{Elements: []value.Value{pair}}

	case descriptor.Tuple:
		elements := make([]value.Value, len(dv.Elements))
		for i, e := range dv.Elements {
			elements[i] = s.drawValue(e, src, visited)
		}
		return &value.Tuple{Elements: elements}

	case descriptor.Mapping:
		return s.drawFields(dv.Fields, "", src, visited)

	case descriptor.StructuredRecord:
		return s.drawFields(dv.Fields, dv.TypeName, src, visited)

	case descriptor.Union:
		if len(dv.Alternatives) == 0 {
			return s.anyValue(src, 0)
		}
		alt := dv.Alternatives[src.Intn(len(dv.Alternatives))]
		return s.drawValue(alt, src, visited)

	case descriptor.RemoteReference:
		if visited[dv.Owner] {
			s.diag("cyclic reference to %s, generating unconstrained value", dv.Owner)
			return s.anyValue(src, 0)
		}
		resolved, ok := s.resolver.Resolve(dv.Owner)
		if !ok {
			s.diag("cannot resolve reference to %s, generating unconstrained value", dv.Owner)
			return s.anyValue(src, 0)
		}
		switch resolved.(type) {
		case descriptor.StructuredRecord, descriptor.Mapping:
			next := copyVisited(visited)
			next[dv.Owner] = true
			return s.drawValue(resolved, src, next)
		}
		s.diag("unsupported resolution for %s (%s), generating unconstrained value", dv.Owner, resolved.String())
		return s.anyValue(src, 0)
	}

	s.diag("unsupported descriptor %s, generating unconstrained value", d.String())
	return s.anyValue(src, 0)
}

// drawFields assembles a map value from field descriptors. Optional
// fields are drawn too: valid data never omits them. A non-empty tag
// adds the fixed record discriminator.
func (s *Synthesizer) drawFields(fields []descriptor.Field, tag string, src RandomSource, visited map[string]bool) value.Value {
	entries := make([]value.MapEntry, 0, len(fields)+1)
	if tag != "" {
		entries = append(entries, value.MapEntry{
			Key:   &value.Atom{Name: value.RecordTagKey},
			Value: &value.Atom{Name: tag},
		})
	}
	for _, f := range fields {
		entries = append(entries, value.MapEntry{
			Key:   s.drawValue(f.Key, src, visited),
			Value: s.drawValue(f.Value, src, visited),
		})
	}
	return &value.Map{Entries: entries}
}

func (s *Synthesizer) drawPrimitive(kind descriptor.PrimitiveKind, src RandomSource) value.Value {
	switch kind {
	case descriptor.KindInteger:
		return &value.Integer{Value: intBetween(src, -1000, 1000)}
	case descriptor.KindFloat:
		return &value.Float{Value: (src.Float64() - 0.5) * 2000}
	case descriptor.KindBoolean:
		return &value.Boolean{Value: src.Intn(2) == 0}
	case descriptor.KindAtom:
		return &value.Atom{Name: randAtomName(src)}
	case descriptor.KindBinary:
		return &value.String{Value: string(randBytes(src))}
	case descriptor.KindString:
		return &value.String{Value: randPrintable(src)}
	case descriptor.KindBitstring:
		data := randBytes(src)
		bits := len(data) * 8
		if bits > 0 {
			bits -= src.Intn(8)
		}
		return &value.Bitstring{Data: data, Bits: bits}
	case descriptor.KindCharlist:
		n := src.Intn(MaxLen + 1)
		elements := make([]value.Value, n)
		for i := range elements {
			elements[i] = &value.Integer{Value: int64(32 + src.Intn(95))}
		}
		return &value.List{Elements: elements}
	case descriptor.KindNull:
		return &value.Nil{}
	case descriptor.KindAny, descriptor.KindTerm:
		return s.anyValue(src, 0)
	}
	s.diag("unsupported primitive kind %s, generating unconstrained value", kind)
	return s.anyValue(src, 0)
}

// anyValue draws an unconstrained value: mixed scalars plus, below the
// depth bound, occasional small collections.
func (s *Synthesizer) anyValue(src RandomSource, depth int) value.Value {
	limit := 6
	if depth < MaxDepth {
		limit = 8
	}
	switch src.Intn(limit) {
	case 0:
		return &value.Integer{Value: intBetween(src, -1000, 1000)}
	case 1:
		return &value.Float{Value: (src.Float64() - 0.5) * 2000}
	case 2:
		return &value.Boolean{Value: src.Intn(2) == 0}
	case 3:
		return &value.Atom{Name: randAtomName(src)}
	case 4:
		return &value.String{Value: randPrintable(src)}
	case 5:
		return &value.Nil{}
	case 6:
		n := src.Intn(4)
		elements := make([]value.Value, n)
		for i := range elements {
			elements[i] = s.anyValue(src, depth+1)
		}
		return &value.List{Elements: elements}
	default:
		n := src.Intn(3)
		entries := make([]value.MapEntry, n)
		for i := range entries {
			entries[i] = value.MapEntry{
				Key:   &value.Atom{Name: randAtomName(src)},
				Value: s.anyValue(src, depth+1),
			}
		}
		return &value.Map{Entries: entries}
	}
}

func literalValue(l descriptor.Literal) value.Value {
	switch v := l.Value.(type) {
	case string:
		return &value.Atom{Name: v}
	case int:
		return &value.Integer{Value: int64(v)}
	case int64:
		return &value.Integer{Value: v}
	}
	return &value.Nil{}
}

func copyVisited(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
