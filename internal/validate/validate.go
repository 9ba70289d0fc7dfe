// Package validate synthesizes conformance predicates from type
// descriptors, mirroring the generator's case structure variant by
// variant. Shapes the engine cannot interpret validate permissively
// (always true) rather than rejecting, so unfamiliar types never block
// test construction.
package validate

import (
	"github.com/funvibe/typetrial/internal/descriptor"
	"github.com/funvibe/typetrial/internal/value"
)

// DiagFunc receives non-fatal diagnostics.
type DiagFunc func(format string, args ...any)

// Options configure a Synthesizer.
type Options struct {
	Resolver descriptor.Resolver
	Diag     DiagFunc
}

// Synthesizer builds validators from descriptors.
type Synthesizer struct {
	resolver descriptor.Resolver
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
	return &Synthesizer{resolver: resolver, diag: diag}
}

// Predicate tests whether a value conforms to a descriptor.
type Predicate func(v value.Value) bool

// Validator returns the conformance predicate for d.
func (s *Synthesizer) Validator(d descriptor.Descriptor) Predicate {
	return func(v value.Value) bool {
		return s.valid(d, v, map[string]bool{})
	}
}

// ValidTuple checks an argument tuple against a parameter descriptor
// list: exact arity, each position against its descriptor.
func (s *Synthesizer) ValidTuple(params []descriptor.Descriptor, v value.Value) bool {
	tup, ok := v.(*value.Tuple)
	if !ok || len(tup.Elements) != len(params) {
		return false
	}
	for i, p := range params {
		if !s.valid(p, tup.Elements[i], map[string]bool{}) {
			return false
		}
	}
	return true
}

func (s *Synthesizer) valid(d descriptor.Descriptor, v value.Value, visited map[string]bool) bool {
	switch dv := d.(type) {
	case nil:
		return true

	case descriptor.Primitive:
		return validPrimitive(dv.Kind, v)

	case descriptor.BoundedInteger:
		i, ok := v.(*value.Integer)
		if !ok {
			return false
		}
		// Only explicit bounds constrain validation; generation defaults
		// for open ends are not enforced here.
		if dv.Lower != nil && i.Value < descriptor.CoerceBound(dv.Lower, 0) {
			return false
		}
		if dv.Upper != nil && i.Value > descriptor.CoerceBound(dv.Upper, 100) {
			return false
		}
		return true

	case descriptor.Literal:
		return value.Equal(v, literalValue(dv))

	case descriptor.Sequence:
		l, ok := v.(*value.List)
		if !ok {
			return false
		}
		if dv.Elem == nil {
			return true
		}
		for _, e := range l.Elements {
			if !s.valid(dv.Elem, e, visited) {
				return false
			}
		}
		return true

	case descriptor.KeyedSequence:
		l, ok := v.(*value.List)
		if !ok {
			return false
		}
		for _, e := range l.Elements {
			pair, ok := e.(*value.Tuple)
			if !ok || len(pair.Elements) != 2 {
				return false
			}
			key, ok := pair.Elements[0].(*value.Atom)
			if !ok || key.Name != dv.Key {
				return false
			}
			if !s.valid(dv.Value, pair.Elements[1], visited) {
				return false
			}
		}
		return true

	case descriptor.Tuple:
		tup, ok := v.(*value.Tuple)
		if !ok || len(tup.Elements) != len(dv.Elements) {
			return false
		}
		for i, e := range dv.Elements {
			if !s.valid(e, tup.Elements[i], visited) {
				return false
			}
		}
		return true

	case descriptor.Mapping:
		m, ok := v.(*value.Map)
		if !ok {
			return false
		}
		return s.validFields(dv.Fields, m, visited)

	case descriptor.StructuredRecord:
		m, ok := v.(*value.Map)
		if !ok {
			return false
		}
		tag, ok := m.RecordTag()
		if !ok || tag != dv.TypeName {
			return false
		}
		return s.validFields(dv.Fields, m, visited)

	case descriptor.Union:
		for _, alt := range dv.Alternatives {
			if s.valid(alt, v, visited) {
				return true
			}
		}
		return false

	case descriptor.RemoteReference:
		if visited[dv.Owner] {
			return true
		}
		resolved, ok := s.resolver.Resolve(dv.Owner)
		if !ok {
			// Unresolved references validate permissively, avoiding
			// false negatives on types the engine cannot introspect.
			return true
		}
		switch resolved.(type) {
		case descriptor.StructuredRecord, descriptor.Mapping:
			next := copyVisited(visited)
			next[dv.Owner] = true
			return s.valid(resolved, v, next)
		}
		s.diag("unsupported resolution for %s (%s), validating permissively", dv.Owner, resolved.String())
		return true
	}

	s.diag("unsupported descriptor %s, validating permissively", d.String())
	return true
}

// validFields checks every required field by predicate satisfaction over
// all entries: some entry must satisfy both the key and the value
// predicate. This is deliberately looser than lookup-by-key and is
// preserved as documented behavior (see the known-loose test).
func (s *Synthesizer) validFields(fields []descriptor.Field, m *value.Map, visited map[string]bool) bool {
	for _, f := range fields {
		if !f.Required {
			continue
		}
		found := false
		for _, e := range m.Entries {
			if s.valid(f.Key, e.Key, visited) && s.valid(f.Value, e.Value, visited) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func validPrimitive(kind descriptor.PrimitiveKind, v value.Value) bool {
	switch kind {
	case descriptor.KindInteger:
		_, ok := v.(*value.Integer)
		return ok
	case descriptor.KindFloat:
		_, ok := v.(*value.Float)
		return ok
	case descriptor.KindBoolean:
		_, ok := v.(*value.Boolean)
		return ok
	case descriptor.KindAtom:
		_, ok := v.(*value.Atom)
		return ok
	case descriptor.KindBinary, descriptor.KindString:
		_, ok := v.(*value.String)
		return ok
	case descriptor.KindBitstring:
		switch v.(type) {
		case *value.Bitstring, *value.String:
			// A binary is a bitstring whose length is a whole number of bytes.
			return true
		}
		return false
	case descriptor.KindCharlist:
		l, ok := v.(*value.List)
		if !ok {
			return false
		}
		for _, e := range l.Elements {
			i, ok := e.(*value.Integer)
			if !ok || i.Value < 0 || i.Value > 0x10FFFF {
				return false
			}
		}
		return true
	case descriptor.KindNull:
		_, ok := v.(*value.Nil)
		return ok
	case descriptor.KindAny, descriptor.KindTerm:
		return true
	}
	return true
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
