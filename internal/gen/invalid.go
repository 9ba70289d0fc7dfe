package gen

import (
	"github.com/funvibe/typetrial/internal/descriptor"
	"github.com/funvibe/typetrial/internal/value"
)

// InvalidGenerator returns a fresh stream of values expected to fail the
// validator for d. It is a coarse adversarial sampler: draws come from
// entirely different shapes, not structurally-similar-but-wrong values.
func (s *Synthesizer) InvalidGenerator(d descriptor.Descriptor) *Stream {
	src := s.newSource()
	return &Stream{draw: func() value.Value {
		return s.drawInvalid(d, src)
	}}
}

// InvalidTupleGenerator returns a stream of argument tuples in which
// every position carries an invalid value for its parameter descriptor.
func (s *Synthesizer) InvalidTupleGenerator(params []descriptor.Descriptor) *Stream {
	src := s.newSource()
	return &Stream{draw: func() value.Value {
		elements := make([]value.Value, len(params))
		for i, p := range params {
			elements[i] = s.drawInvalid(p, src)
		}
		return &value.Tuple{Elements: elements}
	}}
}

// Draw functions for the shape pools.

func drawInt(src RandomSource) value.Value {
	return &value.Integer{Value: intBetween(src, -1000, 1000)}
}

func drawFloat(src RandomSource) value.Value {
	return &value.Float{Value: (src.Float64() - 0.5) * 2000}
}

func drawAtom(src RandomSource) value.Value {
	return &value.Atom{Name: randAtomName(src)}
}

func drawBinary(src RandomSource) value.Value {
	return &value.String{Value: randPrintable(src)}
}

func drawScalarList(src RandomSource) value.Value {
	n := src.Intn(4)
	elements := make([]value.Value, n)
	for i := range elements {
		elements[i] = drawAtom(src)
	}
	return &value.List{Elements: elements}
}

func drawScalarMap(src RandomSource) value.Value {
	n := src.Intn(3)
	entries := make([]value.MapEntry, n)
	for i := range entries {
		entries[i] = value.MapEntry{Key: drawAtom(src), Value: drawInt(src)}
	}
	return &value.Map{Entries: entries}
}

func drawScalarTuple(src RandomSource) value.Value {
	return &value.Tuple{Elements: []value.Value{drawAtom(src), drawInt(src)}}
}

type pool []func(RandomSource) value.Value

func (p pool) draw(src RandomSource) value.Value {
	return p[src.Intn(len(p))](src)
}

var (
	genericPool = pool{drawInt, drawFloat, drawAtom, drawBinary, drawScalarList, drawScalarMap}
	scalarPool  = pool{drawInt, drawFloat, drawAtom, drawBinary}
)

func (s *Synthesizer) drawInvalid(d descriptor.Descriptor, src RandomSource) value.Value {
	switch dv := d.(type) {
	case nil:
		return genericPool.draw(src)

	case descriptor.Primitive:
		return invalidPrimitive(dv.Kind, src)

	case descriptor.BoundedInteger:
		return invalidBounded(dv, src)

	case descriptor.Literal:
		// Broad pool, filtered so a draw never equals the literal.
		want := literalValue(dv)
		for {
			got := genericPool.draw(src)
			if !value.Equal(got, want) {
				return got
			}
		}

	case descriptor.Sequence, descriptor.KeyedSequence:
		return pool{drawInt, drawFloat, drawAtom, drawBinary, drawScalarMap, drawScalarTuple}.draw(src)

	case descriptor.Tuple:
		return pool{drawInt, drawFloat, drawAtom, drawBinary, drawScalarList, drawScalarMap}.draw(src)

	case descriptor.Mapping, descriptor.StructuredRecord:
		return pool{drawInt, drawFloat, drawAtom, drawBinary, drawScalarList, drawScalarTuple}.draw(src)

	case descriptor.RemoteReference:
		// Never synthesizes a wrong-shaped record, only non-record values.
		return pool{drawInt, drawFloat, drawAtom, drawBinary, drawScalarList, drawScalarTuple}.draw(src)

	case descriptor.Union:
		return genericPool.draw(src)
	}

	return genericPool.draw(src)
}

func invalidPrimitive(kind descriptor.PrimitiveKind, src RandomSource) value.Value {
	switch kind {
	case descriptor.KindInteger:
		return pool{drawFloat, drawBinary, drawAtom, drawScalarList, drawScalarMap}.draw(src)
	case descriptor.KindFloat:
		return pool{drawInt, drawBinary, drawAtom, drawScalarList}.draw(src)
	case descriptor.KindBoolean:
		return pool{drawInt, drawFloat, drawBinary, drawScalarList}.draw(src)
	case descriptor.KindAtom:
		return pool{drawInt, drawFloat, drawBinary, drawScalarMap}.draw(src)
	case descriptor.KindBinary, descriptor.KindString:
		return pool{drawInt, drawFloat, drawAtom, drawScalarList, drawScalarTuple}.draw(src)
	case descriptor.KindBitstring:
		return pool{drawInt, drawFloat, drawAtom, drawScalarList}.draw(src)
	case descriptor.KindCharlist:
		return pool{drawInt, drawFloat, drawAtom, drawScalarMap}.draw(src)
	case descriptor.KindNull:
		return pool{drawInt, drawFloat, drawAtom, drawBinary, drawScalarList}.draw(src)
	}
	// any/term validate permissively; the generic pool may coincide.
	return genericPool.draw(src)
}

// invalidBounded draws out-of-range integers plus foreign scalar shapes.
// The out-of-range side mirrors whichever bounds are explicit: a lower
// bound of 0 yields negatives in [-1000,-1], and so on.
func invalidBounded(d descriptor.BoundedInteger, src RandomSource) value.Value {
	outside := make(pool, 0, 2)
	if d.Lower != nil {
		lo := descriptor.CoerceBound(d.Lower, 0)
		outside = append(outside, func(src RandomSource) value.Value {
			return &value.Integer{Value: intBetween(src, lo-1000, lo-1)}
		})
	}
	if d.Upper != nil {
		hi := descriptor.CoerceBound(d.Upper, 100)
		outside = append(outside, func(src RandomSource) value.Value {
			return &value.Integer{Value: intBetween(src, hi+1, hi+1000)}
		})
	}
	p := pool{drawFloat, drawBinary, drawAtom}
	p = append(p, outside...)
	return p.draw(src)
}
