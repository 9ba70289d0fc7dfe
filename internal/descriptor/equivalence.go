package descriptor

// Equivalent reports structural equality of two descriptors. Variant tag
// and all substructure must match pairwise; lists of sub-descriptors must
// have equal length. Literal and bound payloads compare by value.
//
// Used as a precondition gate for cross-implementation trials: both
// signatures must be pairwise equivalent before any draws happen.
func Equivalent(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av.Kind == bv.Kind

	case BoundedInteger:
		bv, ok := b.(BoundedInteger)
		if !ok {
			return false
		}
		return boundEqual(av.Lower, bv.Lower) && boundEqual(av.Upper, bv.Upper)

	case Literal:
		bv, ok := b.(Literal)
		return ok && literalEqual(av.Value, bv.Value)

	case Sequence:
		bv, ok := b.(Sequence)
		return ok && Equivalent(av.Elem, bv.Elem)

	case KeyedSequence:
		bv, ok := b.(KeyedSequence)
		return ok && av.Key == bv.Key && Equivalent(av.Value, bv.Value)

	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equivalent(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true

	case Mapping:
		bv, ok := b.(Mapping)
		return ok && fieldsEqual(av.Fields, bv.Fields)

	case StructuredRecord:
		bv, ok := b.(StructuredRecord)
		return ok && av.TypeName == bv.TypeName && fieldsEqual(av.Fields, bv.Fields)

	case Union:
		bv, ok := b.(Union)
		if !ok || len(av.Alternatives) != len(bv.Alternatives) {
			return false
		}
		for i := range av.Alternatives {
			if !Equivalent(av.Alternatives[i], bv.Alternatives[i]) {
				return false
			}
		}
		return true

	case RemoteReference:
		bv, ok := b.(RemoteReference)
		return ok && av.Owner == bv.Owner
	}

	return false
}

// EquivalentSignatures gates a whole signature: parameter lists pairwise
// plus the return descriptor.
func EquivalentSignatures(paramsA []Descriptor, retA Descriptor, paramsB []Descriptor, retB Descriptor) bool {
	if len(paramsA) != len(paramsB) {
		return false
	}
	for i := range paramsA {
		if !Equivalent(paramsA[i], paramsB[i]) {
			return false
		}
	}
	return Equivalent(retA, retB)
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Required != b[i].Required {
			return false
		}
		if !Equivalent(a[i].Key, b[i].Key) || !Equivalent(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

func boundEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return CoerceBound(a, -1) == CoerceBound(b, -1)
}

func literalEqual(a, b any) bool {
	switch av := a.(type) {
	case int:
		return literalEqual(int64(av), b)
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		if bv, ok := b.(int); ok {
			return av == int64(bv)
		}
		return false
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	}
	return a == b
}
