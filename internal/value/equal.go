package value

import "bytes"

// Equal performs a deep equality check between two values.
func Equal(a, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}

	switch aVal := a.(type) {
	case *Integer:
		if bVal, ok := b.(*Integer); ok {
			return aVal.Value == bVal.Value
		}
	case *Float:
		if bVal, ok := b.(*Float); ok {
			return aVal.Value == bVal.Value
		}
	case *Boolean:
		if bVal, ok := b.(*Boolean); ok {
			return aVal.Value == bVal.Value
		}
	case *Atom:
		if bVal, ok := b.(*Atom); ok {
			return aVal.Name == bVal.Name
		}
	case *String:
		if bVal, ok := b.(*String); ok {
			return aVal.Value == bVal.Value
		}
	case *Bitstring:
		if bVal, ok := b.(*Bitstring); ok {
			return aVal.Bits == bVal.Bits && bytes.Equal(aVal.Data, bVal.Data)
		}
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *List:
		if bVal, ok := b.(*List); ok {
			if len(aVal.Elements) != len(bVal.Elements) {
				return false
			}
			for i := range aVal.Elements {
				if !Equal(aVal.Elements[i], bVal.Elements[i]) {
					return false
				}
			}
			return true
		}
	case *Tuple:
		if bVal, ok := b.(*Tuple); ok {
			if len(aVal.Elements) != len(bVal.Elements) {
				return false
			}
			for i := range aVal.Elements {
				if !Equal(aVal.Elements[i], bVal.Elements[i]) {
					return false
				}
			}
			return true
		}
	case *Map:
		if bVal, ok := b.(*Map); ok {
			if len(aVal.Entries) != len(bVal.Entries) {
				return false
			}
			// Map equality is order-independent.
			for _, e := range aVal.Entries {
				v2, ok := bVal.Get(e.Key)
				if !ok || !Equal(e.Value, v2) {
					return false
				}
			}
			return true
		}
	}

	return false
}
