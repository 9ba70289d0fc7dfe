package value

// TypeName infers a human-readable type name from an arbitrary runtime
// value. Used in failure messages only; never in validation decisions.
func TypeName(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case *Integer:
		return "integer"
	case *Float:
		return "float"
	case *Boolean:
		return "boolean"
	case *Atom:
		return "atom"
	case *String:
		return "binary"
	case *Bitstring:
		return "bitstring"
	case *Nil:
		return "nil"
	case *List:
		if isCharlist(val) {
			return "charlist"
		}
		if isKeywordList(val) {
			return "keyword list"
		}
		return "list"
	case *Tuple:
		return "tuple"
	case *Map:
		if tag, ok := val.RecordTag(); ok {
			return "record " + tag
		}
		return "map"
	}
	return "unknown"
}

// isCharlist reports whether every element is an integer codepoint.
// An empty list is ambiguous; call it a plain list.
func isCharlist(l *List) bool {
	if len(l.Elements) == 0 {
		return false
	}
	for _, e := range l.Elements {
		i, ok := e.(*Integer)
		if !ok || i.Value < 0 || i.Value > 0x10FFFF {
			return false
		}
	}
	return true
}

func isKeywordList(l *List) bool {
	if len(l.Elements) == 0 {
		return false
	}
	for _, e := range l.Elements {
		pair, ok := e.(*Tuple)
		if !ok || len(pair.Elements) != 2 {
			return false
		}
		if _, ok := pair.Elements[0].(*Atom); !ok {
			return false
		}
	}
	return true
}
