package value

import (
	"fmt"
	"sort"
)

// FromGo converts a native Go value into an engine value, so that
// implementations under test can be written against plain Go types.
// Maps become Map values, slices become Lists, scalars become
// Integer/Float/Boolean/String/Nil as appropriate.
func FromGo(data any) (Value, error) {
	switch v := data.(type) {
	case nil:
		return &Nil{}, nil
	case Value:
		return v, nil
	case bool:
		return &Boolean{Value: v}, nil
	case int:
		return &Integer{Value: int64(v)}, nil
	case int32:
		return &Integer{Value: int64(v)}, nil
	case int64:
		return &Integer{Value: v}, nil
	case uint32:
		return &Integer{Value: int64(v)}, nil
	case uint64:
		return &Integer{Value: int64(v)}, nil
	case float32:
		return &Float{Value: float64(v)}, nil
	case float64:
		return &Float{Value: v}, nil
	case string:
		return &String{Value: v}, nil
	case []byte:
		return &String{Value: string(v)}, nil
	case []any:
		elements := make([]Value, len(v))
		for i, item := range v {
			obj, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			elements[i] = obj
		}
		return &List{Elements: elements}, nil
	case map[string]any:
		// Sort keys for deterministic entry order.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]MapEntry, 0, len(v))
		for _, k := range keys {
			obj, err := FromGo(v[k])
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: &Atom{Name: k}, Value: obj})
		}
		return &Map{Entries: entries}, nil
	}
	return nil, fmt.Errorf("cannot convert %T to an engine value", data)
}

// ToGo converts an engine value back to a native Go value. Atom keys of
// maps become string keys; keys of other shapes make the map
// unconvertible and keep it as a Value.
func ToGo(v Value) any {
	switch val := v.(type) {
	case *Nil:
		return nil
	case *Boolean:
		return val.Value
	case *Integer:
		return val.Value
	case *Float:
		return val.Value
	case *Atom:
		return val.Name
	case *String:
		return val.Value
	case *Bitstring:
		return val.Data
	case *List:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = ToGo(e)
		}
		return out
	case *Tuple:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = ToGo(e)
		}
		return out
	case *Map:
		out := make(map[string]any, len(val.Entries))
		for _, e := range val.Entries {
			k, ok := e.Key.(*Atom)
			if !ok {
				return val
			}
			out[k.Name] = ToGo(e.Value)
		}
		return out
	}
	return v
}
