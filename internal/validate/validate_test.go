package validate

import (
	"testing"

	"github.com/funvibe/typetrial/internal/descriptor"
	"github.com/funvibe/typetrial/internal/value"
)

func newValidator(t *testing.T, d descriptor.Descriptor) Predicate {
	t.Helper()
	return New(Options{}).Validator(d)
}

func TestTupleValidation(t *testing.T) {
	d := descriptor.Tuple{Elements: []descriptor.Descriptor{
		descriptor.Primitive{Kind: descriptor.KindInteger},
		descriptor.Primitive{Kind: descriptor.KindString},
	}}
	valid := newValidator(t, d)

	five := &value.Integer{Value: 5}
	x := &value.String{Value: "x"}

	tests := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"exact shape", &value.Tuple{Elements: []value.Value{five, x}}, true},
		{"arity mismatch", &value.Tuple{Elements: []value.Value{five, x, &value.String{Value: "y"}}}, false},
		{"position mismatch", &value.Tuple{Elements: []value.Value{x, five}}, false},
		{"not a tuple", &value.List{Elements: []value.Value{five, x}}, false},
	}

	for _, tt := range tests {
		if got := valid(tt.v); got != tt.want {
			t.Errorf("%s: valid(%s) = %t, want %t", tt.name, tt.v.Inspect(), got, tt.want)
		}
	}
}

func TestBoundedIntegerValidation(t *testing.T) {
	valid := newValidator(t, descriptor.NonNegInteger())

	if valid(&value.Integer{Value: -1}) {
		t.Errorf("-1 must not validate as non-negative")
	}
	if !valid(&value.Integer{Value: 0}) {
		t.Errorf("0 must validate as non-negative")
	}
	// The upper bound is a generation default, not a validation rule.
	if !valid(&value.Integer{Value: 5000}) {
		t.Errorf("open upper bound must not constrain validation")
	}
	if valid(&value.Float{Value: 1}) {
		t.Errorf("floats are not bounded integers")
	}
}

func TestLiteralValidation(t *testing.T) {
	valid := newValidator(t, descriptor.Literal{Value: "ok"})

	if !valid(&value.Atom{Name: "ok"}) {
		t.Errorf(":ok must validate against its literal")
	}
	if valid(&value.Atom{Name: "error"}) {
		t.Errorf(":error must not validate against literal :ok")
	}
	if valid(&value.String{Value: "ok"}) {
		t.Errorf("a binary is not the atom literal")
	}
}

func TestRecordValidation(t *testing.T) {
	d := descriptor.StructuredRecord{TypeName: "User", Fields: []descriptor.Field{
		{Key: descriptor.Literal{Value: "id"}, Value: descriptor.PosInteger(), Required: true},
	}}
	valid := newValidator(t, d)

	user := &value.Map{Entries: []value.MapEntry{
		{Key: &value.Atom{Name: value.RecordTagKey}, Value: &value.Atom{Name: "User"}},
		{Key: &value.Atom{Name: "id"}, Value: &value.Integer{Value: 3}},
	}}
	wrongTag := &value.Map{Entries: []value.MapEntry{
		{Key: &value.Atom{Name: value.RecordTagKey}, Value: &value.Atom{Name: "Account"}},
		{Key: &value.Atom{Name: "id"}, Value: &value.Integer{Value: 3}},
	}}
	missingField := &value.Map{Entries: []value.MapEntry{
		{Key: &value.Atom{Name: value.RecordTagKey}, Value: &value.Atom{Name: "User"}},
	}}

	if !valid(user) {
		t.Errorf("well-formed record must validate")
	}
	if valid(wrongTag) {
		t.Errorf("record with a foreign tag must not validate")
	}
	if valid(missingField) {
		t.Errorf("record missing a required field must not validate")
	}
}

// The required-field check is satisfaction over all entries, not lookup
// by key. A map whose required field is "covered" by a different entry
// of compatible shape still validates. Known-loose behavior, preserved
// deliberately; this test documents it.
func TestRequiredFieldSatisfactionIsLoose(t *testing.T) {
	d := descriptor.Mapping{Fields: []descriptor.Field{
		{Key: descriptor.Primitive{Kind: descriptor.KindAtom}, Value: descriptor.Primitive{Kind: descriptor.KindInteger}, Required: true},
	}}
	valid := newValidator(t, d)

	// No entry named anything in particular is demanded: any atom→integer
	// entry satisfies the field.
	m := &value.Map{Entries: []value.MapEntry{
		{Key: &value.Atom{Name: "whatever"}, Value: &value.Integer{Value: 1}},
	}}
	if !valid(m) {
		t.Errorf("predicate-satisfying entry must cover the required field")
	}

	onlyWrongShape := &value.Map{Entries: []value.MapEntry{
		{Key: &value.Atom{Name: "whatever"}, Value: &value.String{Value: "1"}},
	}}
	if valid(onlyWrongShape) {
		t.Errorf("no entry satisfies the field's value predicate")
	}
}

func TestOptionalFieldImposesNothing(t *testing.T) {
	d := descriptor.Mapping{Fields: []descriptor.Field{
		{Key: descriptor.Literal{Value: "age"}, Value: descriptor.NonNegInteger(), Required: false},
	}}
	valid := newValidator(t, d)

	if !valid(&value.Map{}) {
		t.Errorf("absent optional field must not constrain the map")
	}
}

func TestUnionValidation(t *testing.T) {
	d := descriptor.Union{Alternatives: []descriptor.Descriptor{
		descriptor.Primitive{Kind: descriptor.KindInteger},
		descriptor.Primitive{Kind: descriptor.KindNull},
	}}
	valid := newValidator(t, d)

	if !valid(&value.Integer{Value: 1}) || !valid(&value.Nil{}) {
		t.Errorf("members of either alternative must validate")
	}
	if valid(&value.Float{Value: 1}) {
		t.Errorf("a float satisfies neither alternative")
	}
}

func TestBitstringAcceptsBinaries(t *testing.T) {
	valid := newValidator(t, descriptor.Primitive{Kind: descriptor.KindBitstring})

	if !valid(&value.Bitstring{Data: []byte{0xF0}, Bits: 4}) {
		t.Errorf("bitstrings must validate")
	}
	if !valid(&value.String{Value: "abc"}) {
		t.Errorf("a binary is a whole-byte bitstring and must validate")
	}
	if valid(&value.Integer{Value: 1}) {
		t.Errorf("integers are not bitstrings")
	}
}

func TestCharlistValidation(t *testing.T) {
	valid := newValidator(t, descriptor.Primitive{Kind: descriptor.KindCharlist})

	if !valid(&value.List{Elements: []value.Value{&value.Integer{Value: 104}}}) {
		t.Errorf("list of codepoints must validate")
	}
	if !valid(&value.List{}) {
		t.Errorf("the empty list is a charlist")
	}
	if valid(&value.List{Elements: []value.Value{&value.Atom{Name: "h"}}}) {
		t.Errorf("list of atoms is not a charlist")
	}
}

func TestUnresolvedReferenceValidatesPermissively(t *testing.T) {
	valid := newValidator(t, descriptor.RemoteReference{Owner: "Ghost"})

	if !valid(&value.Integer{Value: 1}) || !valid(&value.Map{}) {
		t.Errorf("unresolved references must validate permissively")
	}
}

func TestCyclicReferenceValidationTerminates(t *testing.T) {
	resolver := descriptor.MapResolver{
		"Node": descriptor.StructuredRecord{TypeName: "Node", Fields: []descriptor.Field{
			{Key: descriptor.Literal{Value: "next"}, Value: descriptor.RemoteReference{Owner: "Node"}, Required: true},
		}},
	}
	valid := New(Options{Resolver: resolver}).Validator(descriptor.RemoteReference{Owner: "Node"})

	// The inner reference hits the cycle guard and validates
	// permissively, so a one-level node conforms.
	node := &value.Map{Entries: []value.MapEntry{
		{Key: &value.Atom{Name: value.RecordTagKey}, Value: &value.Atom{Name: "Node"}},
		{Key: &value.Atom{Name: "next"}, Value: &value.Nil{}},
	}}
	if !valid(node) {
		t.Errorf("cycle guard should make the inner reference permissive")
	}
	if valid(&value.Integer{Value: 1}) {
		t.Errorf("outer record shape is still enforced")
	}
}

func TestValidTuple(t *testing.T) {
	params := []descriptor.Descriptor{
		descriptor.Primitive{Kind: descriptor.KindInteger},
		descriptor.Primitive{Kind: descriptor.KindAtom},
	}
	s := New(Options{})

	ok := &value.Tuple{Elements: []value.Value{&value.Integer{Value: 1}, &value.Atom{Name: "x"}}}
	if !s.ValidTuple(params, ok) {
		t.Errorf("conforming argument tuple must validate")
	}
	short := &value.Tuple{Elements: []value.Value{&value.Integer{Value: 1}}}
	if s.ValidTuple(params, short) {
		t.Errorf("wrong arity must not validate")
	}
}
