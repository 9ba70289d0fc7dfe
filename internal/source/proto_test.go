package source

import (
	"errors"
	"testing"

	"github.com/funvibe/typetrial/internal/descriptor"
)

func parseCatalog(t *testing.T) *FileSet {
	t.Helper()
	fs, err := ParseProtoFiles([]string{"testdata"}, "catalog.proto")
	if err != nil {
		t.Fatalf("ParseProtoFiles: %v", err)
	}
	return fs
}

func catalogItem(t *testing.T, fs *FileSet) descriptor.StructuredRecord {
	t.Helper()
	d, ok := fs.Message("catalog.Item")
	if !ok {
		t.Fatal("catalog.Item not found")
	}
	rec, ok := d.(descriptor.StructuredRecord)
	if !ok {
		t.Fatalf("catalog.Item is %T, want StructuredRecord", d)
	}
	return rec
}

func fieldByKey(rec descriptor.StructuredRecord, key string) (descriptor.Field, bool) {
	for _, f := range rec.Fields {
		if lit, ok := f.Key.(descriptor.Literal); ok && lit.Value == key {
			return f, true
		}
	}
	return descriptor.Field{}, false
}

func TestProtoMessageBecomesRecord(t *testing.T) {
	fs := parseCatalog(t)
	rec := catalogItem(t, fs)

	if rec.TypeName != "catalog.Item" {
		t.Errorf("TypeName = %q", rec.TypeName)
	}

	tests := []struct {
		key  string
		want descriptor.Descriptor
	}{
		{"name", descriptor.Primitive{Kind: descriptor.KindString}},
		{"quantity", descriptor.Primitive{Kind: descriptor.KindInteger}},
		{"version", descriptor.NonNegInteger()},
		{"tags", descriptor.Sequence{Elem: descriptor.Primitive{Kind: descriptor.KindString}}},
		{"dimensions", descriptor.RemoteReference{Owner: "catalog.Item.Dimensions"}},
	}
	for _, tt := range tests {
		f, ok := fieldByKey(rec, tt.key)
		if !ok {
			t.Errorf("field %q missing", tt.key)
			continue
		}
		if !descriptor.Equivalent(f.Value, tt.want) {
			t.Errorf("field %q = %s, want %s", tt.key, f.Value.String(), tt.want.String())
		}
	}
}

func TestProtoEnumBecomesLiteralUnion(t *testing.T) {
	fs := parseCatalog(t)
	rec := catalogItem(t, fs)

	f, ok := fieldByKey(rec, "visibility")
	if !ok {
		t.Fatal("visibility field missing")
	}
	want := descriptor.Union{Alternatives: []descriptor.Descriptor{
		descriptor.Literal{Value: "PUBLIC"},
		descriptor.Literal{Value: "PRIVATE"},
	}}
	if !descriptor.Equivalent(f.Value, want) {
		t.Errorf("visibility = %s, want %s", f.Value.String(), want.String())
	}
}

func TestProtoOneofFoldsIntoOptionalUnion(t *testing.T) {
	fs := parseCatalog(t)
	rec := catalogItem(t, fs)

	f, ok := fieldByKey(rec, "price")
	if !ok {
		t.Fatal("oneof field missing")
	}
	if f.Required {
		t.Error("oneof field must be optional")
	}
	want := descriptor.Union{Alternatives: []descriptor.Descriptor{
		descriptor.Primitive{Kind: descriptor.KindInteger},
		descriptor.Primitive{Kind: descriptor.KindFloat},
	}}
	if !descriptor.Equivalent(f.Value, want) {
		t.Errorf("oneof = %s, want %s", f.Value.String(), want.String())
	}

	// The members themselves must not surface as standalone fields.
	if _, ok := fieldByKey(rec, "cents"); ok {
		t.Error("oneof member leaked as a field")
	}
}

func TestProtoNestedMessageResolvable(t *testing.T) {
	fs := parseCatalog(t)
	d, ok := fs.Resolve("catalog.Item.Dimensions")
	if !ok {
		t.Fatal("nested message not resolvable")
	}
	rec, ok := d.(descriptor.StructuredRecord)
	if !ok || len(rec.Fields) != 2 {
		t.Errorf("nested record = %+v", d)
	}
}

func TestProtoServiceMethodSignature(t *testing.T) {
	fs := parseCatalog(t)
	sig, err := fs.Signature("catalog.Catalog/Lookup")
	if err != nil {
		t.Fatalf("Signature: %v", err)
	}
	if len(sig.Params) != 1 {
		t.Fatalf("params = %d, want 1", len(sig.Params))
	}
	wantIn := descriptor.RemoteReference{Owner: "catalog.LookupRequest"}
	wantOut := descriptor.RemoteReference{Owner: "catalog.Item"}
	if !descriptor.Equivalent(sig.Params[0], wantIn) || !descriptor.Equivalent(sig.Return, wantOut) {
		t.Errorf("signature = %s", sig.String())
	}

	_, err = fs.Signature("catalog.Catalog/Missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for unknown method, got %v", err)
	}
}

func TestProtoParseFailure(t *testing.T) {
	if _, err := ParseProtoFiles([]string{"testdata"}, "absent.proto"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
