package source

import (
	"errors"
	"testing"

	"github.com/funvibe/typetrial/internal/descriptor"
)

func TestSignatureString(t *testing.T) {
	tests := []struct {
		name string
		sig  Signature
		want string
	}{
		{
			name: "two params",
			sig: Signature{
				Params: []descriptor.Descriptor{
					descriptor.Primitive{Kind: descriptor.KindInteger},
					descriptor.Primitive{Kind: descriptor.KindBinary},
				},
				Return: descriptor.Primitive{Kind: descriptor.KindBoolean},
			},
			want: "(integer, binary) -> boolean",
		},
		{
			name: "no params, nil return",
			sig:  Signature{},
			want: "() -> any",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	sig := Signature{Return: descriptor.Primitive{Kind: descriptor.KindAtom}}
	reg.Register("app.status/0", sig)

	got, err := reg.Signature("app.status/0")
	if err != nil {
		t.Fatalf("Signature() error: %v", err)
	}
	if !descriptor.Equivalent(got.Return, sig.Return) {
		t.Errorf("Signature() = %+v", got)
	}
}

func TestRegistryMissingTarget(t *testing.T) {
	_, err := NewRegistry().Signature("app.gone/1")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Target != "app.gone/1" {
		t.Errorf("Target = %q", nf.Target)
	}
}

func TestRegistryResolvesTypes(t *testing.T) {
	reg := NewRegistry()
	rec := descriptor.StructuredRecord{TypeName: "User"}
	reg.RegisterType("User", rec)

	d, ok := reg.Resolve("User")
	if !ok {
		t.Fatal("Resolve() did not find the registered type")
	}
	if !descriptor.Equivalent(d, rec) {
		t.Errorf("Resolve() = %+v", d)
	}
	if _, ok := reg.Resolve("Ghost"); ok {
		t.Error("Resolve() found an unregistered type")
	}
}
