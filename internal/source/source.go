// Package source provides the descriptor-source boundary: collaborators
// that hand the engine a function's parameter and return descriptors.
// How descriptors are extracted from their original definitions is not
// the engine's business; it only consumes the result.
package source

import (
	"fmt"

	"github.com/funvibe/typetrial/internal/descriptor"
)

// Signature is the descriptor view of one function: its positional
// parameter descriptors and its return descriptor.
type Signature struct {
	Params []descriptor.Descriptor
	Return descriptor.Descriptor
}

func (s Signature) String() string {
	params := ""
	for i, p := range s.Params {
		if i > 0 {
			params += ", "
		}
		params += p.String()
	}
	ret := "any"
	if s.Return != nil {
		ret = s.Return.String()
	}
	return fmt.Sprintf("(%s) -> %s", params, ret)
}

// NotFoundError reports that a source has no signature for a function.
// Fatal to the requested trial; surfaced immediately, never retried.
type NotFoundError struct {
	Target string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no signature found for %s", e.Target)
}

// Source resolves a function reference to its signature.
type Source interface {
	Signature(target string) (Signature, error)
}

// Registry is an in-process Source populated by explicit registration.
// It replaces build-time extraction with runtime registration.
type Registry struct {
	sigs  map[string]Signature
	types map[string]descriptor.Descriptor
}

func NewRegistry() *Registry {
	return &Registry{
		sigs:  make(map[string]Signature),
		types: make(map[string]descriptor.Descriptor),
	}
}

// Register stores the signature for a function target.
func (r *Registry) Register(target string, sig Signature) {
	r.sigs[target] = sig
}

// RegisterType stores a named descriptor so remote references to owner
// resolve against this registry.
func (r *Registry) RegisterType(owner string, d descriptor.Descriptor) {
	r.types[owner] = d
}

func (r *Registry) Signature(target string) (Signature, error) {
	sig, ok := r.sigs[target]
	if !ok {
		return Signature{}, &NotFoundError{Target: target}
	}
	return sig, nil
}

// Resolve makes the registry usable as a descriptor.Resolver.
func (r *Registry) Resolve(owner string) (descriptor.Descriptor, bool) {
	d, ok := r.types[owner]
	return d, ok
}
