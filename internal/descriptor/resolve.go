package descriptor

// Resolver looks up the descriptor a RemoteReference points at. It is an
// external collaborator: the engine only consumes the result and never
// inspects how the owner's definition was obtained.
type Resolver interface {
	// Resolve returns the referenced descriptor, or false when the owner
	// is unknown. Interpretation degrades permissively on false.
	Resolve(owner string) (Descriptor, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(owner string) (Descriptor, bool)

func (f ResolverFunc) Resolve(owner string) (Descriptor, bool) { return f(owner) }

// NopResolver resolves nothing. Interpretation of every remote reference
// then falls back to the unconstrained treatment.
var NopResolver Resolver = ResolverFunc(func(string) (Descriptor, bool) { return nil, false })

// MapResolver resolves references out of a fixed owner→descriptor table.
type MapResolver map[string]Descriptor

func (m MapResolver) Resolve(owner string) (Descriptor, bool) {
	d, ok := m[owner]
	return d, ok
}
