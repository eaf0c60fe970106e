package transform

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-chain-profile/internal/store"
	"github.com/askiada/go-chain-profile/pkg/chain"
)

var (
	ErrNameMustBeSet           = errors.New("transformation name must be set")
	ErrTransformationMustBeSet = errors.New("transformation must be set")
	ErrAlreadyRegistered       = errors.New("transformation already registered")
	ErrNotRegistered           = errors.New("transformation not registered")
)

// Registry maps transformation type names to transformations. It is safe for concurrent use.
type Registry struct {
	store store.CustomStore[string, chain.Transformation]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		store: store.NewMemoryStore[string, chain.Transformation](func(a, b string) bool { return a < b }),
	}
}

// NewDefaultRegistry creates a registry holding the built-in transformations.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for name, t := range Builtins() {
		r.store.Put(name, t)
	}
	return r
}

// Register adds a transformation under name. Names are case sensitive.
func (r *Registry) Register(name string, t chain.Transformation) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameMustBeSet
	}
	if t == nil {
		return ErrTransformationMustBeSet
	}
	err := r.store.Add(name, t)
	if err != nil {
		return errors.Wrapf(ErrAlreadyRegistered, "name %q", name)
	}

	return nil
}

// RegisterFunc adds a function as a transformation under name.
func (r *Registry) RegisterFunc(name string, fn func(param, input string) (string, error)) error {
	if fn == nil {
		return ErrTransformationMustBeSet
	}
	return r.Register(name, chain.TransformationFunc(fn))
}

// Unregister removes the transformation registered under name.
func (r *Registry) Unregister(name string) error {
	err := r.store.Remove(name)
	if err != nil {
		return errors.Wrapf(ErrNotRegistered, "name %q", name)
	}

	return nil
}

// Resolve returns the transformation registered under typeName.
func (r *Registry) Resolve(typeName string) (chain.Transformation, bool) {
	return r.store.Get(typeName)
}

// Names returns the sorted names of the registered transformations.
func (r *Registry) Names() []string {
	return r.store.Keys()
}

// Len returns the number of registered transformations.
func (r *Registry) Len() int {
	return r.store.Count()
}

var _ chain.Resolver = (*Registry)(nil)
