package profile

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-chain-profile/pkg/chain"
)

// TypeUID identifies the chain transformation profile type.
const TypeUID = "transform:CHAIN"

var ErrUnsupportedProfileType = errors.New("unsupported profile type")

// Factory creates chain profiles sharing a resolver and options.
type Factory struct {
	resolver chain.Resolver
	opts     []Option
}

// NewFactory creates a factory.
func NewFactory(resolver chain.Resolver, opts ...Option) (*Factory, error) {
	if resolver == nil {
		return nil, chain.ErrResolverMustBeSet
	}
	return &Factory{resolver: resolver, opts: opts}, nil
}

// SupportedTypeUIDs returns the profile types the factory can create.
func (f *Factory) SupportedTypeUIDs() []string {
	return []string{TypeUID}
}

// Create creates a profile of the given type from a framework configuration map.
func (f *Factory) Create(typeUID string, callback Callback, configuration map[string]any, opts ...Option) (*Profile, error) {
	if typeUID != TypeUID {
		return nil, errors.Wrapf(ErrUnsupportedProfileType, "type %q", typeUID)
	}
	all := make([]Option, 0, len(f.opts)+len(opts))
	all = append(all, f.opts...)
	all = append(all, opts...)

	return NewFromConfiguration(callback, configuration, f.resolver, all...)
}
